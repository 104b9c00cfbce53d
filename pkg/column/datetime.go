package column

import (
	"time"

	"github.com/kaitokuro/tablesaw/pkg/saw"
)

// The packing schemes below are this package's own convenience
// representation of calendar values as the fixed-width integers the
// wire format actually stores; the format itself only ever sees the
// already-packed int32/int64, never a time.Time. A different column
// library is free to pack dates and times however it likes — the saw
// package preserves whatever bytes it is given.

// PackLocalDate packs t's calendar date as days since the Unix epoch.
func PackLocalDate(t time.Time) int32 {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return int32(midnight.Unix() / 86400)
}

// UnpackLocalDate reverses PackLocalDate.
func UnpackLocalDate(v int32) time.Time {
	return time.Unix(int64(v)*86400, 0).UTC()
}

// PackLocalTime packs t's wall-clock time of day as milliseconds since
// midnight.
func PackLocalTime(t time.Time) int32 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return int32(t.Sub(midnight).Milliseconds())
}

// UnpackLocalTime reverses PackLocalTime relative to a reference date.
func UnpackLocalTime(v int32, date time.Time) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(v) * time.Millisecond)
}

// PackLocalDateTime packs t as milliseconds since the Unix epoch.
func PackLocalDateTime(t time.Time) int64 {
	return t.UnixMilli()
}

// UnpackLocalDateTime reverses PackLocalDateTime.
func UnpackLocalDateTime(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

// PackInstant packs t as milliseconds since the Unix epoch, identical
// in representation to PackLocalDateTime but distinct as a type tag.
func PackInstant(t time.Time) int64 {
	return t.UnixMilli()
}

// UnpackInstant reverses PackInstant.
func UnpackInstant(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

// LocalDateColumn holds a packed 32-bit calendar date per row.
type LocalDateColumn struct {
	name   string
	values []int32
}

func NewLocalDateColumn(name string, values []int32) *LocalDateColumn {
	return &LocalDateColumn{name: name, values: values}
}

func (c *LocalDateColumn) Name() string { return c.name }
func (c *LocalDateColumn) Type() saw.ColumnType { return saw.LocalDate }
func (c *LocalDateColumn) Size() int { return len(c.values) }
func (c *LocalDateColumn) PackedDateValues() []int32 { return c.values }
func (c *LocalDateColumn) Get(i int) time.Time { return UnpackLocalDate(c.values[i]) }

// LocalTimeColumn holds a packed 32-bit wall time per row.
type LocalTimeColumn struct {
	name   string
	values []int32
}

func NewLocalTimeColumn(name string, values []int32) *LocalTimeColumn {
	return &LocalTimeColumn{name: name, values: values}
}

func (c *LocalTimeColumn) Name() string { return c.name }
func (c *LocalTimeColumn) Type() saw.ColumnType { return saw.LocalTime }
func (c *LocalTimeColumn) Size() int { return len(c.values) }
func (c *LocalTimeColumn) PackedTimeValues() []int32 { return c.values }

// LocalDateTimeColumn holds a packed 64-bit date-time per row.
type LocalDateTimeColumn struct {
	name   string
	values []int64
}

func NewLocalDateTimeColumn(name string, values []int64) *LocalDateTimeColumn {
	return &LocalDateTimeColumn{name: name, values: values}
}

func (c *LocalDateTimeColumn) Name() string { return c.name }
func (c *LocalDateTimeColumn) Type() saw.ColumnType { return saw.LocalDateTime }
func (c *LocalDateTimeColumn) Size() int { return len(c.values) }
func (c *LocalDateTimeColumn) PackedDateTimeValues() []int64 { return c.values }

// InstantColumn holds a packed 64-bit epoch-based instant per row.
type InstantColumn struct {
	name   string
	values []int64
}

func NewInstantColumn(name string, values []int64) *InstantColumn {
	return &InstantColumn{name: name, values: values}
}

func (c *InstantColumn) Name() string { return c.name }
func (c *InstantColumn) Type() saw.ColumnType { return saw.Instant }
func (c *InstantColumn) Size() int { return len(c.values) }
func (c *InstantColumn) InstantValues() []int64 { return c.values }
func (c *InstantColumn) Get(i int) time.Time { return UnpackInstant(c.values[i]) }
