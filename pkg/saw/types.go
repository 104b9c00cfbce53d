// Package saw implements the storage engine for the "saw" format: a
// compact, compressed, column-oriented on-disk layout for named tables
// of equal-length typed columns.
package saw

import "fmt"

// ColumnType is the closed set of scalar kinds a column may hold.
type ColumnType int

const (
	Float ColumnType = iota
	Double
	Integer
	Short
	Long
	Boolean
	LocalDate
	LocalTime
	LocalDateTime
	Instant
	String
	Text
)

var columnTypeNames = map[ColumnType]string{
	Float:         "FLOAT",
	Double:        "DOUBLE",
	Integer:       "INTEGER",
	Short:         "SHORT",
	Long:          "LONG",
	Boolean:       "BOOLEAN",
	LocalDate:     "LOCAL_DATE",
	LocalTime:     "LOCAL_TIME",
	LocalDateTime: "LOCAL_DATE_TIME",
	Instant:       "INSTANT",
	String:        "STRING",
	Text:          "TEXT",
}

var namesToColumnType = func() map[string]ColumnType {
	m := make(map[string]ColumnType, len(columnTypeNames))
	for t, n := range columnTypeNames {
		m[n] = t
	}
	return m
}()

// String returns the canonical uppercase wire name for t.
func (t ColumnType) String() string {
	if n, ok := columnTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// ParseColumnType maps a wire-visible tag name back to a ColumnType.
func ParseColumnType(name string) (ColumnType, error) {
	t, ok := namesToColumnType[name]
	if !ok {
		return 0, invalidArgument("unknown column type tag %q", name)
	}
	return t, nil
}

// KeyWidth is the byte width of a STRING column's dictionary keys.
type KeyWidth int

const (
	KeyWidthByte KeyWidth = iota
	KeyWidthShort
	KeyWidthInt
)

func (w KeyWidth) String() string {
	switch w {
	case KeyWidthByte:
		return "BYTE"
	case KeyWidthShort:
		return "SHORT"
	case KeyWidthInt:
		return "INT"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(w))
	}
}

// ParseKeyWidth maps a wire-visible key width name back to a KeyWidth.
func ParseKeyWidth(name string) (KeyWidth, error) {
	switch name {
	case "BYTE":
		return KeyWidthByte, nil
	case "SHORT":
		return KeyWidthShort, nil
	case "INT":
		return KeyWidthInt, nil
	default:
		return 0, invalidArgument("unknown key width %q", name)
	}
}

// Table is the capability set the writer and reader require of an
// in-memory table. Construction, mutation, and higher-level operations
// (sorting, joins, filters) live outside this package.
type Table interface {
	Name() string
	Columns() []Column
	RowCount() int
	ColumnCount() int
}

// Column is the capability set common to every column, regardless of
// type tag.
type Column interface {
	Name() string
	Type() ColumnType
	Size() int
}

// FloatColumn is implemented by FLOAT columns.
type FloatColumn interface {
	Column
	FloatValues() []float32
}

// DoubleColumn is implemented by DOUBLE columns.
type DoubleColumn interface {
	Column
	DoubleValues() []float64
}

// IntColumn is implemented by INTEGER columns.
type IntColumn interface {
	Column
	IntValues() []int32
}

// ShortColumn is implemented by SHORT columns.
type ShortColumn interface {
	Column
	ShortValues() []int16
}

// LongColumn is implemented by LONG columns.
type LongColumn interface {
	Column
	LongValues() []int64
}

// BooleanColumn is implemented by BOOLEAN columns. Values are the
// column's tri-state byte (true/false/missing) verbatim.
type BooleanColumn interface {
	Column
	BooleanValues() []int8
}

// LocalDateColumn is implemented by LOCAL_DATE columns, storing the
// packed 32-bit calendar-date representation.
type LocalDateColumn interface {
	Column
	PackedDateValues() []int32
}

// LocalTimeColumn is implemented by LOCAL_TIME columns, storing the
// packed 32-bit wall-time representation.
type LocalTimeColumn interface {
	Column
	PackedTimeValues() []int32
}

// LocalDateTimeColumn is implemented by LOCAL_DATE_TIME columns, storing
// the packed 64-bit representation.
type LocalDateTimeColumn interface {
	Column
	PackedDateTimeValues() []int64
}

// InstantColumn is implemented by INSTANT columns, storing the 64-bit
// epoch-based instant representation.
type InstantColumn interface {
	Column
	InstantValues() []int64
}

// TextColumn is implemented by TEXT columns: unbounded free text with no
// dictionary.
type TextColumn interface {
	Column
	TextValues() []string
}

// StringColumn is implemented by STRING columns: dictionary-encoded
// text.
type StringColumn interface {
	Column
	Dictionary() Dictionary
}

// Dictionary is a STRING column's key/value/count projection set.
type Dictionary interface {
	KeyWidth() KeyWidth
	// Entries maps each unique key to its string value.
	Entries() map[int32]string
	// Counts maps each unique key to its occurrence count.
	Counts() map[int32]int32
	// Values is the per-row sequence of dictionary keys, length equal
	// to the column's row count.
	Values() []int32
}
