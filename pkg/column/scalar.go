package column

import "github.com/kaitokuro/tablesaw/pkg/saw"

// FloatColumn holds 32-bit IEEE-754 values.
type FloatColumn struct {
	name   string
	values []float32
}

func NewFloatColumn(name string, values []float32) *FloatColumn {
	return &FloatColumn{name: name, values: values}
}

func (c *FloatColumn) Name() string { return c.name }
func (c *FloatColumn) Type() saw.ColumnType { return saw.Float }
func (c *FloatColumn) Size() int { return len(c.values) }
func (c *FloatColumn) FloatValues() []float32 { return c.values }
func (c *FloatColumn) Get(i int) float32 { return c.values[i] }

// DoubleColumn holds 64-bit IEEE-754 values.
type DoubleColumn struct {
	name   string
	values []float64
}

func NewDoubleColumn(name string, values []float64) *DoubleColumn {
	return &DoubleColumn{name: name, values: values}
}

func (c *DoubleColumn) Name() string { return c.name }
func (c *DoubleColumn) Type() saw.ColumnType { return saw.Double }
func (c *DoubleColumn) Size() int { return len(c.values) }
func (c *DoubleColumn) DoubleValues() []float64 { return c.values }
func (c *DoubleColumn) Get(i int) float64 { return c.values[i] }

// IntColumn holds 32-bit signed integer values.
type IntColumn struct {
	name   string
	values []int32
}

func NewIntColumn(name string, values []int32) *IntColumn {
	return &IntColumn{name: name, values: values}
}

// IndexColumn builds an INTEGER column of count values starting at
// start and incrementing by step, the same convenience shape the
// original test suite's IntColumn.indexColumn used to build synthetic
// tables.
func IndexColumn(name string, count int, start int32, step int32) *IntColumn {
	values := make([]int32, count)
	v := start
	for i := range values {
		values[i] = v
		v += step
	}
	return NewIntColumn(name, values)
}

func (c *IntColumn) Name() string { return c.name }
func (c *IntColumn) Type() saw.ColumnType { return saw.Integer }
func (c *IntColumn) Size() int { return len(c.values) }
func (c *IntColumn) IntValues() []int32 { return c.values }
func (c *IntColumn) Get(i int) int32 { return c.values[i] }

// ShortColumn holds 16-bit signed integer values.
type ShortColumn struct {
	name   string
	values []int16
}

func NewShortColumn(name string, values []int16) *ShortColumn {
	return &ShortColumn{name: name, values: values}
}

func (c *ShortColumn) Name() string { return c.name }
func (c *ShortColumn) Type() saw.ColumnType { return saw.Short }
func (c *ShortColumn) Size() int { return len(c.values) }
func (c *ShortColumn) ShortValues() []int16 { return c.values }
func (c *ShortColumn) Get(i int) int16 { return c.values[i] }

// LongColumn holds 64-bit signed integer values.
type LongColumn struct {
	name   string
	values []int64
}

func NewLongColumn(name string, values []int64) *LongColumn {
	return &LongColumn{name: name, values: values}
}

func (c *LongColumn) Name() string { return c.name }
func (c *LongColumn) Type() saw.ColumnType { return saw.Long }
func (c *LongColumn) Size() int { return len(c.values) }
func (c *LongColumn) LongValues() []int64 { return c.values }
func (c *LongColumn) Get(i int) int64 { return c.values[i] }
