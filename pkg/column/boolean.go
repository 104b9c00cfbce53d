package column

import "github.com/kaitokuro/tablesaw/pkg/saw"

// Tri-state byte sentinels for BooleanColumn, matching the on-disk
// representation: the codec writes and reads these bytes verbatim and
// does not interpret them.
const (
	BooleanTrue    int8 = 1
	BooleanFalse   int8 = 0
	BooleanMissing int8 = -1
)

// BooleanColumn holds a tri-state (true/false/missing) byte per row.
type BooleanColumn struct {
	name   string
	values []int8
}

// NewBooleanColumn wraps raw tri-state bytes directly.
func NewBooleanColumn(name string, values []int8) *BooleanColumn {
	return &BooleanColumn{name: name, values: values}
}

// NewBooleanColumnFromBools converts a []bool with no missing values.
func NewBooleanColumnFromBools(name string, values []bool) *BooleanColumn {
	packed := make([]int8, len(values))
	for i, v := range values {
		if v {
			packed[i] = BooleanTrue
		} else {
			packed[i] = BooleanFalse
		}
	}
	return NewBooleanColumn(name, packed)
}

func (c *BooleanColumn) Name() string { return c.name }
func (c *BooleanColumn) Type() saw.ColumnType { return saw.Boolean }
func (c *BooleanColumn) Size() int { return len(c.values) }
func (c *BooleanColumn) BooleanValues() []int8 { return c.values }

// Get reports the row's boolean value and whether it is present.
func (c *BooleanColumn) Get(i int) (value bool, present bool) {
	switch c.values[i] {
	case BooleanTrue:
		return true, true
	case BooleanFalse:
		return false, true
	default:
		return false, false
	}
}
