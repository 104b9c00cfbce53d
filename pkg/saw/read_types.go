package saw

// The concrete types in this file are what Read materializes. They are
// deliberately minimal — construction and accessors only, no mutation,
// sorting, or conversion between column kinds, all of which remain the
// responsibility of whatever richer column library a caller layers on
// top (see pkg/column for one such library, used by this repository's
// own tests and command-line tools).

type readTable struct {
	name     string
	columns  []Column
	rowCount int
}

func (t *readTable) Name() string { return t.name }
func (t *readTable) Columns() []Column { return t.columns }
func (t *readTable) RowCount() int { return t.rowCount }
func (t *readTable) ColumnCount() int { return len(t.columns) }

type baseColumn struct {
	name string
	typ  ColumnType
}

func (c baseColumn) Name() string { return c.name }
func (c baseColumn) Type() ColumnType { return c.typ }

type readFloatColumn struct {
	baseColumn
	values []float32
}

func (c *readFloatColumn) Size() int { return len(c.values) }
func (c *readFloatColumn) FloatValues() []float32 { return c.values }

type readDoubleColumn struct {
	baseColumn
	values []float64
}

func (c *readDoubleColumn) Size() int { return len(c.values) }
func (c *readDoubleColumn) DoubleValues() []float64 { return c.values }

type readIntColumn struct {
	baseColumn
	values []int32
}

func (c *readIntColumn) Size() int { return len(c.values) }
func (c *readIntColumn) IntValues() []int32 { return c.values }

type readShortColumn struct {
	baseColumn
	values []int16
}

func (c *readShortColumn) Size() int { return len(c.values) }
func (c *readShortColumn) ShortValues() []int16 { return c.values }

type readLongColumn struct {
	baseColumn
	values []int64
}

func (c *readLongColumn) Size() int { return len(c.values) }
func (c *readLongColumn) LongValues() []int64 { return c.values }

type readBooleanColumn struct {
	baseColumn
	values []int8
}

func (c *readBooleanColumn) Size() int { return len(c.values) }
func (c *readBooleanColumn) BooleanValues() []int8 { return c.values }

type readLocalDateColumn struct {
	baseColumn
	values []int32
}

func (c *readLocalDateColumn) Size() int { return len(c.values) }
func (c *readLocalDateColumn) PackedDateValues() []int32 { return c.values }

type readLocalTimeColumn struct {
	baseColumn
	values []int32
}

func (c *readLocalTimeColumn) Size() int { return len(c.values) }
func (c *readLocalTimeColumn) PackedTimeValues() []int32 { return c.values }

type readLocalDateTimeColumn struct {
	baseColumn
	values []int64
}

func (c *readLocalDateTimeColumn) Size() int { return len(c.values) }
func (c *readLocalDateTimeColumn) PackedDateTimeValues() []int64 { return c.values }

type readInstantColumn struct {
	baseColumn
	values []int64
}

func (c *readInstantColumn) Size() int { return len(c.values) }
func (c *readInstantColumn) InstantValues() []int64 { return c.values }

type readTextColumn struct {
	baseColumn
	values []string
}

func (c *readTextColumn) Size() int { return len(c.values) }
func (c *readTextColumn) TextValues() []string { return c.values }

type readDictionary struct {
	keyWidth KeyWidth
	entries  map[int32]string
	counts   map[int32]int32
	values   []int32
}

func (d *readDictionary) KeyWidth() KeyWidth { return d.keyWidth }
func (d *readDictionary) Entries() map[int32]string { return d.entries }
func (d *readDictionary) Counts() map[int32]int32 { return d.counts }
func (d *readDictionary) Values() []int32 { return d.values }

type readStringColumn struct {
	baseColumn
	dict *readDictionary
}

func (c *readStringColumn) Size() int { return len(c.dict.values) }
func (c *readStringColumn) Dictionary() Dictionary { return c.dict }
