package column

import "github.com/kaitokuro/tablesaw/pkg/saw"

// TextColumn holds unbounded free text, one string per row, with no
// dictionary.
type TextColumn struct {
	name   string
	values []string
}

func NewTextColumn(name string, values []string) *TextColumn {
	return &TextColumn{name: name, values: values}
}

func (c *TextColumn) Name() string { return c.name }
func (c *TextColumn) Type() saw.ColumnType { return saw.Text }
func (c *TextColumn) Size() int { return len(c.values) }
func (c *TextColumn) TextValues() []string { return c.values }
func (c *TextColumn) Get(i int) string { return c.values[i] }
