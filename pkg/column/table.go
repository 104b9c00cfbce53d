// Package column provides minimal, constructable in-memory table and
// column types satisfying the capability interfaces package saw
// consumes. It deliberately stops at construction and accessors: there
// is no sorting, filtering, joining, or CSV import here — those remain
// the job of whatever richer table library a caller wants to layer on
// top, per the storage engine's scope.
package column

import "github.com/kaitokuro/tablesaw/pkg/saw"

// Table is an ordered, named collection of equal-length columns.
type Table struct {
	name    string
	columns []saw.Column
}

// NewTable builds a table from its name and columns, in the given
// order. It does not validate that every column has the same length;
// SaveTable's caller is expected to build consistent tables, same as
// the format's external-collaborator contract assumes.
func NewTable(name string, columns ...saw.Column) *Table {
	return &Table{name: name, columns: columns}
}

func (t *Table) Name() string { return t.name }

func (t *Table) Columns() []saw.Column { return t.columns }

func (t *Table) RowCount() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Size()
}

func (t *Table) ColumnCount() int { return len(t.columns) }
