// Package stats computes summary statistics over a saw table, the kind
// a dump tool prints after a read to sanity-check what landed on disk.
package stats

import (
	"fmt"
	"io"

	"github.com/kaitokuro/tablesaw/pkg/saw"
)

// ColumnStats summarizes one column.
type ColumnStats struct {
	Name string
	Type saw.ColumnType
	Size int

	// Numeric summary, valid when Type is one of the scalar numeric
	// kinds.
	HasNumeric bool
	Mean       float64
	Min        float64
	Max        float64

	// Dictionary summary, valid when Type is saw.String.
	HasDictionary bool
	UniqueCount   int
	KeyWidth      saw.KeyWidth
	MostCommon    string
	MostCommonN   int32
}

// TableStats summarizes a whole table.
type TableStats struct {
	Name     string
	RowCount int
	Columns  []ColumnStats
}

// Calculate walks every column of table and builds its summary. It
// never mutates table.
func Calculate(table saw.Table) TableStats {
	ts := TableStats{
		Name:     table.Name(),
		RowCount: table.RowCount(),
		Columns:  make([]ColumnStats, 0, table.ColumnCount()),
	}
	for _, col := range table.Columns() {
		ts.Columns = append(ts.Columns, columnStats(col))
	}
	return ts
}

func columnStats(col saw.Column) ColumnStats {
	cs := ColumnStats{Name: col.Name(), Type: col.Type(), Size: col.Size()}

	switch col.Type() {
	case saw.Float:
		if c, ok := col.(saw.FloatColumn); ok {
			vs := c.FloatValues()
			fs := make([]float64, len(vs))
			for i, v := range vs {
				fs[i] = float64(v)
			}
			setNumeric(&cs, fs)
		}
	case saw.Double:
		if c, ok := col.(saw.DoubleColumn); ok {
			setNumeric(&cs, c.DoubleValues())
		}
	case saw.Integer:
		if c, ok := col.(saw.IntColumn); ok {
			vs := c.IntValues()
			fs := make([]float64, len(vs))
			for i, v := range vs {
				fs[i] = float64(v)
			}
			setNumeric(&cs, fs)
		}
	case saw.Short:
		if c, ok := col.(saw.ShortColumn); ok {
			vs := c.ShortValues()
			fs := make([]float64, len(vs))
			for i, v := range vs {
				fs[i] = float64(v)
			}
			setNumeric(&cs, fs)
		}
	case saw.Long:
		if c, ok := col.(saw.LongColumn); ok {
			vs := c.LongValues()
			fs := make([]float64, len(vs))
			for i, v := range vs {
				fs[i] = float64(v)
			}
			setNumeric(&cs, fs)
		}
	case saw.String:
		if c, ok := col.(saw.StringColumn); ok {
			setDictionary(&cs, c.Dictionary())
		}
	}

	return cs
}

func setNumeric(cs *ColumnStats, values []float64) {
	if len(values) == 0 {
		return
	}
	cs.HasNumeric = true
	cs.Min, cs.Max = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < cs.Min {
			cs.Min = v
		}
		if v > cs.Max {
			cs.Max = v
		}
	}
	cs.Mean = sum / float64(len(values))
}

func setDictionary(cs *ColumnStats, dict saw.Dictionary) {
	cs.HasDictionary = true
	cs.KeyWidth = dict.KeyWidth()
	cs.UniqueCount = len(dict.Entries())

	var bestKey int32
	var bestCount int32 = -1
	for k, n := range dict.Counts() {
		if n > bestCount || (n == bestCount && k < bestKey) {
			bestKey, bestCount = k, n
		}
	}
	if bestCount >= 0 {
		cs.MostCommon = dict.Entries()[bestKey]
		cs.MostCommonN = bestCount
	}
}

// WriteReport renders ts as human-readable text, in column order.
func WriteReport(w io.Writer, ts TableStats) error {
	if _, err := fmt.Fprintf(w, "table %q: %d rows, %d columns\n", ts.Name, ts.RowCount, len(ts.Columns)); err != nil {
		return err
	}
	for _, cs := range ts.Columns {
		switch {
		case cs.HasNumeric:
			if _, err := fmt.Fprintf(w, "  [%s] %q: size=%d mean=%.4f min=%.4f max=%.4f\n",
				cs.Type, cs.Name, cs.Size, cs.Mean, cs.Min, cs.Max); err != nil {
				return err
			}
		case cs.HasDictionary:
			if _, err := fmt.Fprintf(w, "  [%s] %q: size=%d unique=%d keyWidth=%s mostCommon=%q(%d)\n",
				cs.Type, cs.Name, cs.Size, cs.UniqueCount, cs.KeyWidth, cs.MostCommon, cs.MostCommonN); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "  [%s] %q: size=%d\n", cs.Type, cs.Name, cs.Size); err != nil {
				return err
			}
		}
	}
	return nil
}
