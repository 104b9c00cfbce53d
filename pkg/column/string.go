package column

import "github.com/kaitokuro/tablesaw/pkg/saw"

// Dictionary is the concrete saw.Dictionary implementation backing
// StringColumn: a key→value map, a key→count map, and the per-row key
// sequence, all co-indexed by dictionary key.
type Dictionary struct {
	keyWidth saw.KeyWidth
	entries  map[int32]string
	counts   map[int32]int32
	values   []int32
}

func (d *Dictionary) KeyWidth() saw.KeyWidth { return d.keyWidth }
func (d *Dictionary) Entries() map[int32]string { return d.entries }
func (d *Dictionary) Counts() map[int32]int32 { return d.counts }
func (d *Dictionary) Values() []int32 { return d.values }

// StringColumn holds dictionary-encoded text.
type StringColumn struct {
	name string
	dict *Dictionary
}

// NewStringColumn builds a dictionary from values, choosing the
// narrowest key width that fits the observed cardinality — the same
// cardinality-driven choice the original column library made between
// its byte/short/int dictionary map implementations.
func NewStringColumn(name string, values []string) *StringColumn {
	return newStringColumn(name, values, 0)
}

// NewStringColumnWithKeyWidth builds a dictionary forced to width,
// regardless of cardinality. Useful for exercising the byte/short/int
// codec paths directly.
func NewStringColumnWithKeyWidth(name string, values []string, width saw.KeyWidth) *StringColumn {
	return newStringColumn(name, values, width+1)
}

func newStringColumn(name string, values []string, forcedWidthPlusOne saw.KeyWidth) *StringColumn {
	entries := make(map[int32]string)
	counts := make(map[int32]int32)
	keyFor := make(map[string]int32)
	keys := make([]int32, len(values))

	var next int32
	for i, v := range values {
		k, ok := keyFor[v]
		if !ok {
			k = next
			next++
			keyFor[v] = k
			entries[k] = v
		}
		counts[k]++
		keys[i] = k
	}

	var width saw.KeyWidth
	if forcedWidthPlusOne > 0 {
		width = forcedWidthPlusOne - 1
	} else {
		width = keyWidthForCardinality(len(entries))
	}

	return &StringColumn{
		name: name,
		dict: &Dictionary{keyWidth: width, entries: entries, counts: counts, values: keys},
	}
}

// keyWidthForCardinality picks the key width for unique distinct keys:
// byte for up to 127, short for up to 32767, int beyond that. Keys are
// assigned from 0 upward, so the largest key stays below the width's
// maximum signed value.
func keyWidthForCardinality(unique int) saw.KeyWidth {
	switch {
	case unique <= 127:
		return saw.KeyWidthByte
	case unique <= 32767:
		return saw.KeyWidthShort
	default:
		return saw.KeyWidthInt
	}
}

func (c *StringColumn) Name() string { return c.name }
func (c *StringColumn) Type() saw.ColumnType { return saw.String }
func (c *StringColumn) Size() int { return len(c.dict.values) }
func (c *StringColumn) Dictionary() saw.Dictionary { return c.dict }
func (c *StringColumn) Get(i int) string { return c.dict.entries[c.dict.values[i]] }

// DictionariesEqual reports whether a and b have equal entries (as a
// set of key→value pairs) and equal counts (as a set of key→count
// pairs). It does not compare key width or the per-row values sequence
// — callers that need byte-identical values should compare those
// slices directly.
func DictionariesEqual(a, b saw.Dictionary) bool {
	ea, eb := a.Entries(), b.Entries()
	if len(ea) != len(eb) {
		return false
	}
	for k, v := range ea {
		if bv, ok := eb[k]; !ok || bv != v {
			return false
		}
	}

	ca, cb := a.Counts(), b.Counts()
	if len(ca) != len(cb) {
		return false
	}
	for k, v := range ca {
		if bv, ok := cb[k]; !ok || bv != v {
			return false
		}
	}

	return true
}
