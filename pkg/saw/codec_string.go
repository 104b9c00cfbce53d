package saw

import "sort"

// encodeString writes a STRING column's dictionary in the five-section
// layout: entries.keys, entries.values, counts.keys, counts.values,
// values. Keys are written in ascending order within the entries and
// counts sections (the values section keeps row order) so that saving
// the same table twice produces byte-identical output regardless of map
// iteration order or worker pool size.
func encodeString(fw *frameWriter, col Column) error {
	sc, ok := col.(StringColumn)
	if !ok {
		return invalidArgument("column %q is tagged STRING but does not implement StringColumn", col.Name())
	}
	dict := sc.Dictionary()
	width := dict.KeyWidth()

	entries := dict.Entries()
	entryKeys := sortedKeys(entries)
	for _, k := range entryKeys {
		if err := writeKey(fw, width, k); err != nil {
			return err
		}
	}
	for _, k := range entryKeys {
		if err := fw.writeUTF(entries[k]); err != nil {
			return err
		}
	}

	counts := dict.Counts()
	countKeys := sortedKeys(counts)
	for _, k := range countKeys {
		if err := writeKey(fw, width, k); err != nil {
			return err
		}
	}
	for _, k := range countKeys {
		if err := fw.writeInt32(counts[k]); err != nil {
			return err
		}
	}

	for _, k := range dict.Values() {
		if err := writeKey(fw, width, k); err != nil {
			return err
		}
		if err := fw.tick(); err != nil {
			return err
		}
	}

	return fw.flush()
}

// decodeString reads the five dictionary sections sized by the column
// metadata's keyWidth and uniqueCount fields, resolving the original
// format's open question about how a reader discovers those without
// probing ahead into the stream.
func decodeString(fr *frameReader, base baseColumn, cm columnMetadata, rowCount int) (Column, error) {
	width, err := ParseKeyWidth(cm.KeyWidth)
	if err != nil {
		return nil, corrupt("STRING column %q has invalid keyWidth %q", cm.Name, cm.KeyWidth)
	}
	unique := cm.UniqueCount
	if unique < 0 {
		return nil, corrupt("STRING column %q has negative uniqueCount %d", cm.Name, unique)
	}

	entryKeys := make([]int32, unique)
	for i := range entryKeys {
		k, err := readKey(fr, width)
		if err != nil {
			return nil, err
		}
		entryKeys[i] = k
	}

	entries := make(map[int32]string, unique)
	for _, k := range entryKeys {
		s, err := fr.readUTF()
		if err != nil {
			return nil, err
		}
		entries[k] = s
	}

	countKeys := make([]int32, unique)
	for i := range countKeys {
		k, err := readKey(fr, width)
		if err != nil {
			return nil, err
		}
		countKeys[i] = k
	}

	counts := make(map[int32]int32, unique)
	for _, k := range countKeys {
		c, err := fr.readInt32()
		if err != nil {
			return nil, err
		}
		counts[k] = c
	}

	if len(entries) != unique || len(counts) != unique {
		return nil, corrupt("STRING column %q declared %d unique values but dictionary has %d entries / %d counts", cm.Name, unique, len(entries), len(counts))
	}

	values := make([]int32, rowCount)
	for i := range values {
		k, err := readKey(fr, width)
		if err != nil {
			return nil, err
		}
		if _, ok := entries[k]; !ok {
			return nil, corrupt("STRING column %q row %d references unknown dictionary key %d", cm.Name, i, k)
		}
		values[i] = k
	}

	dict := &readDictionary{keyWidth: width, entries: entries, counts: counts, values: values}
	return &readStringColumn{baseColumn: base, dict: dict}, nil
}

func writeKey(fw *frameWriter, width KeyWidth, key int32) error {
	switch width {
	case KeyWidthByte:
		return fw.writeInt8(int8(key))
	case KeyWidthShort:
		return fw.writeInt16(int16(key))
	case KeyWidthInt:
		return fw.writeInt32(key)
	default:
		return invalidArgument("unknown dictionary key width %v", width)
	}
}

func readKey(fr *frameReader, width KeyWidth) (int32, error) {
	switch width {
	case KeyWidthByte:
		v, err := fr.readInt8()
		return int32(v), err
	case KeyWidthShort:
		v, err := fr.readInt16()
		return int32(v), err
	case KeyWidthInt:
		return fr.readInt32()
	default:
		return 0, invalidArgument("unknown dictionary key width %v", width)
	}
}

func sortedKeys[V any](m map[int32]V) []int32 {
	keys := make([]int32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
