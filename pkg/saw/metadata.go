package saw

import (
	"encoding/json"
	"os"
)

// metadataFileName is the fixed name of the uncompressed JSON metadata
// document inside every table directory.
const metadataFileName = "Metadata.json"

// columnMetadata is one column's entry in the table metadata document.
type columnMetadata struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	// KeyWidth and UniqueCount are present only for STRING columns, and
	// resolve the original format's open question about how a reader
	// is supposed to know the dictionary's key width and unique-value
	// count before it has read a single byte of the column file.
	KeyWidth    string `json:"keyWidth,omitempty"`
	UniqueCount int    `json:"uniqueCount,omitempty"`
}

// tableMetadata is the full JSON document written to Metadata.json.
type tableMetadata struct {
	Name           string           `json:"name"`
	RowCount       int              `json:"rowCount"`
	ColumnMetadata []columnMetadata `json:"columnMetadata"`
}

// buildTableMetadata captures everything the reader needs from table
// without touching column payload bytes.
func buildTableMetadata(table Table) (*tableMetadata, error) {
	columns := table.Columns()
	meta := &tableMetadata{
		Name:           table.Name(),
		RowCount:       table.RowCount(),
		ColumnMetadata: make([]columnMetadata, len(columns)),
	}

	for i, col := range columns {
		id := columnID(i, col.Name())
		cm := columnMetadata{
			ID:   id,
			Type: col.Type().String(),
			Name: col.Name(),
		}

		if col.Type() == String {
			sc, ok := col.(StringColumn)
			if !ok {
				return nil, invalidArgument("column %q is tagged STRING but does not implement StringColumn", col.Name())
			}
			dict := sc.Dictionary()
			cm.KeyWidth = dict.KeyWidth().String()
			cm.UniqueCount = len(dict.Entries())
		}

		meta.ColumnMetadata[i] = cm
	}

	return meta, nil
}

func writeTableMetadata(path string, meta *tableMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return invalidArgument("marshaling table metadata: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ioError("writing metadata file", err)
	}
	return nil
}

func readTableMetadata(path string) (*tableMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ioError("metadata file does not exist", err)
		}
		return nil, ioError("reading metadata file", err)
	}

	var meta tableMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, corrupt("metadata file is not valid JSON: %v", err)
	}
	if meta.RowCount < 0 {
		return nil, corrupt("metadata has negative row count %d", meta.RowCount)
	}
	for _, cm := range meta.ColumnMetadata {
		if cm.ID == "" {
			return nil, corrupt("metadata has a column with an empty id")
		}
		if _, err := ParseColumnType(cm.Type); err != nil {
			return nil, corrupt("metadata column %q has unknown type %q", cm.Name, cm.Type)
		}
	}
	return &meta, nil
}
