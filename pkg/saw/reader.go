package saw

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kaitokuro/tablesaw/internal/workerpool"
)

// defaultReaderPoolSize mirrors the writer's default; nothing in the
// format requires reads to be parallel, but there is no reason not to
// reuse the same bounded-concurrency shape.
const defaultReaderPoolSize = 10

// Read loads the table persisted at tableDir by a prior call to
// SaveTable. Columns are reassembled in the order recorded by the
// table's metadata document, regardless of the order in which their
// files finished decoding.
func Read(ctx context.Context, tableDir string) (Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify(err)
	}

	meta, err := readTableMetadata(filepath.Join(tableDir, metadataFileName))
	if err != nil {
		return nil, err
	}

	columns := make([]Column, len(meta.ColumnMetadata))
	pool := workerpool.New(ctx, defaultReaderPoolSize)

	for i, cm := range meta.ColumnMetadata {
		i, cm := i, cm
		pool.Go(func(taskCtx context.Context) error {
			col, err := readColumnFile(taskCtx, filepath.Join(tableDir, cm.ID), cm, meta.RowCount)
			if err != nil {
				return err
			}
			columns[i] = col
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		return nil, classify(err)
	}

	return &readTable{name: meta.Name, columns: columns, rowCount: meta.RowCount}, nil
}

func readColumnFile(ctx context.Context, path string, cm columnMetadata, rowCount int) (Column, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ioError(fmt.Sprintf("column file for %q does not exist", cm.Name), err)
		}
		return nil, ioError(fmt.Sprintf("opening column file for %q", cm.Name), err)
	}
	defer f.Close()

	return decodeColumn(ctx, f, cm, rowCount)
}
