package saw

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kaitokuro/tablesaw/internal/workerpool"
)

// defaultWriterPoolSize mirrors the original writer's WRITER_POOL_SIZE:
// each column is encoded on its own worker, bounded to this many at
// once unless the caller overrides it.
const defaultWriterPoolSize = 10

// SaveTable persists table under parentDir, in its own subdirectory
// named after the table (sanitized to a filesystem-safe form). An
// existing table directory of the same name is replaced in full — no
// column from a previous save survives. workerPoolSize optionally
// overrides the default bounded concurrency (10); only the first value
// is used.
//
// SaveTable builds the new table in a temporary sibling directory and
// atomically renames it into place only once every column and the
// metadata document have been written successfully, so a failed or
// canceled save never leaves a half-written table directory visible
// under its real name.
func SaveTable(ctx context.Context, parentDir string, table Table, workerPoolSize ...int) (string, error) {
	if parentDir == "" {
		return "", invalidArgument("parent directory must not be empty")
	}
	if err := ctx.Err(); err != nil {
		return "", classify(err)
	}

	poolSize := defaultWriterPoolSize
	if len(workerPoolSize) > 0 && workerPoolSize[0] > 0 {
		poolSize = workerPoolSize[0]
	}

	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return "", ioError("creating parent directory", err)
	}

	sawName := sanitizeName(table.Name())
	tableDir := filepath.Join(parentDir, sawName)

	tmpDir, err := os.MkdirTemp(parentDir, sawName+".tmp-*")
	if err != nil {
		return "", ioError("creating temporary table directory", err)
	}
	succeeded := false
	defer func() {
		if !succeeded {
			_ = os.RemoveAll(tmpDir)
		}
	}()

	meta, err := buildTableMetadata(table)
	if err != nil {
		return "", err
	}
	if err := writeTableMetadata(filepath.Join(tmpDir, metadataFileName), meta); err != nil {
		return "", err
	}

	if err := writeColumns(ctx, tmpDir, table.Columns(), meta.ColumnMetadata, poolSize); err != nil {
		return "", err
	}

	if err := replaceTableDir(tmpDir, tableDir); err != nil {
		return "", err
	}
	succeeded = true

	abs, err := filepath.Abs(tableDir)
	if err != nil {
		return "", ioError("resolving absolute table path", err)
	}
	return abs, nil
}

func writeColumns(ctx context.Context, tmpDir string, columns []Column, metas []columnMetadata, poolSize int) error {
	pool := workerpool.New(ctx, poolSize)

	for i, col := range columns {
		col := col
		path := filepath.Join(tmpDir, metas[i].ID)
		pool.Go(func(taskCtx context.Context) error {
			return writeColumnFile(taskCtx, path, col)
		})
	}

	if err := pool.Wait(); err != nil {
		return classify(err)
	}
	return nil
}

func writeColumnFile(ctx context.Context, path string, col Column) error {
	f, err := os.Create(path)
	if err != nil {
		return ioError(fmt.Sprintf("creating column file for %q", col.Name()), err)
	}
	defer f.Close()

	if err := encodeColumn(ctx, f, col); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return ioError(fmt.Sprintf("syncing column file for %q", col.Name()), err)
	}
	return nil
}

// replaceTableDir atomically swaps tmpDir into place as tableDir. Any
// prior contents of tableDir are removed first, matching the documented
// destructive-overwrite behavior; the rename itself is the only step
// that makes the new contents visible under tableDir's name.
func replaceTableDir(tmpDir, tableDir string) error {
	if _, err := os.Stat(tableDir); err == nil {
		if err := os.RemoveAll(tableDir); err != nil {
			return ioError("removing existing table directory", err)
		}
	} else if !os.IsNotExist(err) {
		return ioError("checking existing table directory", err)
	}

	if err := os.Rename(tmpDir, tableDir); err != nil {
		return ioError("renaming temporary table directory into place", err)
	}
	return nil
}
