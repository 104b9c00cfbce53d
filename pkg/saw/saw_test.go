package saw_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/kaitokuro/tablesaw/pkg/column"
	"github.com/kaitokuro/tablesaw/pkg/saw"
)

// TestRoundTripAllTypes saves and reloads one column of every type tag
// and checks that every value survives unchanged.
func TestRoundTripAllTypes(t *testing.T) {
	dates := make([]int32, 5)
	times := make([]int32, 5)
	dateTimes := make([]int64, 5)
	instants := make([]int64, 5)
	for i := range dates {
		d := time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC)
		dates[i] = column.PackLocalDate(d)
		times[i] = column.PackLocalTime(d.Add(time.Duration(i) * time.Hour))
		dateTimes[i] = column.PackLocalDateTime(d)
		instants[i] = column.PackInstant(d)
	}

	table := column.NewTable("all_types",
		column.NewFloatColumn("f", []float32{1.5, 2.5, -3.25, 0, 42}),
		column.NewDoubleColumn("d", []float64{1.1, 2.2, -3.3, 0, 1e100}),
		column.IndexColumn("i", 5, 10, 3),
		column.NewShortColumn("sh", []int16{-1, 0, 1, 32767, -32768}),
		column.NewLongColumn("lo", []int64{-1, 0, 1, 1 << 40, -(1 << 40)}),
		column.NewBooleanColumnFromBools("b", []bool{true, false, true, true, false}),
		column.NewLocalDateColumn("date", dates),
		column.NewLocalTimeColumn("time", times),
		column.NewLocalDateTimeColumn("dt", dateTimes),
		column.NewInstantColumn("inst", instants),
		column.NewStringColumn("str", []string{"a", "b", "a", "c", "b"}),
		column.NewTextColumn("txt", []string{"hello", "world", "foo", "bar", "baz"}),
	)

	dir := t.TempDir()
	tablePath, err := saw.SaveTable(context.Background(), dir, table)
	if err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}

	got, err := saw.Read(context.Background(), tablePath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if got.RowCount() != 5 {
		t.Errorf("RowCount: got %d, want 5", got.RowCount())
	}
	if got.ColumnCount() != 12 {
		t.Fatalf("ColumnCount: got %d, want 12", got.ColumnCount())
	}

	for _, col := range got.Columns() {
		switch col.Name() {
		case "f":
			checkFloats(t, col.(saw.FloatColumn).FloatValues(), []float32{1.5, 2.5, -3.25, 0, 42})
		case "d":
			checkDoubles(t, col.(saw.DoubleColumn).DoubleValues(), []float64{1.1, 2.2, -3.3, 0, 1e100})
		case "i":
			want := []int32{10, 13, 16, 19, 22}
			if !reflect.DeepEqual(col.(saw.IntColumn).IntValues(), want) {
				t.Errorf("column i: got %v, want %v", col.(saw.IntColumn).IntValues(), want)
			}
		case "sh":
			want := []int16{-1, 0, 1, 32767, -32768}
			if !reflect.DeepEqual(col.(saw.ShortColumn).ShortValues(), want) {
				t.Errorf("column sh: got %v, want %v", col.(saw.ShortColumn).ShortValues(), want)
			}
		case "lo":
			want := []int64{-1, 0, 1, 1 << 40, -(1 << 40)}
			if !reflect.DeepEqual(col.(saw.LongColumn).LongValues(), want) {
				t.Errorf("column lo: got %v, want %v", col.(saw.LongColumn).LongValues(), want)
			}
		case "b":
			want := []int8{column.BooleanTrue, column.BooleanFalse, column.BooleanTrue, column.BooleanTrue, column.BooleanFalse}
			if !reflect.DeepEqual(col.(saw.BooleanColumn).BooleanValues(), want) {
				t.Errorf("column b: got %v, want %v", col.(saw.BooleanColumn).BooleanValues(), want)
			}
		case "date":
			if !reflect.DeepEqual(col.(saw.LocalDateColumn).PackedDateValues(), dates) {
				t.Errorf("column date mismatch")
			}
		case "time":
			if !reflect.DeepEqual(col.(saw.LocalTimeColumn).PackedTimeValues(), times) {
				t.Errorf("column time mismatch")
			}
		case "dt":
			if !reflect.DeepEqual(col.(saw.LocalDateTimeColumn).PackedDateTimeValues(), dateTimes) {
				t.Errorf("column dt mismatch")
			}
		case "inst":
			if !reflect.DeepEqual(col.(saw.InstantColumn).InstantValues(), instants) {
				t.Errorf("column inst mismatch")
			}
		case "str":
			sc := col.(saw.StringColumn)
			want := column.NewStringColumn("str", []string{"a", "b", "a", "c", "b"})
			if !column.DictionariesEqual(sc.Dictionary(), want.Dictionary()) {
				t.Errorf("column str dictionary mismatch")
			}
			if !reflect.DeepEqual(sc.Dictionary().Values(), want.Dictionary().Values()) {
				t.Errorf("column str per-row values mismatch: got %v want %v", sc.Dictionary().Values(), want.Dictionary().Values())
			}
		case "txt":
			want := []string{"hello", "world", "foo", "bar", "baz"}
			if !reflect.DeepEqual(col.(saw.TextColumn).TextValues(), want) {
				t.Errorf("column txt: got %v, want %v", col.(saw.TextColumn).TextValues(), want)
			}
			if col.Type() != saw.Text {
				t.Errorf("column txt type: got %v, want TEXT", col.Type())
			}
		}
	}
}

func checkFloats(t *testing.T, got, want []float32) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func checkDoubles(t *testing.T, got, want []float64) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestStringDictionaryKeyWidths exercises all three key widths.
func TestStringDictionaryKeyWidths(t *testing.T) {
	tests := []struct {
		name  string
		width saw.KeyWidth
	}{
		{"byte", saw.KeyWidthByte},
		{"short", saw.KeyWidthShort},
		{"int", saw.KeyWidthInt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := []string{"x", "y", "z", "x", "y"}
			sc := column.NewStringColumnWithKeyWidth("s", values, tc.width)
			table := column.NewTable("t_"+tc.name, sc)

			dir := t.TempDir()
			tablePath, err := saw.SaveTable(context.Background(), dir, table)
			if err != nil {
				t.Fatalf("SaveTable failed: %v", err)
			}

			got, err := saw.Read(context.Background(), tablePath)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}

			gotCol := got.Columns()[0].(saw.StringColumn)
			if gotCol.Dictionary().KeyWidth() != tc.width {
				t.Errorf("key width: got %v, want %v", gotCol.Dictionary().KeyWidth(), tc.width)
			}
			if !column.DictionariesEqual(gotCol.Dictionary(), sc.Dictionary()) {
				t.Errorf("dictionary mismatch")
			}
		})
	}
}

// TestEmptyTable saves and reloads a table with no columns, and a table
// with columns but zero rows.
func TestEmptyTable(t *testing.T) {
	t.Run("no columns", func(t *testing.T) {
		table := column.NewTable("empty")
		dir := t.TempDir()
		tablePath, err := saw.SaveTable(context.Background(), dir, table)
		if err != nil {
			t.Fatalf("SaveTable failed: %v", err)
		}
		got, err := saw.Read(context.Background(), tablePath)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if got.ColumnCount() != 0 || got.RowCount() != 0 {
			t.Errorf("got columns=%d rows=%d, want 0/0", got.ColumnCount(), got.RowCount())
		}
	})

	t.Run("zero rows with columns", func(t *testing.T) {
		table := column.NewTable("zero_rows",
			column.NewIntColumn("i", nil),
			column.NewStringColumn("s", nil),
		)
		dir := t.TempDir()
		tablePath, err := saw.SaveTable(context.Background(), dir, table)
		if err != nil {
			t.Fatalf("SaveTable failed: %v", err)
		}
		got, err := saw.Read(context.Background(), tablePath)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if got.RowCount() != 0 || got.ColumnCount() != 2 {
			t.Errorf("got columns=%d rows=%d, want 2/0", got.ColumnCount(), got.RowCount())
		}
	})
}

// TestOverwriteLeavesNoResidue saves a wide table, then a narrower one
// under the same name, and checks no column from the first save
// survives.
func TestOverwriteLeavesNoResidue(t *testing.T) {
	dir := t.TempDir()

	wide := column.NewTable("t",
		column.NewIntColumn("a", []int32{1, 2, 3}),
		column.NewIntColumn("b", []int32{4, 5, 6}),
		column.NewIntColumn("c", []int32{7, 8, 9}),
	)
	tablePath, err := saw.SaveTable(context.Background(), dir, wide)
	if err != nil {
		t.Fatalf("first SaveTable failed: %v", err)
	}

	narrow := column.NewTable("t", column.NewIntColumn("a", []int32{100}))
	tablePath2, err := saw.SaveTable(context.Background(), dir, narrow)
	if err != nil {
		t.Fatalf("second SaveTable failed: %v", err)
	}
	if tablePath != tablePath2 {
		t.Fatalf("overwrite produced a different path: %q vs %q", tablePath, tablePath2)
	}

	entries, err := os.ReadDir(tablePath)
	if err != nil {
		t.Fatalf("reading table directory: %v", err)
	}
	// Metadata.json plus exactly one column file.
	if len(entries) != 2 {
		t.Errorf("table directory has %d entries, want 2 (metadata + one column)", len(entries))
	}

	got, err := saw.Read(context.Background(), tablePath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.ColumnCount() != 1 {
		t.Fatalf("got %d columns, want 1", got.ColumnCount())
	}
	if got.Columns()[0].(saw.IntColumn).IntValues()[0] != 100 {
		t.Errorf("stale data survived overwrite")
	}
}

// TestSaveTableRejectsEmptyParentDir covers SaveTable's input validation.
func TestSaveTableRejectsEmptyParentDir(t *testing.T) {
	table := column.NewTable("t", column.NewIntColumn("a", []int32{1}))
	_, err := saw.SaveTable(context.Background(), "", table)
	if !errors.Is(err, saw.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

// TestCorruptMetadataDetected tampers with a saved table's metadata so
// that the declared unique count no longer matches the dictionary it
// describes, and checks that Read reports corruption rather than
// silently returning wrong data.
func TestCorruptMetadataDetected(t *testing.T) {
	table := column.NewTable("t", column.NewStringColumn("s", []string{"a", "b", "c"}))
	dir := t.TempDir()
	tablePath, err := saw.SaveTable(context.Background(), dir, table)
	if err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}

	metaPath := filepath.Join(tablePath, "Metadata.json")
	raw, err := os.ReadFile(metaPath)
	if err != nil {
		t.Fatalf("reading metadata: %v", err)
	}

	var meta map[string]any
	if err := json.Unmarshal(raw, &meta); err != nil {
		t.Fatalf("unmarshaling metadata: %v", err)
	}
	cols := meta["columnMetadata"].([]any)
	cm := cols[0].(map[string]any)
	cm["uniqueCount"] = 99
	cols[0] = cm
	meta["columnMetadata"] = cols

	tampered, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("marshaling tampered metadata: %v", err)
	}
	if err := os.WriteFile(metaPath, tampered, 0o644); err != nil {
		t.Fatalf("writing tampered metadata: %v", err)
	}

	_, err = saw.Read(context.Background(), tablePath)
	if !errors.Is(err, saw.ErrCorrupt) {
		t.Fatalf("got %v, want ErrCorrupt", err)
	}
}

// TestCancellationSurfacesInterrupted cancels the context before the
// save can complete and checks the error is classified as interrupted.
func TestCancellationSurfacesInterrupted(t *testing.T) {
	cols := make([]saw.Column, 0, 50)
	for i := 0; i < 50; i++ {
		values := make([]int64, 200000)
		cols = append(cols, column.NewLongColumn("c"+strconv.Itoa(i), values))
	}
	table := column.NewTable("t", cols...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := saw.SaveTable(ctx, dir, table, 1)
	if !errors.Is(err, saw.ErrInterrupted) {
		t.Fatalf("got %v, want ErrInterrupted", err)
	}
}

// TestWorkerPoolSizeInvariance saves the same table with different
// worker pool sizes and checks the resulting column files are
// byte-identical, since dictionary keys and section order must not
// depend on goroutine scheduling.
func TestWorkerPoolSizeInvariance(t *testing.T) {
	values := make([]string, 2000)
	pool := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for i := range values {
		values[i] = pool[i%len(pool)]
	}
	table := func() *column.Table {
		return column.NewTable("t",
			column.NewStringColumn("s", values),
			column.IndexColumn("i", len(values), 0, 1),
		)
	}

	dirA := t.TempDir()
	pathA, err := saw.SaveTable(context.Background(), dirA, table(), 1)
	if err != nil {
		t.Fatalf("SaveTable (pool=1) failed: %v", err)
	}

	dirB := t.TempDir()
	pathB, err := saw.SaveTable(context.Background(), dirB, table(), 8)
	if err != nil {
		t.Fatalf("SaveTable (pool=8) failed: %v", err)
	}

	entriesA, err := os.ReadDir(pathA)
	if err != nil {
		t.Fatalf("reading dir A: %v", err)
	}
	for _, e := range entriesA {
		if e.Name() == "Metadata.json" {
			continue
		}
		a, err := os.ReadFile(filepath.Join(pathA, e.Name()))
		if err != nil {
			t.Fatalf("reading %s from A: %v", e.Name(), err)
		}
		b, err := os.ReadFile(filepath.Join(pathB, e.Name()))
		if err != nil {
			t.Fatalf("reading %s from B: %v", e.Name(), err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("column file %s differs between pool sizes", e.Name())
		}
	}
}

// TestLargeTable exercises a table with many rows across two integer
// columns, sampling positions rather than comparing every value.
func TestLargeTable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-table test in -short mode")
	}

	const rows = 10_000_000
	a := make([]int64, rows)
	b := make([]int64, rows)
	for i := range a {
		a[i] = int64(i)
		b[i] = int64(rows - i)
	}
	table := column.NewTable("big", column.NewLongColumn("a", a), column.NewLongColumn("b", b))

	dir := t.TempDir()
	tablePath, err := saw.SaveTable(context.Background(), dir, table)
	if err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}

	got, err := saw.Read(context.Background(), tablePath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.RowCount() != rows {
		t.Fatalf("got %d rows, want %d", got.RowCount(), rows)
	}

	var ca, cb saw.LongColumn
	for _, col := range got.Columns() {
		switch col.Name() {
		case "a":
			ca = col.(saw.LongColumn)
		case "b":
			cb = col.(saw.LongColumn)
		}
	}
	for _, i := range []int{0, 1, rows / 2, rows - 2, rows - 1} {
		if ca.LongValues()[i] != int64(i) {
			t.Errorf("column a[%d]: got %d, want %d", i, ca.LongValues()[i], i)
		}
		if cb.LongValues()[i] != int64(rows-i) {
			t.Errorf("column b[%d]: got %d, want %d", i, cb.LongValues()[i], rows-i)
		}
	}
}

// TestMillionRowStringRoundTripTwice saves and reloads a three-string-
// column, million-row table twice in a row, checking both dictionary
// and per-row values survive each time.
func TestMillionRowStringRoundTripTwice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping million-row test in -short mode")
	}

	const rows = 1_000_000
	pools := [][]string{
		{"north", "south", "east", "west"},
		{"red", "green", "blue"},
		{"small", "medium", "large", "xlarge", "xxlarge"},
	}
	names := []string{"region", "color", "size"}

	build := func() *column.Table {
		cols := make([]saw.Column, len(pools))
		for ci, pool := range pools {
			values := make([]string, rows)
			for i := range values {
				values[i] = pool[(i*7+ci)%len(pool)]
			}
			cols[ci] = column.NewStringColumn(names[ci], values)
		}
		return column.NewTable("strings", cols...)
	}

	for attempt := 0; attempt < 2; attempt++ {
		table := build()
		dir := t.TempDir()
		tablePath, err := saw.SaveTable(context.Background(), dir, table)
		if err != nil {
			t.Fatalf("attempt %d: SaveTable failed: %v", attempt, err)
		}
		got, err := saw.Read(context.Background(), tablePath)
		if err != nil {
			t.Fatalf("attempt %d: Read failed: %v", attempt, err)
		}
		if got.RowCount() != rows {
			t.Fatalf("attempt %d: got %d rows, want %d", attempt, got.RowCount(), rows)
		}
		for _, col := range got.Columns() {
			want := table.Columns()[indexOf(table, col.Name())].(saw.StringColumn)
			sc := col.(saw.StringColumn)
			if !column.DictionariesEqual(sc.Dictionary(), want.Dictionary()) {
				t.Errorf("attempt %d: column %q dictionary mismatch", attempt, col.Name())
			}
			if !reflect.DeepEqual(sc.Dictionary().Values(), want.Dictionary().Values()) {
				t.Errorf("attempt %d: column %q per-row values mismatch", attempt, col.Name())
			}
		}
	}
}

func indexOf(table saw.Table, name string) int {
	for i, c := range table.Columns() {
		if c.Name() == name {
			return i
		}
	}
	return -1
}

// TestMixedFiveColumnTable exercises a small, realistic mixed-type
// table end to end.
func TestMixedFiveColumnTable(t *testing.T) {
	table := column.NewTable("mixed",
		column.IndexColumn("id", 4, 1, 1),
		column.NewDoubleColumn("score", []float64{9.5, 8.25, 7.0, 10}),
		column.NewStringColumn("grade", []string{"A", "B", "C", "A"}),
		column.NewBooleanColumnFromBools("passed", []bool{true, true, false, true}),
		column.NewTextColumn("notes", []string{"excellent", "good", "needs work", "excellent"}),
	)

	dir := t.TempDir()
	tablePath, err := saw.SaveTable(context.Background(), dir, table)
	if err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}
	got, err := saw.Read(context.Background(), tablePath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.RowCount() != 4 || got.ColumnCount() != 5 {
		t.Fatalf("got rows=%d columns=%d, want 4/5", got.RowCount(), got.ColumnCount())
	}
}

// TestInstantsTable exercises an all-INSTANT table.
func TestInstantsTable(t *testing.T) {
	base := time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)
	values := make([]int64, 10)
	for i := range values {
		values[i] = column.PackInstant(base.Add(time.Duration(i) * time.Minute))
	}
	table := column.NewTable("events", column.NewInstantColumn("occurred_at", values))

	dir := t.TempDir()
	tablePath, err := saw.SaveTable(context.Background(), dir, table)
	if err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}
	got, err := saw.Read(context.Background(), tablePath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	col := got.Columns()[0].(saw.InstantColumn)
	if !reflect.DeepEqual(col.InstantValues(), values) {
		t.Errorf("got %v, want %v", col.InstantValues(), values)
	}
}
