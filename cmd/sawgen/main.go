// Command sawgen generates a synthetic table and saves it in saw
// format, for exercising the writer against realistic-sized data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/kaitokuro/tablesaw/pkg/column"
	"github.com/kaitokuro/tablesaw/pkg/saw"
	"github.com/kaitokuro/tablesaw/pkg/stats"
)

func main() {
	var (
		outDir    = flag.String("out", ".", "parent directory to write the table into")
		tableName = flag.String("name", "generated", "table name")
		rows      = flag.Int("rows", 100000, "number of rows to generate")
		poolSize  = flag.Int("workers", 0, "writer worker pool size (0 = default)")
	)
	flag.Parse()

	log.Printf("generating %d rows for table %q", *rows, *tableName)
	table := generateTable(*tableName, *rows)

	var report = stats.Calculate(table)
	if err := stats.WriteReport(os.Stdout, report); err != nil {
		log.Fatalf("writing stats report: %v", err)
	}

	ctx := context.Background()
	var path string
	var err error
	if *poolSize > 0 {
		path, err = saw.SaveTable(ctx, *outDir, table, *poolSize)
	} else {
		path, err = saw.SaveTable(ctx, *outDir, table)
	}
	if err != nil {
		log.Fatalf("saving table: %v", err)
	}

	fmt.Printf("wrote table to %s\n", path)
}

func generateTable(name string, rows int) *column.Table {
	timestamps := make([]int64, rows)
	values := make([]int64, rows)
	hosts := make([]string, rows)
	levels := make([]string, rows)

	hostPool := []string{"192.168.1.1", "10.0.0.1", "localhost", "db-server", "app-node-01"}
	levelPool := []string{"INFO", "WARN", "ERROR", "DEBUG"}

	start := time.Now().Unix()
	for i := 0; i < rows; i++ {
		timestamps[i] = start + int64(i)
		values[i] = int64(rand.Intn(10000))
		hosts[i] = hostPool[rand.Intn(len(hostPool))]
		levels[i] = levelPool[rand.Intn(len(levelPool))]
	}

	return column.NewTable(
		name,
		column.NewLongColumn("timestamp", timestamps),
		column.NewLongColumn("value", values),
		column.NewStringColumn("host", hosts),
		column.NewStringColumn("log_level", levels),
	)
}
