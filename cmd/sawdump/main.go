// Command sawdump reads a saw table directory and prints a summary
// report, for inspecting what a prior sawgen (or any writer) produced.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/kaitokuro/tablesaw/pkg/saw"
	"github.com/kaitokuro/tablesaw/pkg/stats"
)

func main() {
	var tableDir = flag.String("table", "", "path to a table directory written by SaveTable")
	flag.Parse()

	if *tableDir == "" {
		log.Fatal("-table is required")
	}

	table, err := saw.Read(context.Background(), *tableDir)
	if err != nil {
		log.Fatalf("reading table: %v", err)
	}

	if err := stats.WriteReport(os.Stdout, stats.Calculate(table)); err != nil {
		log.Fatalf("writing stats report: %v", err)
	}
}
