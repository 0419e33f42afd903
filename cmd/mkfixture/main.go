// mkfixture converts a CSV site sheet into a Parquet or XLSX fixture with the
// same rows. Rows are copied as-is, so unnamed rows survive and still exercise
// the sanitizer downstream.
// Usage: go run ./cmd/mkfixture --in testdata/sites.csv --out testdata/sites.parquet
package main

import (
	"flag"
	"fmt"
	"os"

	goparquet "github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"

	"github.com/gyeh/sitecards/internal/ingest"
	"github.com/gyeh/sitecards/internal/model"
)

func main() {
	in := flag.String("in", "testdata/sites.csv", "input CSV sheet")
	out := flag.String("out", "testdata/sites.parquet", "output file (.parquet or .xlsx)")
	maxRows := flag.Int("rows", 0, "max rows to output (0 = all)")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	table, err := ingest.ParseCSV(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse input: %v\n", err)
		os.Exit(1)
	}

	rows := table.Rows
	if *maxRows > 0 && len(rows) > *maxRows {
		rows = rows[:*maxRows]
	}

	switch ingest.FormatOf(*out) {
	case ingest.FormatParquet:
		err = writeParquet(*out, rows)
	case ingest.FormatXLSX:
		err = writeXLSX(*out, rows)
	default:
		err = fmt.Errorf("unsupported output %s: want .parquet or .xlsx", *out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), *out)
	if len(table.IgnoredColumns) > 0 {
		fmt.Printf("Dropped columns: %v\n", table.IgnoredColumns)
	}
}

func writeParquet(path string, rows []model.SiteRow) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()

	writer := goparquet.NewGenericWriter[model.SiteRow](outFile)
	if _, err := writer.Write(rows); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return outFile.Close()
}

func writeXLSX(path string, rows []model.SiteRow) error {
	wb := excelize.NewFile()
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	header := model.SiteColumns()
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := rows[i].Values()
		if err := wb.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return wb.SaveAs(path)
}
