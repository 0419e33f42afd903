package ingest

import (
	"fmt"

	"github.com/gyeh/sitecards/internal/parquetread"
)

// ParseParquet decodes a Parquet export of the sheet held in memory.
func ParseParquet(data []byte) (*Table, error) {
	reader, err := parquetread.OpenReader(data)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema()); err != nil {
		return nil, fmt.Errorf("validate parquet: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return &Table{Rows: rows, IgnoredColumns: parquetread.IgnoredColumns(reader.Schema())}, nil
}
