package ingest

import (
	"bytes"
	"path"
	"strings"
)

// Format identifies how a source is encoded.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatXLSX    Format = "xlsx"
	FormatParquet Format = "parquet"
)

// FormatOf picks a format from a file name or URL path. Anything that is not
// recognizably a workbook or Parquet file is treated as CSV.
func FormatOf(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".xlsx":
		return FormatXLSX
	case ".parquet":
		return FormatParquet
	default:
		return FormatCSV
	}
}

// Decode parses data according to the format implied by name.
func Decode(name string, data []byte) (*Table, error) {
	switch FormatOf(name) {
	case FormatXLSX:
		return ParseXLSX(bytes.NewReader(data))
	case FormatParquet:
		return ParseParquet(data)
	default:
		return ParseCSV(bytes.NewReader(data))
	}
}
