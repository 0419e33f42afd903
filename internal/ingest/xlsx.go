package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the first worksheet of a workbook. The first non-empty row
// is the header.
func ParseXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	start := 0
	for start < len(rows) && isBlankRecord(rows[start]) {
		start++
	}
	if start == len(rows) {
		return newTableBuilder(nil).result(), nil
	}

	b := newTableBuilder(rows[start])
	for _, record := range rows[start+1:] {
		b.add(record)
	}
	return b.result(), nil
}
