package ingest

import (
	"strings"

	"github.com/gyeh/sitecards/internal/model"
)

// Table is the result of decoding a sheet: one SiteRow per data row plus the
// header names that did not map to a known field.
type Table struct {
	Rows           []model.SiteRow
	IgnoredColumns []string
}

// tableBuilder maps header positions to SiteRow fields once and then fills
// rows from records.
type tableBuilder struct {
	columns []string
	table   Table
}

func newTableBuilder(header []string) *tableBuilder {
	b := &tableBuilder{columns: make([]string, len(header))}
	var probe model.SiteRow
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			continue
		}
		if probe.Field(name) == nil {
			b.table.IgnoredColumns = append(b.table.IgnoredColumns, name)
			continue
		}
		b.columns[i] = name
	}
	return b
}

// add appends one row. Missing trailing cells leave their fields empty and
// cells beyond the header are ignored. A record whose cells are all blank is
// skipped.
func (b *tableBuilder) add(record []string) {
	if isBlankRecord(record) {
		return
	}
	var row model.SiteRow
	for i, cell := range record {
		if i >= len(b.columns) || b.columns[i] == "" {
			continue
		}
		*row.Field(b.columns[i]) = cell
	}
	b.table.Rows = append(b.table.Rows, row)
}

func (b *tableBuilder) result() *Table {
	if b.table.Rows == nil {
		b.table.Rows = []model.SiteRow{}
	}
	return &b.table
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
