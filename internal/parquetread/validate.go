package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/sitecards/internal/model"
)

// nameColumns are the headers a site can be identified by. Rows without
// either are dropped during sanitization, so a file lacking both columns
// could never produce a card.
var nameColumns = []string{"nickname", "officialName"}

// ValidateSchema checks that the Parquet schema has at least one name column.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[field.Name()] = true
	}

	for _, col := range nameColumns {
		if columns[col] {
			return nil
		}
	}
	return fmt.Errorf("no name column found; need at least one of: %s",
		strings.Join(nameColumns, ", "))
}

// IgnoredColumns lists schema columns that do not map to a SiteRow field.
func IgnoredColumns(schema *parquet.Schema) []string {
	var row model.SiteRow
	var ignored []string
	for _, field := range schema.Fields() {
		if row.Field(field.Name()) == nil {
			ignored = append(ignored, field.Name())
		}
	}
	return ignored
}
