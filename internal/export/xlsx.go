package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/sitecards/internal/model"
	"github.com/gyeh/sitecards/internal/normalize"
)

// SheetName is the worksheet the cards are written to.
const SheetName = "Cards"

// Headers lists the exported columns in order.
var Headers = []string{
	"key", "title", "subtitle", "category", "admission", "security",
	"drop_in", "drop_off", "accepted_from", "accepted_other",
	"intake", "intake_tier", "intake_tone", "medical", "length_of_stay",
	"transport_in", "transport_out", "transport_support", "not_ada",
	"capacity_constrained", "hours", "beds", "location", "phone", "map_url",
}

// Workbook builds a workbook with one normalized card per row.
func Workbook(rows []model.SiteRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	for i, d := range normalize.DescribeAll(rows) {
		r := i + 2
		for col, value := range cardValues(&d) {
			cell, _ := excelize.CoordinatesToCellName(col+1, r)
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}

	if err := f.AutoFilter(SheetName, autoFilterRange(len(rows)), nil); err != nil {
		f.Close()
		return nil, fmt.Errorf("auto filter: %w", err)
	}
	return f, nil
}

// Write streams the workbook to w.
func Write(w io.Writer, rows []model.SiteRow) error {
	f, err := Workbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile saves the workbook at path, creating parent directories.
func WriteFile(path string, rows []model.SiteRow) error {
	f, err := Workbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func cardValues(d *model.Descriptor) []any {
	accepted := d.Accepted.Present()
	labels := make([]string, len(accepted))
	for i, m := range accepted {
		labels[i] = m.Label
	}
	return []any{
		d.Key,
		d.Title,
		d.Subtitle,
		string(d.Category),
		string(d.Admission),
		string(d.Lock),
		yesNo(d.DropIn),
		yesNo(d.DropOff),
		strings.Join(labels, ", "),
		strings.Join(d.Accepted.Other, ", "),
		d.Complexity.Label,
		d.Complexity.Tier,
		string(d.Complexity.Tone()),
		d.Medical.Label,
		d.Stay.Label,
		strings.Join(d.TransportIn.Labels(), "/"),
		strings.Join(d.TransportOut.Labels(), "/"),
		yesNo(d.TransportSupport),
		yesNo(d.NotADA),
		yesNo(d.CapacityConstrained),
		d.Hours,
		d.Beds,
		d.Location,
		d.Phone,
		d.MapURL,
	}
}

func autoFilterRange(n int) string {
	last, _ := excelize.CoordinatesToCellName(len(Headers), n+1)
	return "A1:" + last
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
