package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXParser parses trial balance .xlsx workbooks. Data is read from
// the first sheet.
type XLSXParser struct{}

// Format returns the parser name.
func (p *XLSXParser) Format() string { return "xlsx" }

// Parse reads an xlsx trial balance.
func (p *XLSXParser) Parse(r io.Reader) (ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ParseResult{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ParseResult{}, fmt.Errorf("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return ParseResult{}, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(records) > 0 {
		// GetRows drops trailing empty cells; pad to the header width
		// so rows with an empty last column keep their shape.
		width := len(records[0])
		for i, rec := range records {
			for len(rec) < width {
				rec = append(rec, "")
			}
			records[i] = rec
		}
	}
	return buildRows(records)
}
