package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVParser parses trial balance CSV exports.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV trial balance.
func (p *CSVParser) Parse(r io.Reader) (ParseResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports vary; row width is checked per row
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return ParseResult{}, fmt.Errorf("reading trial balance CSV: %w", err)
	}
	return buildRows(records)
}
