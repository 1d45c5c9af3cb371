package ingest

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/grapmap-dev/grapmap/internal/model"
)

// headerVariants maps the column spellings seen in the wild onto
// canonical names. Matching is case-insensitive on trimmed headers.
var headerVariants = map[string]string{
	"account code":        "code",
	"acc code":            "code",
	"acccode":             "code",
	"account":             "code",
	"account description": "description",
	"description":         "description",
	"debit balance":       "debit",
	"debit":               "debit",
	"credit balance":      "credit",
	"credit":              "credit",
}

// columns holds the resolved column index per canonical name.
type columns struct {
	code        int
	description int
	debit       int
	credit      int
}

// resolveColumns maps a header row to column indexes. The account
// code, description, debit and credit columns must all be present.
func resolveColumns(header []string) (columns, error) {
	cols := columns{code: -1, description: -1, debit: -1, credit: -1}
	for i, h := range header {
		name, ok := headerVariants[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		switch name {
		case "code":
			cols.code = i
		case "description":
			cols.description = i
		case "debit":
			cols.debit = i
		case "credit":
			cols.credit = i
		}
	}
	var missing []string
	for _, c := range []struct {
		idx  int
		name string
	}{
		{cols.code, "account code"},
		{cols.description, "account description"},
		{cols.debit, "debit balance"},
		{cols.credit, "credit balance"},
	} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// buildRows converts header-plus-data records into trial balance
// rows. Rows that cannot be parsed become rejects; rows carrying
// both a debit and a credit are netted with a warning. Every
// well-formed row surfaces, even at zero.
func buildRows(records [][]string) (ParseResult, error) {
	var result ParseResult
	if len(records) == 0 {
		return result, fmt.Errorf("file is empty")
	}

	cols, err := resolveColumns(records[0])
	if err != nil {
		return result, err
	}

	bothSides := 0
	for i, rec := range records[1:] {
		line := i + 2 // 1-based, after the header
		row, both, reject := buildRow(rec, cols, line)
		if reject != nil {
			result.Rejects = append(result.Rejects, *reject)
			continue
		}
		if both {
			bothSides++
		}
		result.Rows = append(result.Rows, row)
	}
	if bothSides > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("found %d accounts with both debit and credit balances; netted", bothSides))
	}
	return result, nil
}

func buildRow(rec []string, cols columns, line int) (model.TrialBalanceRow, bool, *model.RowReject) {
	need := cols.code
	for _, idx := range []int{cols.description, cols.debit, cols.credit} {
		if idx > need {
			need = idx
		}
	}
	if len(rec) <= need {
		return model.TrialBalanceRow{}, false, &model.RowReject{Line: line, Reason: "too few columns"}
	}

	code := strings.TrimSpace(rec[cols.code])
	label := strings.TrimSpace(rec[cols.description])
	if code == "" && label == "" {
		return model.TrialBalanceRow{}, false, &model.RowReject{Line: line, Reason: "empty account code and description"}
	}

	debit, err := parseAmount(rec[cols.debit])
	if err != nil {
		return model.TrialBalanceRow{}, false, &model.RowReject{Line: line, Reason: fmt.Sprintf("bad debit balance %q", rec[cols.debit])}
	}
	credit, err := parseAmount(rec[cols.credit])
	if err != nil {
		return model.TrialBalanceRow{}, false, &model.RowReject{Line: line, Reason: fmt.Sprintf("bad credit balance %q", rec[cols.credit])}
	}

	both := !debit.IsZero() && !credit.IsZero()
	net := debit.Sub(credit)
	row := model.TrialBalanceRow{
		AccountCode: code,
		Label:       label,
		Amount:      net.Abs(),
		Side:        model.SideDebit,
	}
	if net.IsNegative() {
		row.Side = model.SideCredit
	}
	return row, both, nil
}

// parseAmount reads a spreadsheet money cell. Blank means zero;
// currency markers, spaces and thousands separators are tolerated,
// and accountant parentheses mean negative.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimPrefix(s, "R")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
