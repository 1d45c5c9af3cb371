package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/grapmap-dev/grapmap/internal/model"
)

// csvHeader is the header row of the statement export.
var csvHeader = []string{"statement", "section", "grap_ref", "line_item", "amount"}

// WriteCSV exports every statement line, with section subtotals and
// headline figures, as rows the rendering collaborator can consume.
func WriteCSV(w io.Writer, result model.StatementResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	write := func(statement, section, ref, name string, amount decimal.Decimal) error {
		return cw.Write([]string{statement, section, ref, name, amount.StringFixed(2)})
	}
	writeLines := func(statement, section string, lines []model.StatementLine) error {
		for _, l := range lines {
			if err := write(statement, section, l.GRAPRef, l.Name, l.Amount); err != nil {
				return err
			}
		}
		return nil
	}

	pos := result.Position
	const sofp = "financial_position"
	if err := writeLines(sofp, "current_assets", pos.CurrentAssets); err != nil {
		return err
	}
	if err := writeLines(sofp, "non_current_assets", pos.NonCurrentAssets); err != nil {
		return err
	}
	if err := write(sofp, "totals", "", "Total Assets", pos.TotalAssets); err != nil {
		return err
	}
	if err := writeLines(sofp, "current_liabilities", pos.CurrentLiabilities); err != nil {
		return err
	}
	if err := writeLines(sofp, "non_current_liabilities", pos.NonCurrentLiabilities); err != nil {
		return err
	}
	if err := write(sofp, "totals", "", "Total Liabilities", pos.TotalLiabilities); err != nil {
		return err
	}
	if err := writeLines(sofp, "net_assets", pos.NetAssetLines); err != nil {
		return err
	}
	if err := write(sofp, "totals", "", "Net Assets", pos.NetAssets); err != nil {
		return err
	}

	perf := result.Performance
	const sofe = "financial_performance"
	if err := writeLines(sofe, "revenue", perf.Revenue); err != nil {
		return err
	}
	if err := write(sofe, "totals", "", "Total Revenue", perf.TotalRevenue); err != nil {
		return err
	}
	if err := writeLines(sofe, "expenses", perf.Expenses); err != nil {
		return err
	}
	if err := write(sofe, "totals", "", "Total Expenses", perf.TotalExpenses); err != nil {
		return err
	}
	if err := write(sofe, "totals", "", "Surplus/(Deficit)", perf.SurplusDeficit); err != nil {
		return err
	}

	cf := result.CashFlow
	const cfs = "cash_flow"
	writeCashLines := func(section string, lines []model.CashFlowLine) error {
		for _, l := range lines {
			if err := write(cfs, section, "", l.Description, l.Amount); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeCashLines("operating", cf.Operating); err != nil {
		return err
	}
	if err := write(cfs, "totals", "", "Net Cash from Operating Activities", cf.NetOperating); err != nil {
		return err
	}
	if err := writeCashLines("investing", cf.Investing); err != nil {
		return err
	}
	if err := write(cfs, "totals", "", "Net Cash from Investing Activities", cf.NetInvesting); err != nil {
		return err
	}
	if err := writeCashLines("financing", cf.Financing); err != nil {
		return err
	}
	if err := write(cfs, "totals", "", "Net Cash from Financing Activities", cf.NetFinancing); err != nil {
		return err
	}
	if err := write(cfs, "totals", "", "Cash at End of Year", cf.ClosingCash); err != nil {
		return err
	}

	return cw.Error()
}
