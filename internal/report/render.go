// Package report renders a pipeline result into a formatted
// document for the terminal, plus a CSV export of the statement
// lines. Rendering consumes the structured result only; it knows
// nothing about how the mapping was computed.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/grapmap-dev/grapmap/internal/model"
	"github.com/grapmap-dev/grapmap/internal/pipeline"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5F5FD7", Dark: "#8787FF"})
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#5FD7FF"})
	totalStyle   = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

const (
	descWidth   = 52
	amountWidth = 16
)

// Meta carries the report header details.
type Meta struct {
	Entity    string
	PeriodEnd string // e.g. "31 March 2026"
}

// Render writes the full report: three statements, key ratios, and
// validation findings.
func Render(w io.Writer, result pipeline.Result, meta Meta) {
	if meta.Entity != "" {
		fmt.Fprintln(w, titleStyle.Render(strings.ToUpper(meta.Entity)))
	}
	fmt.Fprintln(w, titleStyle.Render("ANNUAL FINANCIAL STATEMENTS"))
	if meta.PeriodEnd != "" {
		fmt.Fprintln(w, mutedStyle.Render("for the year ended "+meta.PeriodEnd))
	}
	fmt.Fprintln(w)

	renderPosition(w, result.Statement.Position)
	renderPerformance(w, result.Statement.Performance)
	renderCashFlow(w, result.Statement.CashFlow)
	renderRatios(w, result.Ratios)
	renderFindings(w, result.Validation)
}

func renderPosition(w io.Writer, pos model.FinancialPosition) {
	fmt.Fprintln(w, headingStyle.Render("STATEMENT OF FINANCIAL POSITION"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ASSETS")
	renderSection(w, "Current assets", pos.CurrentAssets, pos.TotalCurrentAssets)
	renderSection(w, "Non-current assets", pos.NonCurrentAssets, pos.TotalNonCurrentAssets)
	renderTotal(w, "TOTAL ASSETS", pos.TotalAssets)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "LIABILITIES")
	renderSection(w, "Current liabilities", pos.CurrentLiabilities, pos.TotalCurrentLiabilities)
	renderSection(w, "Non-current liabilities", pos.NonCurrentLiabilities, pos.TotalNonCurrentLiabilities)
	renderTotal(w, "TOTAL LIABILITIES", pos.TotalLiabilities)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "NET ASSETS")
	for _, l := range pos.NetAssetLines {
		renderLine(w, l.Name, l.Amount)
	}
	renderTotal(w, "TOTAL NET ASSETS", pos.NetAssets)
	fmt.Fprintln(w)
}

func renderPerformance(w io.Writer, perf model.FinancialPerformance) {
	fmt.Fprintln(w, headingStyle.Render("STATEMENT OF FINANCIAL PERFORMANCE"))
	fmt.Fprintln(w)

	renderSection(w, "Revenue", perf.Revenue, perf.TotalRevenue)
	renderSection(w, "Expenses", perf.Expenses, perf.TotalExpenses)
	renderTotal(w, "SURPLUS/(DEFICIT) FOR THE YEAR", perf.SurplusDeficit)
	fmt.Fprintln(w)
}

func renderCashFlow(w io.Writer, cf model.CashFlow) {
	fmt.Fprintln(w, headingStyle.Render("CASH FLOW STATEMENT"))
	fmt.Fprintln(w)

	renderCashSection(w, "Cash flows from operating activities", cf.Operating, cf.NetOperating)
	renderCashSection(w, "Cash flows from investing activities", cf.Investing, cf.NetInvesting)
	renderCashSection(w, "Cash flows from financing activities", cf.Financing, cf.NetFinancing)

	renderLine(w, "Net movement in cash for the year", cf.NetMovement)
	renderLine(w, "Cash at the beginning of the year", cf.OpeningCash)
	renderTotal(w, "CASH AT THE END OF THE YEAR", cf.ClosingCash)
	if !cf.Reconciled {
		fmt.Fprintln(w, warnStyle.Render("  closing cash does not reconcile with the cash line item"))
	}
	fmt.Fprintln(w)
}

func renderRatios(w io.Writer, set model.RatioSet) {
	fmt.Fprintln(w, headingStyle.Render("KEY FINANCIAL RATIOS"))
	fmt.Fprintln(w)

	rows := []struct {
		name      string
		ratio     model.Ratio
		benchmark string
	}{
		{"Current Ratio", set.CurrentRatio, ">= 1.5"},
		{"Quick Ratio", set.QuickRatio, ">= 1.0"},
		{"Debt to Equity", set.DebtToEquity, "<= 1.0"},
		{"Debt to Assets", set.DebtToAssets, "<= 0.5"},
		{"Operating Margin (%)", set.OperatingMargin, ">= 10"},
		{"Return on Assets (%)", set.ReturnOnAssets, ">= 5"},
		{"Return on Equity (%)", set.ReturnOnEquity, ""},
		{"Asset Turnover", set.AssetTurnover, ""},
	}
	for _, r := range rows {
		value := r.ratio.String()
		if !r.ratio.Defined() {
			value = mutedStyle.Render(value)
		}
		fmt.Fprintf(w, "  %-*s %*s", descWidth-2, r.name, amountWidth, value)
		if r.benchmark != "" {
			fmt.Fprintf(w, "   %s", mutedStyle.Render("benchmark "+r.benchmark))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func renderFindings(w io.Writer, report model.ValidationReport) {
	fmt.Fprintln(w, headingStyle.Render("VALIDATION"))
	fmt.Fprintln(w)

	if report.Clean() {
		fmt.Fprintln(w, okStyle.Render("  no findings"))
		fmt.Fprintln(w)
		return
	}

	if report.IdentityOK {
		fmt.Fprintln(w, okStyle.Render("  accounting identity holds (assets = liabilities + net assets)"))
	} else {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("  accounting identity violated by %s", formatMoney(report.IdentityDelta))))
	}
	if !report.CashFlowReconciled {
		fmt.Fprintln(w, warnStyle.Render("  cash flow statement does not reconcile to the cash balance"))
	}
	for _, warning := range report.Warnings {
		fmt.Fprintln(w, warnStyle.Render("  "+warning))
	}
	for _, rej := range report.RejectedRows {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("  row %d rejected: %s", rej.Line, rej.Reason)))
	}
	if len(report.UnmappedAccounts) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("  %d unmapped accounts excluded from the statements:", len(report.UnmappedAccounts))))
		for _, u := range report.UnmappedAccounts {
			label := u.Label
			if u.AccountCode != "" {
				label = u.AccountCode + " " + label
			}
			fmt.Fprintf(w, "    %-*s %*s %s\n", descWidth-4, label, amountWidth, formatMoney(u.Amount), u.Side)
		}
	}
	if len(report.UndefinedRatios) > 0 {
		fmt.Fprintln(w, mutedStyle.Render("  undefined ratios: "+strings.Join(report.UndefinedRatios, ", ")))
	}
	fmt.Fprintln(w)
}

func renderSection(w io.Writer, name string, lines []model.StatementLine, total decimal.Decimal) {
	fmt.Fprintln(w, mutedStyle.Render("  "+name))
	for _, l := range lines {
		renderLine(w, l.Name, l.Amount)
	}
	renderLine(w, "Total "+strings.ToLower(name), total)
}

func renderCashSection(w io.Writer, name string, lines []model.CashFlowLine, total decimal.Decimal) {
	fmt.Fprintln(w, mutedStyle.Render("  "+name))
	for _, l := range lines {
		renderLine(w, l.Description, l.Amount)
	}
	renderLine(w, "Net cash "+strings.TrimPrefix(name, "Cash flows "), total)
	fmt.Fprintln(w)
}

func renderLine(w io.Writer, name string, amount decimal.Decimal) {
	fmt.Fprintf(w, "  %-*s %*s\n", descWidth-2, name, amountWidth, formatMoney(amount))
}

func renderTotal(w io.Writer, name string, amount decimal.Decimal) {
	fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("  %-*s %*s", descWidth-2, name, amountWidth, formatMoney(amount))))
}
