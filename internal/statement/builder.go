// Package statement assembles the three GRAP statements from
// aggregated line item totals.
package statement

import (
	"github.com/shopspring/decimal"

	"github.com/grapmap-dev/grapmap/internal/aggregate"
	"github.com/grapmap-dev/grapmap/internal/model"
	"github.com/grapmap-dev/grapmap/internal/taxonomy"
)

// DefaultTolerance is the rounding tolerance for the accounting
// identity and the cash flow reconciliation: one cent.
var DefaultTolerance = decimal.RequireFromString("0.01")

// Builder produces StatementResults. A Builder holds only read-only
// configuration and may be shared across requests.
type Builder struct {
	tolerance decimal.Decimal
	prior     *aggregate.Totals
}

// Option configures a Builder.
type Option func(*Builder)

// WithTolerance overrides the identity-check tolerance.
func WithTolerance(t decimal.Decimal) Option {
	return func(b *Builder) { b.tolerance = t }
}

// WithPrior supplies prior-period totals so balance sheet movements
// in the cash flow statement are computed against real opening
// balances. Without it, opening balances are zero and movements
// equal the closing totals.
func WithPrior(prior *aggregate.Totals) Option {
	return func(b *Builder) { b.prior = prior }
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{tolerance: DefaultTolerance, prior: aggregate.NewTotals()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build assembles all three statements and runs the identity check.
// A failing identity flags the result; the statements are still
// returned so callers can present them beside the warning.
func (b *Builder) Build(totals *aggregate.Totals) model.StatementResult {
	pos := b.buildPosition(totals)
	perf := b.buildPerformance(totals)
	cf := b.buildCashFlow(totals, perf.SurplusDeficit)

	// Assets = Liabilities + Net Assets, where reported net assets
	// are the accumulated surplus brought in on the trial balance
	// plus the current period's surplus.
	reportedNetAssets := sumLines(pos.NetAssetLines).Add(perf.SurplusDeficit)
	delta := pos.TotalAssets.Sub(pos.TotalLiabilities).Sub(reportedNetAssets)

	return model.StatementResult{
		Position:      pos,
		Performance:   perf,
		CashFlow:      cf,
		IdentityOK:    delta.Abs().Cmp(b.tolerance) <= 0,
		IdentityDelta: delta,
	}
}

func (b *Builder) buildPosition(totals *aggregate.Totals) model.FinancialPosition {
	pos := model.FinancialPosition{
		CurrentAssets:         sectionLines(totals, model.SectionCurrentAssets),
		NonCurrentAssets:      sectionLines(totals, model.SectionNonCurrentAssets),
		CurrentLiabilities:    sectionLines(totals, model.SectionCurrentLiabilities),
		NonCurrentLiabilities: sectionLines(totals, model.SectionNonCurrentLiabilities),
		NetAssetLines:         sectionLines(totals, model.SectionNetAssets),
	}
	pos.TotalCurrentAssets = totals.SectionTotal(model.SectionCurrentAssets)
	pos.TotalNonCurrentAssets = totals.SectionTotal(model.SectionNonCurrentAssets)
	pos.TotalAssets = pos.TotalCurrentAssets.Add(pos.TotalNonCurrentAssets)
	pos.TotalCurrentLiabilities = totals.SectionTotal(model.SectionCurrentLiabilities)
	pos.TotalNonCurrentLiabilities = totals.SectionTotal(model.SectionNonCurrentLiabilities)
	pos.TotalLiabilities = pos.TotalCurrentLiabilities.Add(pos.TotalNonCurrentLiabilities)
	pos.NetAssets = pos.TotalAssets.Sub(pos.TotalLiabilities)
	return pos
}

func (b *Builder) buildPerformance(totals *aggregate.Totals) model.FinancialPerformance {
	perf := model.FinancialPerformance{
		Revenue:  sectionLines(totals, model.SectionRevenue),
		Expenses: sectionLines(totals, model.SectionExpenses),
	}
	perf.TotalRevenue = totals.SectionTotal(model.SectionRevenue)
	perf.TotalExpenses = totals.SectionTotal(model.SectionExpenses)
	perf.SurplusDeficit = perf.TotalRevenue.Sub(perf.TotalExpenses)
	return perf
}

// buildCashFlow derives the indirect-method cash flow statement.
// Operating starts at surplus/deficit, adds back depreciation and
// finance costs, then applies working capital movements. Investing
// carries asset additions; financing carries non-current funding
// movements and finance costs paid. Movements are closing totals
// less prior-period totals.
func (b *Builder) buildCashFlow(totals *aggregate.Totals, surplus decimal.Decimal) model.CashFlow {
	move := func(code model.LineItemCode) decimal.Decimal {
		return totals.Amount(code).Sub(b.prior.Amount(code))
	}
	depreciation := totals.Amount(model.CodeDepreciationAmortisation)
	financeCosts := totals.Amount(model.CodeFinanceCosts)

	cf := model.CashFlow{}
	addLine := func(section *[]model.CashFlowLine, desc string, amount decimal.Decimal, always bool) decimal.Decimal {
		if always || !amount.IsZero() {
			*section = append(*section, model.CashFlowLine{Description: desc, Amount: amount})
		}
		return amount
	}

	// Operating activities.
	net := addLine(&cf.Operating, "Surplus/(deficit) for the year", surplus, true)
	net = net.Add(addLine(&cf.Operating, "Depreciation and amortisation", depreciation, false))
	net = net.Add(addLine(&cf.Operating, "Finance costs", financeCosts, false))
	net = net.Add(addLine(&cf.Operating, "(Increase)/decrease in receivables from exchange transactions", move(model.CodeReceivablesExchange).Neg(), false))
	net = net.Add(addLine(&cf.Operating, "(Increase)/decrease in receivables from non-exchange transactions", move(model.CodeReceivablesNonExchange).Neg(), false))
	net = net.Add(addLine(&cf.Operating, "(Increase)/decrease in inventories", move(model.CodeInventories).Neg(), false))
	net = net.Add(addLine(&cf.Operating, "(Increase)/decrease in prepayments", move(model.CodePrepayments).Neg(), false))
	net = net.Add(addLine(&cf.Operating, "Increase/(decrease) in payables from exchange transactions", move(model.CodePayablesExchange), false))
	net = net.Add(addLine(&cf.Operating, "Increase/(decrease) in current employee benefit obligations", move(model.CodeEmployeeBenefitsCurrent), false))
	net = net.Add(addLine(&cf.Operating, "Increase/(decrease) in current provisions", move(model.CodeProvisionsCurrent), false))
	cf.NetOperating = net

	// Investing activities. The depreciation added back above is
	// attributed to PPE, so additions are the carrying movement plus
	// the charge.
	net = addLine(&cf.Investing, "Additions to property, plant and equipment", move(model.CodePropertyPlantEquipment).Add(depreciation).Neg(), false)
	net = net.Add(addLine(&cf.Investing, "Additions to intangible assets", move(model.CodeIntangibleAssets).Neg(), false))
	net = net.Add(addLine(&cf.Investing, "Movement in investments", move(model.CodeInvestments).Neg(), false))
	cf.NetInvesting = net

	// Financing activities.
	net = addLine(&cf.Financing, "Proceeds from/(repayment of) borrowings", move(model.CodeBorrowingsNonCurrent), false)
	net = net.Add(addLine(&cf.Financing, "Movement in non-current employee benefit obligations", move(model.CodeEmployeeBenefitsNonCurrent), false))
	net = net.Add(addLine(&cf.Financing, "Movement in non-current provisions", move(model.CodeProvisionsNonCurrent), false))
	net = net.Add(addLine(&cf.Financing, "Movement in accumulated surplus/(deficit)", move(model.CodeAccumulatedSurplus), false))
	net = net.Add(addLine(&cf.Financing, "Finance costs paid", financeCosts.Neg(), false))
	cf.NetFinancing = net

	cf.NetMovement = cf.NetOperating.Add(cf.NetInvesting).Add(cf.NetFinancing)
	cf.OpeningCash = b.prior.Amount(model.CodeCashAndEquivalents)
	cf.ClosingCash = cf.OpeningCash.Add(cf.NetMovement)

	reported := totals.Amount(model.CodeCashAndEquivalents)
	cf.Reconciled = cf.ClosingCash.Sub(reported).Abs().Cmp(b.tolerance) <= 0
	return cf
}

// sectionLines builds presentation rows for the codes with activity
// in a section, in taxonomy order.
func sectionLines(totals *aggregate.Totals, section model.Section) []model.StatementLine {
	var lines []model.StatementLine
	for _, it := range taxonomy.BySection(section) {
		if !totals.Has(it.Code) {
			continue
		}
		lines = append(lines, model.StatementLine{
			Code:    it.Code,
			GRAPRef: it.GRAPRef,
			Name:    it.Name,
			Amount:  totals.Amount(it.Code),
		})
	}
	return lines
}

func sumLines(lines []model.StatementLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount)
	}
	return sum
}
