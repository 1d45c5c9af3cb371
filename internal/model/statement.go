package model

import "github.com/shopspring/decimal"

// LineItemTotal is the aggregated, sign-normalised amount for one
// line item code. Asset and expense items report debit-normal
// balances as positive; liability, net-asset and revenue items report
// credit-normal balances as positive.
type LineItemTotal struct {
	Code   LineItemCode
	Amount decimal.Decimal
}

// StatementLine is one rendered row of a statement section.
type StatementLine struct {
	Code    LineItemCode
	GRAPRef string // e.g. "CA-001"
	Name    string // e.g. "Cash and Cash Equivalents"
	Amount  decimal.Decimal
}

// FinancialPosition is the Statement of Financial Position.
type FinancialPosition struct {
	CurrentAssets         []StatementLine
	NonCurrentAssets      []StatementLine
	CurrentLiabilities    []StatementLine
	NonCurrentLiabilities []StatementLine
	NetAssetLines         []StatementLine

	TotalCurrentAssets         decimal.Decimal
	TotalNonCurrentAssets      decimal.Decimal
	TotalAssets                decimal.Decimal
	TotalCurrentLiabilities    decimal.Decimal
	TotalNonCurrentLiabilities decimal.Decimal
	TotalLiabilities           decimal.Decimal
	NetAssets                  decimal.Decimal // TotalAssets - TotalLiabilities
}

// FinancialPerformance is the Statement of Financial Performance.
type FinancialPerformance struct {
	Revenue  []StatementLine
	Expenses []StatementLine

	TotalRevenue   decimal.Decimal
	TotalExpenses  decimal.Decimal
	SurplusDeficit decimal.Decimal
}

// CashFlowLine is one adjustment row of the cash flow statement.
type CashFlowLine struct {
	Description string
	Amount      decimal.Decimal
}

// CashFlow is the indirect-method Cash Flow Statement.
type CashFlow struct {
	Operating []CashFlowLine
	Investing []CashFlowLine
	Financing []CashFlowLine

	NetOperating decimal.Decimal
	NetInvesting decimal.Decimal
	NetFinancing decimal.Decimal
	NetMovement  decimal.Decimal
	OpeningCash  decimal.Decimal
	ClosingCash  decimal.Decimal

	// Reconciled is true when ClosingCash agrees with the cash line
	// item on the position statement within tolerance.
	Reconciled bool
}

// StatementResult is the full set of built statements. Immutable
// once returned by the statement builder.
type StatementResult struct {
	Position    FinancialPosition
	Performance FinancialPerformance
	CashFlow    CashFlow

	// IdentityOK is true when assets equal liabilities plus net
	// assets within tolerance. IdentityDelta is the residual either
	// way, so callers can show the discrepancy beside the statements.
	IdentityOK    bool
	IdentityDelta decimal.Decimal
}
