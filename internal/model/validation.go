package model

import "github.com/shopspring/decimal"

// RowReject records an input row that could not be parsed, with the
// 1-based line number in the source file and a descriptive reason.
type RowReject struct {
	Line   int
	Reason string
}

// UnmappedAccount records an account no classification rule matched.
type UnmappedAccount struct {
	AccountCode string
	Label       string
	Amount      decimal.Decimal
	Side        Side
}

// ValidationReport collects everything the pipeline found wrong or
// worth flagging. Business-data problems land here instead of being
// raised; an empty report is the happy path.
type ValidationReport struct {
	RejectedRows       []RowReject
	UnmappedAccounts   []UnmappedAccount
	Warnings           []string
	IdentityOK         bool
	IdentityDelta      decimal.Decimal
	CashFlowReconciled bool
	UndefinedRatios    []string
}

// Clean reports whether the report carries no findings at all.
func (r ValidationReport) Clean() bool {
	return len(r.RejectedRows) == 0 &&
		len(r.UnmappedAccounts) == 0 &&
		len(r.Warnings) == 0 &&
		r.IdentityOK &&
		r.CashFlowReconciled &&
		len(r.UndefinedRatios) == 0
}
