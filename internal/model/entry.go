package model

import "github.com/shopspring/decimal"

// Side tags a trial balance amount as a debit or credit balance.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// TrialBalanceRow is one parsed row of an uploaded trial balance.
// Immutable once created by the ingest layer.
type TrialBalanceRow struct {
	AccountCode string
	Label       string
	Amount      decimal.Decimal
	Side        Side
}

// MatchStatus indicates how an entry was classified.
type MatchStatus string

const (
	StatusMatched  MatchStatus = "matched"
	StatusUnmapped MatchStatus = "unmapped"
)

// ClassifiedEntry is a TrialBalanceRow with its classification
// outcome. Exactly one of the two states holds: a matched entry
// carries a line item code and the rule that won; an unmapped entry
// carries neither. Reclassification produces a new entry.
type ClassifiedEntry struct {
	Row         TrialBalanceRow
	Status      MatchStatus
	Code        LineItemCode // empty when unmapped
	MatchedRule string       // pattern of the winning rule, for traceability
}

// NewMatched returns a classified entry for a rule match.
func NewMatched(row TrialBalanceRow, code LineItemCode, rule string) ClassifiedEntry {
	return ClassifiedEntry{Row: row, Status: StatusMatched, Code: code, MatchedRule: rule}
}

// NewUnmapped returns a classified entry for a row no rule matched.
func NewUnmapped(row TrialBalanceRow) ClassifiedEntry {
	return ClassifiedEntry{Row: row, Status: StatusUnmapped}
}

// Unmapped reports whether no rule matched the entry.
func (e ClassifiedEntry) Unmapped() bool {
	return e.Status == StatusUnmapped
}
