// Package pipeline runs the full mapping flow: classify, aggregate,
// build statements, derive ratios, and assemble the validation
// report. It is the entry point external layers (CLI, web) call.
package pipeline

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/grapmap-dev/grapmap/internal/aggregate"
	"github.com/grapmap-dev/grapmap/internal/classifier"
	"github.com/grapmap-dev/grapmap/internal/model"
	"github.com/grapmap-dev/grapmap/internal/ratio"
	"github.com/grapmap-dev/grapmap/internal/rules"
	"github.com/grapmap-dev/grapmap/internal/statement"
	"github.com/grapmap-dev/grapmap/internal/taxonomy"
)

// Result is everything one processing run produces. The caller
// always receives a Result; business-data problems surface in the
// Validation report, never as errors.
type Result struct {
	Entries    []model.ClassifiedEntry
	Totals     []model.LineItemTotal
	Statement  model.StatementResult
	Ratios     model.RatioSet
	Validation model.ValidationReport
}

// Engine wires the stages together. Its rule table and builder are
// read-only after construction; each Run builds fresh collections,
// so one Engine may serve concurrent requests.
type Engine struct {
	classifier *classifier.Classifier
	builder    *statement.Builder
}

// New creates an Engine from a validated rule table. Table problems
// are configuration errors and fail construction.
func New(table *rules.Table, opts ...statement.Option) (*Engine, error) {
	if err := taxonomy.Validate(); err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("rule table: %w", err)
	}
	return &Engine{
		classifier: classifier.New(table),
		builder:    statement.NewBuilder(opts...),
	}, nil
}

// Run processes one trial balance. Rejects and warnings from the
// ingest layer pass through into the validation report.
func (e *Engine) Run(rows []model.TrialBalanceRow, rejects []model.RowReject, warnings []string) Result {
	entries := e.classifier.ClassifyAll(rows)
	totals, unmapped := aggregate.Sum(entries)
	stmt := e.builder.Build(totals)
	ratios := ratio.Compute(stmt)

	report := model.ValidationReport{
		RejectedRows:       rejects,
		UnmappedAccounts:   unmapped,
		Warnings:           append(warnings, integrityWarnings(rows)...),
		IdentityOK:         stmt.IdentityOK,
		IdentityDelta:      stmt.IdentityDelta,
		CashFlowReconciled: stmt.CashFlow.Reconciled,
		UndefinedRatios:    ratios.Undefined(),
	}

	return Result{
		Entries:    entries,
		Totals:     totals.Lines(),
		Statement:  stmt,
		Ratios:     ratios,
		Validation: report,
	}
}

// integrityWarnings runs the trial balance sanity checks: duplicate
// account codes and an out-of-balance debit/credit total. Warnings
// never stop the pipeline.
func integrityWarnings(rows []model.TrialBalanceRow) []string {
	var warnings []string

	seen := make(map[string]int)
	duplicates := 0
	for _, r := range rows {
		if r.AccountCode == "" {
			continue
		}
		seen[r.AccountCode]++
		if seen[r.AccountCode] == 2 {
			duplicates++
		}
	}
	if duplicates > 0 {
		warnings = append(warnings, fmt.Sprintf("found %d duplicate account codes", duplicates))
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, r := range rows {
		switch r.Side {
		case model.SideDebit:
			totalDebit = totalDebit.Add(r.Amount)
		case model.SideCredit:
			totalCredit = totalCredit.Add(r.Amount)
		}
	}
	if diff := totalDebit.Sub(totalCredit); diff.Abs().Cmp(statement.DefaultTolerance) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"trial balance does not balance: debits %s vs credits %s",
			totalDebit.StringFixed(2), totalCredit.StringFixed(2)))
	}

	return warnings
}
