// Package classifier maps raw trial balance rows to GRAP line item
// codes using the ordered rule table. Every input produces a
// ClassifiedEntry; rows no rule matches come back unmapped rather
// than failing.
package classifier

import (
	"strings"
	"unicode"

	"github.com/grapmap-dev/grapmap/internal/model"
	"github.com/grapmap-dev/grapmap/internal/rules"
)

// Classifier evaluates a rule table against account labels. It is
// read-only after construction and safe to share across requests.
type Classifier struct {
	ordered []rules.Rule
}

// New creates a Classifier. The table must already be validated.
func New(table *rules.Table) *Classifier {
	return &Classifier{ordered: table.Ordered()}
}

// Normalize folds an account label for matching: lowercase, letters
// and digits only, single spaces between words. "Bank - Current
// Account" becomes "bank current account".
func Normalize(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	lastSpace := true
	for _, r := range strings.ToLower(label) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// Classify maps one row to a ClassifiedEntry. The first matching
// rule in priority order wins. Empty labels with no account code are
// always unmapped.
func (c *Classifier) Classify(row model.TrialBalanceRow) model.ClassifiedEntry {
	label := Normalize(row.Label)
	code := strings.TrimSpace(row.AccountCode)
	if label == "" && code == "" {
		return model.NewUnmapped(row)
	}
	for _, r := range c.ordered {
		if r.Matches(label, code) {
			return model.NewMatched(row, r.Code, r.Describe())
		}
	}
	return model.NewUnmapped(row)
}

// ClassifyAll maps a batch of rows, preserving input order.
func (c *Classifier) ClassifyAll(rows []model.TrialBalanceRow) []model.ClassifiedEntry {
	entries := make([]model.ClassifiedEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, c.Classify(row))
	}
	return entries
}

// Lookup returns the winning rule for a label without building an
// entry. Used by the rules check command.
func (c *Classifier) Lookup(label string) (rules.Rule, bool) {
	norm := Normalize(label)
	if norm == "" {
		return rules.Rule{}, false
	}
	for _, r := range c.ordered {
		if r.Matches(norm, "") {
			return r, true
		}
	}
	return rules.Rule{}, false
}
