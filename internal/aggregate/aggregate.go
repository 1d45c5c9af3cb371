// Package aggregate sums classified entries into per-line-item
// totals with table-driven sign normalisation.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/grapmap-dev/grapmap/internal/model"
	"github.com/grapmap-dev/grapmap/internal/taxonomy"
)

// Totals maps line item codes to their aggregated amounts. Keys are
// unique; codes with no activity are absent. A fresh Totals is built
// per request and never shared.
type Totals struct {
	amounts map[model.LineItemCode]decimal.Decimal
}

// NewTotals returns an empty Totals.
func NewTotals() *Totals {
	return &Totals{amounts: make(map[model.LineItemCode]decimal.Decimal)}
}

// Amount returns the total for a code, or zero.
func (t *Totals) Amount(code model.LineItemCode) decimal.Decimal {
	if a, ok := t.amounts[code]; ok {
		return a
	}
	return decimal.Zero
}

// Has reports whether the code saw any mapped activity.
func (t *Totals) Has(code model.LineItemCode) bool {
	_, ok := t.amounts[code]
	return ok
}

// Lines returns non-nil totals as LineItemTotals in taxonomy order.
func (t *Totals) Lines() []model.LineItemTotal {
	var out []model.LineItemTotal
	for _, it := range taxonomy.All() {
		if a, ok := t.amounts[it.Code]; ok {
			out = append(out, model.LineItemTotal{Code: it.Code, Amount: a})
		}
	}
	return out
}

// SectionTotal sums the totals of every code in a section.
func (t *Totals) SectionTotal(section model.Section) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range taxonomy.BySection(section) {
		sum = sum.Add(t.Amount(it.Code))
	}
	return sum
}

// Sum aggregates classified entries. Mapped entries are normalised
// by their category's sign convention and summed per code; unmapped
// entries are excluded from totals and returned separately for the
// validation report. Decimal addition is exact, so input order
// cannot change the result.
func Sum(entries []model.ClassifiedEntry) (*Totals, []model.UnmappedAccount) {
	totals := NewTotals()
	var unmapped []model.UnmappedAccount
	for _, e := range entries {
		if e.Unmapped() {
			unmapped = append(unmapped, model.UnmappedAccount{
				AccountCode: e.Row.AccountCode,
				Label:       e.Row.Label,
				Amount:      e.Row.Amount,
				Side:        e.Row.Side,
			})
			continue
		}
		item, ok := taxonomy.Get(e.Code)
		if !ok {
			// A matched entry always carries a taxonomy code; the
			// rule table is validated against it at load.
			continue
		}
		normalised := taxonomy.Normalize(item.Category, e.Row.Amount, e.Row.Side)
		totals.amounts[e.Code] = totals.Amount(e.Code).Add(normalised)
	}
	return totals, unmapped
}
