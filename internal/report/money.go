package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatMoney renders an amount in rand with thousands separators,
// negatives in accountant parentheses: -1234.5 -> "(1 234.50)".
// Statutory reports here use the SA convention of spaces as group
// separators.
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)

	if d.IsNegative() {
		return "(" + b.String() + ")"
	}
	return b.String()
}
