// Package ratio derives headline financial ratios from a built
// statement result.
package ratio

import (
	"github.com/shopspring/decimal"

	"github.com/grapmap-dev/grapmap/internal/model"
)

// places is the presentation precision for ratios.
const places = 2

// hundred scales margin and return ratios to percentages.
var hundred = decimal.NewFromInt(100)

// Compute derives the ratio set from statement totals. Any ratio
// whose denominator is zero comes back as the explicit undefined
// marker, never as infinity, NaN or zero.
func Compute(result model.StatementResult) model.RatioSet {
	pos := result.Position
	perf := result.Performance

	quickAssets := pos.TotalCurrentAssets.Sub(amountOf(pos.CurrentAssets, model.CodeInventories))

	return model.RatioSet{
		CurrentRatio:    divide(pos.TotalCurrentAssets, pos.TotalCurrentLiabilities),
		QuickRatio:      divide(quickAssets, pos.TotalCurrentLiabilities),
		DebtToEquity:    divide(pos.TotalLiabilities, pos.NetAssets),
		DebtToAssets:    divide(pos.TotalLiabilities, pos.TotalAssets),
		OperatingMargin: divide(perf.SurplusDeficit.Mul(hundred), perf.TotalRevenue),
		ReturnOnAssets:  divide(perf.SurplusDeficit.Mul(hundred), pos.TotalAssets),
		ReturnOnEquity:  divide(perf.SurplusDeficit.Mul(hundred), pos.NetAssets),
		AssetTurnover:   divide(perf.TotalRevenue, pos.TotalAssets),
	}
}

func divide(numerator, denominator decimal.Decimal) model.Ratio {
	if denominator.IsZero() {
		return model.UndefinedRatio()
	}
	return model.DefinedRatio(numerator.DivRound(denominator, places))
}

func amountOf(lines []model.StatementLine, code model.LineItemCode) decimal.Decimal {
	for _, l := range lines {
		if l.Code == code {
			return l.Amount
		}
	}
	return decimal.Zero
}
