package model

import "github.com/shopspring/decimal"

// Ratio is a computed financial ratio or an explicit undefined
// marker for a zero denominator. The zero value is undefined, so a
// ratio can never silently read as 0.00.
type Ratio struct {
	value   decimal.Decimal
	defined bool
}

// DefinedRatio returns a defined ratio with the given value.
func DefinedRatio(v decimal.Decimal) Ratio {
	return Ratio{value: v, defined: true}
}

// UndefinedRatio returns the undefined marker.
func UndefinedRatio() Ratio {
	return Ratio{}
}

// Defined reports whether the ratio was computable.
func (r Ratio) Defined() bool {
	return r.defined
}

// Value returns the ratio value. Only meaningful when Defined.
func (r Ratio) Value() (decimal.Decimal, bool) {
	return r.value, r.defined
}

// String renders the ratio to two places, or "undefined".
func (r Ratio) String() string {
	if !r.defined {
		return "undefined"
	}
	return r.value.StringFixed(2)
}

// RatioSet holds the ratios derived from a StatementResult.
type RatioSet struct {
	CurrentRatio    Ratio
	QuickRatio      Ratio
	DebtToEquity    Ratio
	DebtToAssets    Ratio
	OperatingMargin Ratio // percent
	ReturnOnAssets  Ratio // percent
	ReturnOnEquity  Ratio // percent
	AssetTurnover   Ratio
}

// Undefined returns the names of all undefined ratios, in
// presentation order.
func (s RatioSet) Undefined() []string {
	var names []string
	for _, r := range []struct {
		name  string
		ratio Ratio
	}{
		{"current_ratio", s.CurrentRatio},
		{"quick_ratio", s.QuickRatio},
		{"debt_to_equity", s.DebtToEquity},
		{"debt_to_assets", s.DebtToAssets},
		{"operating_margin", s.OperatingMargin},
		{"return_on_assets", s.ReturnOnAssets},
		{"return_on_equity", s.ReturnOnEquity},
		{"asset_turnover", s.AssetTurnover},
	} {
		if !r.ratio.Defined() {
			names = append(names, r.name)
		}
	}
	return names
}
