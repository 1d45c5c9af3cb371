// Package taxonomy holds the fixed GRAP line-item structure: the
// closed set of codes, their statement sections, and the sign
// conventions per category. It is process-wide, read-only data.
package taxonomy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/grapmap-dev/grapmap/internal/model"
)

// LineItem describes one code in the GRAP taxonomy.
type LineItem struct {
	Code     model.LineItemCode
	GRAPRef  string
	Name     string
	Category model.Category
	Section  model.Section
}

// Version identifies the taxonomy revision in reports and rule files.
const Version = "2.0"

// items is ordered for presentation: position statement sections
// first, then performance. Order within a section is report order.
var items = []LineItem{
	{model.CodeCashAndEquivalents, "CA-001", "Cash and Cash Equivalents", model.CategoryAsset, model.SectionCurrentAssets},
	{model.CodeReceivablesExchange, "CA-002", "Receivables from Exchange Transactions", model.CategoryAsset, model.SectionCurrentAssets},
	{model.CodeReceivablesNonExchange, "CA-003", "Receivables from Non-Exchange Transactions", model.CategoryAsset, model.SectionCurrentAssets},
	{model.CodeInventories, "CA-004", "Inventories", model.CategoryAsset, model.SectionCurrentAssets},
	{model.CodePrepayments, "CA-005", "Prepayments", model.CategoryAsset, model.SectionCurrentAssets},

	{model.CodePropertyPlantEquipment, "NCA-001", "Property, Plant and Equipment", model.CategoryAsset, model.SectionNonCurrentAssets},
	{model.CodeIntangibleAssets, "NCA-002", "Intangible Assets", model.CategoryAsset, model.SectionNonCurrentAssets},
	{model.CodeInvestments, "NCA-003", "Investments", model.CategoryAsset, model.SectionNonCurrentAssets},

	{model.CodePayablesExchange, "CL-001", "Payables from Exchange Transactions", model.CategoryLiability, model.SectionCurrentLiabilities},
	{model.CodeEmployeeBenefitsCurrent, "CL-002", "Employee Benefit Obligations (Current)", model.CategoryLiability, model.SectionCurrentLiabilities},
	{model.CodeProvisionsCurrent, "CL-003", "Provisions (Current)", model.CategoryLiability, model.SectionCurrentLiabilities},

	{model.CodeEmployeeBenefitsNonCurrent, "NCL-001", "Employee Benefit Obligations (Non-Current)", model.CategoryLiability, model.SectionNonCurrentLiabilities},
	{model.CodeProvisionsNonCurrent, "NCL-002", "Provisions (Non-Current)", model.CategoryLiability, model.SectionNonCurrentLiabilities},
	{model.CodeBorrowingsNonCurrent, "NCL-003", "Borrowings (Non-Current)", model.CategoryLiability, model.SectionNonCurrentLiabilities},

	{model.CodeAccumulatedSurplus, "NA-001", "Accumulated Surplus/(Deficit)", model.CategoryNetAsset, model.SectionNetAssets},

	{model.CodeRevenueExchange, "REV-001", "Revenue from Exchange Transactions", model.CategoryRevenue, model.SectionRevenue},
	{model.CodeRevenueNonExchange, "REV-002", "Revenue from Non-Exchange Transactions", model.CategoryRevenue, model.SectionRevenue},

	{model.CodeEmployeeCosts, "EXP-001", "Employee Costs", model.CategoryExpense, model.SectionExpenses},
	{model.CodeDepreciationAmortisation, "EXP-002", "Depreciation and Amortisation", model.CategoryExpense, model.SectionExpenses},
	{model.CodeGeneralExpenses, "EXP-003", "General Expenses", model.CategoryExpense, model.SectionExpenses},
	{model.CodeFinanceCosts, "EXP-004", "Finance Costs", model.CategoryExpense, model.SectionExpenses},
}

var byCode = func() map[model.LineItemCode]LineItem {
	m := make(map[model.LineItemCode]LineItem, len(items))
	for _, it := range items {
		m[it.Code] = it
	}
	return m
}()

// All returns every line item in presentation order.
func All() []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// Get returns the line item for a code.
func Get(code model.LineItemCode) (LineItem, bool) {
	it, ok := byCode[code]
	return it, ok
}

// Exists reports whether a code is part of the taxonomy.
func Exists(code model.LineItemCode) bool {
	_, ok := byCode[code]
	return ok
}

// BySection returns the line items of one section, in order.
func BySection(section model.Section) []LineItem {
	var out []LineItem
	for _, it := range items {
		if it.Section == section {
			out = append(out, it)
		}
	}
	return out
}

// debitSign maps each category to the effect of a debit on its
// reported balance. Credits apply the opposite sign. New codes
// inherit the behavior of their category automatically.
var debitSign = map[model.Category]decimal.Decimal{
	model.CategoryAsset:     decimal.NewFromInt(1),
	model.CategoryExpense:   decimal.NewFromInt(1),
	model.CategoryLiability: decimal.NewFromInt(-1),
	model.CategoryNetAsset:  decimal.NewFromInt(-1),
	model.CategoryRevenue:   decimal.NewFromInt(-1),
}

// Normalize converts a debit- or credit-tagged amount into the
// category's reporting convention: debit-normal categories (assets,
// expenses) report debits positive, credit-normal categories
// (liabilities, net assets, revenue) report credits positive.
func Normalize(category model.Category, amount decimal.Decimal, side model.Side) decimal.Decimal {
	sign := debitSign[category]
	if side == model.SideCredit {
		sign = sign.Neg()
	}
	return amount.Mul(sign)
}

// Validate checks the taxonomy for internal consistency. Called at
// startup; a failure is a deployment error, not a runtime condition.
func Validate() error {
	seenCode := make(map[model.LineItemCode]bool, len(items))
	seenRef := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Code == "" || it.GRAPRef == "" || it.Name == "" {
			return fmt.Errorf("incomplete line item %q", it.Code)
		}
		if seenCode[it.Code] {
			return fmt.Errorf("duplicate line item code %q", it.Code)
		}
		if seenRef[it.GRAPRef] {
			return fmt.Errorf("duplicate GRAP reference %q", it.GRAPRef)
		}
		seenCode[it.Code] = true
		seenRef[it.GRAPRef] = true
		if _, ok := debitSign[it.Category]; !ok {
			return fmt.Errorf("line item %q has unknown category %q", it.Code, it.Category)
		}
		if !sectionMatchesCategory(it.Section, it.Category) {
			return fmt.Errorf("line item %q: section %q does not belong to category %q", it.Code, it.Section, it.Category)
		}
	}
	return nil
}

func sectionMatchesCategory(section model.Section, category model.Category) bool {
	switch section {
	case model.SectionCurrentAssets, model.SectionNonCurrentAssets:
		return category == model.CategoryAsset
	case model.SectionCurrentLiabilities, model.SectionNonCurrentLiabilities:
		return category == model.CategoryLiability
	case model.SectionNetAssets:
		return category == model.CategoryNetAsset
	case model.SectionRevenue:
		return category == model.CategoryRevenue
	case model.SectionExpenses:
		return category == model.CategoryExpense
	}
	return false
}
