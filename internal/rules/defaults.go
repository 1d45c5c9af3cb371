package rules

import "github.com/grapmap-dev/grapmap/internal/model"

// DefaultTable returns the built-in rule table. Priorities are
// banded: 10 for account-code matches, 20 for specific label
// patterns, 30+ for progressively broader ones. The bands keep
// specific terms ahead of the generic terms that contain them.
func DefaultTable() *Table {
	return &Table{
		Version: "2.0",
		Rules:   append(accountCodeRules(), labelRules()...),
	}
}

// accountCodeRules carries the legacy numeric chart mapping. Exact
// rules also match the raw account code column, so a trial balance
// with bare codes and unhelpful descriptions still classifies.
func accountCodeRules() []Rule {
	codes := []struct {
		pattern string
		code    model.LineItemCode
	}{
		{"1000", model.CodeCashAndEquivalents},
		{"1100", model.CodeCashAndEquivalents},
		{"1200", model.CodeReceivablesExchange},
		{"1210", model.CodeReceivablesExchange},
		{"1250", model.CodeReceivablesExchange},
		{"1300", model.CodeInventories},
		{"1400", model.CodeReceivablesNonExchange},
		{"1500", model.CodePrepayments},
		{"1600", model.CodePropertyPlantEquipment},
		{"1700", model.CodeIntangibleAssets},
		{"1800", model.CodeInvestments},
		{"2000", model.CodePayablesExchange},
		{"2100", model.CodeEmployeeBenefitsCurrent},
		{"2200", model.CodeProvisionsCurrent},
		{"2300", model.CodeEmployeeBenefitsNonCurrent},
		{"2400", model.CodeProvisionsNonCurrent},
		{"2500", model.CodeBorrowingsNonCurrent},
		{"3000", model.CodeAccumulatedSurplus},
		{"4000", model.CodeRevenueNonExchange},
		{"4100", model.CodeRevenueExchange},
		{"4200", model.CodeRevenueExchange},
		{"5000", model.CodeEmployeeCosts},
		{"5100", model.CodeEmployeeCosts},
		{"5200", model.CodeEmployeeCosts},
		{"6000", model.CodeGeneralExpenses},
		{"6100", model.CodeDepreciationAmortisation},
		{"6200", model.CodeFinanceCosts},
		{"6300", model.CodeGeneralExpenses},
	}
	out := make([]Rule, 0, len(codes))
	for _, c := range codes {
		out = append(out, Rule{Kind: KindExact, Pattern: c.pattern, Code: c.code, Priority: 10})
	}
	return out
}

func labelRules() []Rule {
	return []Rule{
		// Specific terms that broader rules below would swallow.
		{Kind: KindSubstring, Pattern: "petty cash", Code: model.CodeCashAndEquivalents, Priority: 20},
		{Kind: KindSubstring, Pattern: "cash float", Code: model.CodeCashAndEquivalents, Priority: 20},
		{Kind: KindSubstring, Pattern: "interest received", Code: model.CodeRevenueExchange, Priority: 20},
		{Kind: KindSubstring, Pattern: "interest earned", Code: model.CodeRevenueExchange, Priority: 20},
		{Kind: KindSubstring, Pattern: "rental income", Code: model.CodeRevenueExchange, Priority: 20},
		{Kind: KindSubstring, Pattern: "interest paid", Code: model.CodeFinanceCosts, Priority: 20},
		{Kind: KindSubstring, Pattern: "bank charges", Code: model.CodeGeneralExpenses, Priority: 20},
		{Kind: KindSubstring, Pattern: "grants receivable", Code: model.CodeReceivablesNonExchange, Priority: 20},
		{Kind: KindSubstring, Pattern: "long term loan", Code: model.CodeBorrowingsNonCurrent, Priority: 20},
		{Kind: KindSubstring, Pattern: "long term provision", Code: model.CodeProvisionsNonCurrent, Priority: 20},
		{Kind: KindKeywords, Keywords: []string{"employee", "non current"}, Code: model.CodeEmployeeBenefitsNonCurrent, Priority: 20},
		{Kind: KindKeywords, Keywords: []string{"provision", "non current"}, Code: model.CodeProvisionsNonCurrent, Priority: 20},

		// Current assets.
		{Kind: KindSubstring, Pattern: "bank", Code: model.CodeCashAndEquivalents, Priority: 30},
		{Kind: KindSubstring, Pattern: "call account", Code: model.CodeCashAndEquivalents, Priority: 30},
		{Kind: KindSubstring, Pattern: "cash", Code: model.CodeCashAndEquivalents, Priority: 40},
		{Kind: KindSubstring, Pattern: "trade debtors", Code: model.CodeReceivablesExchange, Priority: 30},
		{Kind: KindSubstring, Pattern: "accounts receivable", Code: model.CodeReceivablesExchange, Priority: 30},
		{Kind: KindSubstring, Pattern: "debtors", Code: model.CodeReceivablesExchange, Priority: 40},
		{Kind: KindSubstring, Pattern: "receivable", Code: model.CodeReceivablesExchange, Priority: 45},
		{Kind: KindSubstring, Pattern: "inventor", Code: model.CodeInventories, Priority: 30},
		{Kind: KindSubstring, Pattern: "stock on hand", Code: model.CodeInventories, Priority: 30},
		{Kind: KindSubstring, Pattern: "consumables", Code: model.CodeInventories, Priority: 30},
		{Kind: KindSubstring, Pattern: "prepaid", Code: model.CodePrepayments, Priority: 30},
		{Kind: KindSubstring, Pattern: "prepayment", Code: model.CodePrepayments, Priority: 30},

		// Non-current assets.
		{Kind: KindKeywords, Keywords: []string{"property", "plant"}, Code: model.CodePropertyPlantEquipment, Priority: 30},
		{Kind: KindSubstring, Pattern: "equipment", Code: model.CodePropertyPlantEquipment, Priority: 35},
		{Kind: KindSubstring, Pattern: "vehicles", Code: model.CodePropertyPlantEquipment, Priority: 35},
		{Kind: KindSubstring, Pattern: "furniture", Code: model.CodePropertyPlantEquipment, Priority: 35},
		{Kind: KindSubstring, Pattern: "buildings", Code: model.CodePropertyPlantEquipment, Priority: 35},
		{Kind: KindSubstring, Pattern: "intangible", Code: model.CodeIntangibleAssets, Priority: 30},
		{Kind: KindSubstring, Pattern: "goodwill", Code: model.CodeIntangibleAssets, Priority: 30},
		{Kind: KindKeywords, Keywords: []string{"computer", "software"}, Code: model.CodeIntangibleAssets, Priority: 30},
		{Kind: KindSubstring, Pattern: "investment", Code: model.CodeInvestments, Priority: 35},

		// Liabilities.
		{Kind: KindSubstring, Pattern: "trade creditors", Code: model.CodePayablesExchange, Priority: 30},
		{Kind: KindSubstring, Pattern: "accounts payable", Code: model.CodePayablesExchange, Priority: 30},
		{Kind: KindSubstring, Pattern: "creditors", Code: model.CodePayablesExchange, Priority: 40},
		{Kind: KindSubstring, Pattern: "accrual", Code: model.CodePayablesExchange, Priority: 40},
		{Kind: KindSubstring, Pattern: "payable", Code: model.CodePayablesExchange, Priority: 45},
		{Kind: KindSubstring, Pattern: "leave pay", Code: model.CodeEmployeeBenefitsCurrent, Priority: 30},
		{Kind: KindSubstring, Pattern: "bonus provision", Code: model.CodeEmployeeBenefitsCurrent, Priority: 30},
		{Kind: KindKeywords, Keywords: []string{"employee", "benefit"}, Code: model.CodeEmployeeBenefitsCurrent, Priority: 35},
		{Kind: KindSubstring, Pattern: "pension", Code: model.CodeEmployeeBenefitsNonCurrent, Priority: 35},
		{Kind: KindSubstring, Pattern: "provision", Code: model.CodeProvisionsCurrent, Priority: 40},
		{Kind: KindSubstring, Pattern: "borrowing", Code: model.CodeBorrowingsNonCurrent, Priority: 35},
		{Kind: KindSubstring, Pattern: "mortgage", Code: model.CodeBorrowingsNonCurrent, Priority: 35},
		{Kind: KindSubstring, Pattern: "loan", Code: model.CodeBorrowingsNonCurrent, Priority: 40},

		// Net assets.
		{Kind: KindSubstring, Pattern: "accumulated surplus", Code: model.CodeAccumulatedSurplus, Priority: 30},
		{Kind: KindSubstring, Pattern: "accumulated funds", Code: model.CodeAccumulatedSurplus, Priority: 30},
		{Kind: KindSubstring, Pattern: "retained earnings", Code: model.CodeAccumulatedSurplus, Priority: 30},
		{Kind: KindSubstring, Pattern: "retained income", Code: model.CodeAccumulatedSurplus, Priority: 30},

		// Revenue.
		{Kind: KindSubstring, Pattern: "member contributions", Code: model.CodeRevenueNonExchange, Priority: 30},
		{Kind: KindSubstring, Pattern: "grant", Code: model.CodeRevenueNonExchange, Priority: 35},
		{Kind: KindSubstring, Pattern: "levies", Code: model.CodeRevenueNonExchange, Priority: 35},
		{Kind: KindSubstring, Pattern: "levy", Code: model.CodeRevenueNonExchange, Priority: 35},
		{Kind: KindSubstring, Pattern: "donation", Code: model.CodeRevenueNonExchange, Priority: 35},
		{Kind: KindSubstring, Pattern: "transfer received", Code: model.CodeRevenueNonExchange, Priority: 35},
		{Kind: KindSubstring, Pattern: "service fees", Code: model.CodeRevenueExchange, Priority: 30},
		{Kind: KindSubstring, Pattern: "fees earned", Code: model.CodeRevenueExchange, Priority: 30},
		{Kind: KindSubstring, Pattern: "sales", Code: model.CodeRevenueExchange, Priority: 35},
		{Kind: KindSubstring, Pattern: "revenue", Code: model.CodeRevenueExchange, Priority: 45},
		{Kind: KindSubstring, Pattern: "income", Code: model.CodeRevenueExchange, Priority: 50},

		// Expenses.
		{Kind: KindSubstring, Pattern: "salar", Code: model.CodeEmployeeCosts, Priority: 30},
		{Kind: KindSubstring, Pattern: "wages", Code: model.CodeEmployeeCosts, Priority: 30},
		{Kind: KindSubstring, Pattern: "staff", Code: model.CodeEmployeeCosts, Priority: 35},
		{Kind: KindKeywords, Keywords: []string{"employee", "cost"}, Code: model.CodeEmployeeCosts, Priority: 35},
		{Kind: KindSubstring, Pattern: "depreciation", Code: model.CodeDepreciationAmortisation, Priority: 30},
		{Kind: KindSubstring, Pattern: "amortisation", Code: model.CodeDepreciationAmortisation, Priority: 30},
		{Kind: KindSubstring, Pattern: "amortization", Code: model.CodeDepreciationAmortisation, Priority: 30},
		{Kind: KindSubstring, Pattern: "finance cost", Code: model.CodeFinanceCosts, Priority: 30},
		{Kind: KindSubstring, Pattern: "finance charges", Code: model.CodeFinanceCosts, Priority: 30},
		{Kind: KindSubstring, Pattern: "interest expense", Code: model.CodeFinanceCosts, Priority: 30},
		{Kind: KindSubstring, Pattern: "telephone", Code: model.CodeGeneralExpenses, Priority: 35},
		{Kind: KindSubstring, Pattern: "electricity", Code: model.CodeGeneralExpenses, Priority: 35},
		{Kind: KindSubstring, Pattern: "stationery", Code: model.CodeGeneralExpenses, Priority: 35},
		{Kind: KindSubstring, Pattern: "travel", Code: model.CodeGeneralExpenses, Priority: 35},
		{Kind: KindSubstring, Pattern: "repairs", Code: model.CodeGeneralExpenses, Priority: 35},
		{Kind: KindSubstring, Pattern: "insurance", Code: model.CodeGeneralExpenses, Priority: 35},
		{Kind: KindSubstring, Pattern: "audit fees", Code: model.CodeGeneralExpenses, Priority: 35},
		{Kind: KindSubstring, Pattern: "expense", Code: model.CodeGeneralExpenses, Priority: 50},
	}
}
