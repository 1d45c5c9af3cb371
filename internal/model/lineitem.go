package model

// Category classifies line items for sign normalisation.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryNetAsset  Category = "net-asset"
	CategoryRevenue   Category = "revenue"
	CategoryExpense   Category = "expense"
)

// Section is a named group of line items on a statement.
type Section string

const (
	SectionCurrentAssets         Section = "current-assets"
	SectionNonCurrentAssets      Section = "non-current-assets"
	SectionCurrentLiabilities    Section = "current-liabilities"
	SectionNonCurrentLiabilities Section = "non-current-liabilities"
	SectionNetAssets             Section = "net-assets"
	SectionRevenue               Section = "revenue"
	SectionExpenses              Section = "expenses"
)

// LineItemCode identifies one standardized GRAP statement line item.
// The set is closed; adding a code is a taxonomy change and must be
// registered in the taxonomy package.
type LineItemCode string

const (
	// Current assets.
	CodeCashAndEquivalents     LineItemCode = "CASH_AND_EQUIVALENTS"
	CodeReceivablesExchange    LineItemCode = "RECEIVABLES_EXCHANGE"
	CodeReceivablesNonExchange LineItemCode = "RECEIVABLES_NON_EXCHANGE"
	CodeInventories            LineItemCode = "INVENTORIES"
	CodePrepayments            LineItemCode = "PREPAYMENTS"

	// Non-current assets.
	CodePropertyPlantEquipment LineItemCode = "PROPERTY_PLANT_EQUIPMENT"
	CodeIntangibleAssets       LineItemCode = "INTANGIBLE_ASSETS"
	CodeInvestments            LineItemCode = "INVESTMENTS"

	// Current liabilities.
	CodePayablesExchange        LineItemCode = "PAYABLES_EXCHANGE"
	CodeEmployeeBenefitsCurrent LineItemCode = "EMPLOYEE_BENEFITS_CURRENT"
	CodeProvisionsCurrent       LineItemCode = "PROVISIONS_CURRENT"

	// Non-current liabilities.
	CodeEmployeeBenefitsNonCurrent LineItemCode = "EMPLOYEE_BENEFITS_NON_CURRENT"
	CodeProvisionsNonCurrent       LineItemCode = "PROVISIONS_NON_CURRENT"
	CodeBorrowingsNonCurrent       LineItemCode = "BORROWINGS_NON_CURRENT"

	// Net assets.
	CodeAccumulatedSurplus LineItemCode = "ACCUMULATED_SURPLUS"

	// Revenue.
	CodeRevenueExchange    LineItemCode = "REVENUE_EXCHANGE"
	CodeRevenueNonExchange LineItemCode = "REVENUE_NON_EXCHANGE"

	// Expenses.
	CodeEmployeeCosts            LineItemCode = "EMPLOYEE_COSTS"
	CodeDepreciationAmortisation LineItemCode = "DEPRECIATION_AMORTISATION"
	CodeGeneralExpenses          LineItemCode = "GENERAL_EXPENSES"
	CodeFinanceCosts             LineItemCode = "FINANCE_COSTS"
)
