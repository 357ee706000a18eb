package models

// Category is one of the six fixed spend classifications assigned to each
// transaction by keyword heuristic.
type Category string

const (
	CategoryShopping Category = "Shopping"
	CategoryFood     Category = "Food & Dining"
	CategoryTravel   Category = "Travel"
	CategoryBills    Category = "Bills & Utilities"
	CategoryRewards  Category = "Rewards"
	CategoryOther    Category = "Other"
)

type TransactionType string

const (
	TypeDebit  TransactionType = "Debit"
	TypeCredit TransactionType = "Credit"
)

// TableRow is one recovered table row: an ordered sequence of cell strings.
// Empty cells are empty strings, never missing.
type TableRow []string

// Transaction is a single parsed statement entry. Amount is the formatted
// absolute value with the currency symbol; the sign of the raw amount is
// carried by Type instead.
type Transaction struct {
	Date     string
	Merchant string
	Amount   string
	Type     TransactionType
	Category Category
}

// MonthlySpend is one entry of the synthetic spend trend. Figures are
// estimated placeholders, not derived from the statement.
type MonthlySpend struct {
	Month string
	Spend int
}

// CategoryTotal is a per-category debit total, in first-seen order.
type CategoryTotal struct {
	Category Category
	Total    float64
}

// MerchantSpend is a per-merchant debit total used for the top ranking.
type MerchantSpend struct {
	Merchant string
	Spent    float64
}

// Statement is the full record recovered from one document.
type Statement struct {
	Bank            string
	CardHolder      string
	CardNumber      string
	CardVariant     string
	StatementPeriod string
	PaymentDueDate  string
	TotalDue        string
	MinimumDue      string
	CreditLimit     string
	AvailableCredit string
	Transactions    []Transaction
	MonthlyHistory  []MonthlySpend
	CategorySummary []CategoryTotal
	TopMerchants    []MerchantSpend
}
