package domain

// Summary totals one user's transactions by type.
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

// MonthlyTotal is one month with activity within a requested year.
type MonthlyTotal struct {
	MonthNumber  int     `json:"month_number"`
	MonthName    string  `json:"month_name"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

// CategoryTotal is one category/type pair within a requested month.
type CategoryTotal struct {
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	TotalAmount float64 `json:"total_amount"`
}

// YearlyTotal is one year with activity.
type YearlyTotal struct {
	Year         int     `json:"year"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

type ReportRepository interface {
	Summary(userID string) (Summary, error)
	MonthlyTotals(userID string, year int) ([]MonthlyTotal, error)
	CategoryTotals(userID string, month, year int) ([]CategoryTotal, error)
	YearlyTotals(userID string) ([]YearlyTotal, error)
}
