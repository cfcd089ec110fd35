package infrastructure

import (
	"database/sql"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Summary(userID string) (domain.Summary, error) {
	var summary domain.Summary
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
            COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense
        FROM transactions
        WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&summary.TotalIncome, &summary.TotalExpense)
	return summary, err
}

func (r *ReportRepository) MonthlyTotals(userID string, year int) ([]domain.MonthlyTotal, error) {
	query := `
        SELECT
            EXTRACT(MONTH FROM date)::int AS month_number,
            SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS total_income,
            SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS total_expense,
            SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END) AS balance
        FROM transactions
        WHERE user_id = $1 AND EXTRACT(YEAR FROM date) = $2
        GROUP BY month_number
        ORDER BY month_number`
	rows, err := r.db.Query(query, userID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.MonthlyTotal
	for rows.Next() {
		var total domain.MonthlyTotal
		if err := rows.Scan(&total.MonthNumber, &total.TotalIncome, &total.TotalExpense, &total.Balance); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func (r *ReportRepository) CategoryTotals(userID string, month, year int) ([]domain.CategoryTotal, error) {
	query := `
        SELECT category, type, SUM(amount) AS total_amount
        FROM transactions
        WHERE user_id = $1 AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3
        GROUP BY category, type
        ORDER BY category, type`
	rows, err := r.db.Query(query, userID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var total domain.CategoryTotal
		if err := rows.Scan(&total.Category, &total.Type, &total.TotalAmount); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func (r *ReportRepository) YearlyTotals(userID string) ([]domain.YearlyTotal, error) {
	query := `
        SELECT
            EXTRACT(YEAR FROM date)::int AS year,
            SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS total_income,
            SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS total_expense,
            SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END) AS balance
        FROM transactions
        WHERE user_id = $1
        GROUP BY year
        ORDER BY year ASC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.YearlyTotal
	for rows.Next() {
		var total domain.YearlyTotal
		if err := rows.Scan(&total.Year, &total.TotalIncome, &total.TotalExpense, &total.Balance); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}
