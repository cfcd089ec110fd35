package infrastructure

import (
	"sort"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
)

// MockReportRepository aggregates an in-memory transaction list the way the
// SQL report queries do.
type MockReportRepository struct {
	Transactions []domain.Transaction
}

func (m *MockReportRepository) Summary(userID string) (domain.Summary, error) {
	var summary domain.Summary
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		switch transaction.Type {
		case domain.TypeIncome:
			summary.TotalIncome += transaction.Amount
		case domain.TypeExpense:
			summary.TotalExpense += transaction.Amount
		}
	}
	return summary, nil
}

func (m *MockReportRepository) MonthlyTotals(userID string, year int) ([]domain.MonthlyTotal, error) {
	byMonth := make(map[int]*domain.MonthlyTotal)
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID || transaction.Date.Year() != year {
			continue
		}
		month := int(transaction.Date.Month())
		total, ok := byMonth[month]
		if !ok {
			total = &domain.MonthlyTotal{MonthNumber: month}
			byMonth[month] = total
		}
		if transaction.Type == domain.TypeIncome {
			total.TotalIncome += transaction.Amount
			total.Balance += transaction.Amount
		} else {
			total.TotalExpense += transaction.Amount
			total.Balance -= transaction.Amount
		}
	}

	var totals []domain.MonthlyTotal
	for _, total := range byMonth {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].MonthNumber < totals[j].MonthNumber })
	return totals, nil
}

func (m *MockReportRepository) CategoryTotals(userID string, month, year int) ([]domain.CategoryTotal, error) {
	type key struct {
		category string
		kind     string
	}
	byCategory := make(map[key]float64)
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if int(transaction.Date.Month()) != month || transaction.Date.Year() != year {
			continue
		}
		byCategory[key{transaction.Category, transaction.Type}] += transaction.Amount
	}

	var totals []domain.CategoryTotal
	for k, amount := range byCategory {
		totals = append(totals, domain.CategoryTotal{Category: k.category, Type: k.kind, TotalAmount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Category != totals[j].Category {
			return totals[i].Category < totals[j].Category
		}
		return totals[i].Type < totals[j].Type
	})
	return totals, nil
}

func (m *MockReportRepository) YearlyTotals(userID string) ([]domain.YearlyTotal, error) {
	byYear := make(map[int]*domain.YearlyTotal)
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		year := transaction.Date.Year()
		total, ok := byYear[year]
		if !ok {
			total = &domain.YearlyTotal{Year: year}
			byYear[year] = total
		}
		if transaction.Type == domain.TypeIncome {
			total.TotalIncome += transaction.Amount
			total.Balance += transaction.Amount
		} else {
			total.TotalExpense += transaction.Amount
			total.Balance -= transaction.Amount
		}
	}

	var totals []domain.YearlyTotal
	for _, total := range byYear {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Year < totals[j].Year })
	return totals, nil
}
