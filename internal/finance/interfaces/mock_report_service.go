package interfaces

import (
	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
)

type MockReportService struct {
	SummaryResult  domain.Summary
	SummaryErr     error
	MonthlyResult  []domain.MonthlyTotal
	MonthlyErr     error
	CategoryResult []domain.CategoryTotal
	CategoryErr    error
	YearlyResult   []domain.YearlyTotal
	YearlyErr      error

	LastUserID string
	LastMonth  int
	LastYear   int
}

func (m *MockReportService) GetSummary(userID string) (domain.Summary, error) {
	m.LastUserID = userID
	return m.SummaryResult, m.SummaryErr
}

func (m *MockReportService) GetMonthlyReport(userID string, year int) ([]domain.MonthlyTotal, error) {
	m.LastUserID = userID
	m.LastYear = year
	return m.MonthlyResult, m.MonthlyErr
}

func (m *MockReportService) GetCategoryReport(userID string, month, year int) ([]domain.CategoryTotal, error) {
	m.LastUserID = userID
	m.LastMonth = month
	m.LastYear = year
	return m.CategoryResult, m.CategoryErr
}

func (m *MockReportService) GetYearlyReport(userID string) ([]domain.YearlyTotal, error) {
	m.LastUserID = userID
	return m.YearlyResult, m.YearlyErr
}
