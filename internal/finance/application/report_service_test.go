package application

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/infrastructure"
)

func newTestReportService(repo *infrastructure.MockReportRepository) *ReportService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewReportService(repo, logger)
}

func TestGetSummary_BalanceIsIncomeMinusExpense(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	repo := &infrastructure.MockReportRepository{}

	var income, expense float64
	for i := 0; i < 50; i++ {
		amount := float64(rng.Intn(10000)) / 100
		kind := domain.TypeIncome
		if rng.Intn(2) == 0 {
			kind = domain.TypeExpense
			expense += amount
		} else {
			income += amount
		}
		repo.Transactions = append(repo.Transactions, domain.Transaction{
			UserID: "user-1",
			Amount: amount,
			Type:   kind,
			Date:   domain.NewDate(2024, time.Month(1+rng.Intn(12)), 1),
		})
	}
	service := newTestReportService(repo)

	summary, err := service.GetSummary("user-1")

	assert.NoError(t, err)
	assert.InDelta(t, income, summary.TotalIncome, 0.001)
	assert.InDelta(t, expense, summary.TotalExpense, 0.001)
	assert.InDelta(t, income-expense, summary.Balance, 0.001)
}

func TestGetSummary_ScopedToUser(t *testing.T) {
	repo := &infrastructure.MockReportRepository{Transactions: []domain.Transaction{
		{UserID: "user-1", Amount: 100, Type: domain.TypeIncome, Date: domain.NewDate(2024, 3, 1)},
		{UserID: "user-2", Amount: 500, Type: domain.TypeIncome, Date: domain.NewDate(2024, 3, 1)},
	}}
	service := newTestReportService(repo)

	summary, err := service.GetSummary("user-1")

	assert.NoError(t, err)
	assert.Equal(t, 100.0, summary.TotalIncome)
	assert.Equal(t, 100.0, summary.Balance)
}

func TestGetMonthlyReport_FillsMonthNames(t *testing.T) {
	repo := &infrastructure.MockReportRepository{Transactions: []domain.Transaction{
		{UserID: "user-1", Amount: 100, Type: domain.TypeIncome, Date: domain.NewDate(2024, 3, 5)},
		{UserID: "user-1", Amount: 40, Type: domain.TypeExpense, Date: domain.NewDate(2024, 3, 20)},
		{UserID: "user-1", Amount: 10, Type: domain.TypeExpense, Date: domain.NewDate(2024, 1, 2)},
		{UserID: "user-1", Amount: 10, Type: domain.TypeExpense, Date: domain.NewDate(2023, 3, 2)},
	}}
	service := newTestReportService(repo)

	report, err := service.GetMonthlyReport("user-1", 2024)

	assert.NoError(t, err)
	assert.Len(t, report, 2)
	assert.Equal(t, 1, report[0].MonthNumber)
	assert.Equal(t, "January", report[0].MonthName)
	assert.Equal(t, 3, report[1].MonthNumber)
	assert.Equal(t, "March", report[1].MonthName)
	assert.Equal(t, 100.0, report[1].TotalIncome)
	assert.Equal(t, 40.0, report[1].TotalExpense)
	assert.Equal(t, 60.0, report[1].Balance)
}

func TestGetMonthlyReport_EmptyYearIsNotNil(t *testing.T) {
	service := newTestReportService(&infrastructure.MockReportRepository{})

	report, err := service.GetMonthlyReport("user-1", 2019)

	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.Empty(t, report)
}

func TestGetCategoryReport_GroupsByCategoryAndType(t *testing.T) {
	repo := &infrastructure.MockReportRepository{Transactions: []domain.Transaction{
		{UserID: "user-1", Amount: 20, Type: domain.TypeExpense, Category: "food", Date: domain.NewDate(2024, 3, 1)},
		{UserID: "user-1", Amount: 15, Type: domain.TypeExpense, Category: "food", Date: domain.NewDate(2024, 3, 9)},
		{UserID: "user-1", Amount: 5, Type: domain.TypeIncome, Category: "food", Date: domain.NewDate(2024, 3, 9)},
		{UserID: "user-1", Amount: 80, Type: domain.TypeExpense, Category: "travel", Date: domain.NewDate(2024, 3, 15)},
		{UserID: "user-1", Amount: 99, Type: domain.TypeExpense, Category: "food", Date: domain.NewDate(2024, 4, 1)},
	}}
	service := newTestReportService(repo)

	report, err := service.GetCategoryReport("user-1", 3, 2024)

	assert.NoError(t, err)
	assert.Equal(t, []domain.CategoryTotal{
		{Category: "food", Type: domain.TypeExpense, TotalAmount: 35},
		{Category: "food", Type: domain.TypeIncome, TotalAmount: 5},
		{Category: "travel", Type: domain.TypeExpense, TotalAmount: 80},
	}, report)
}

func TestGetYearlyReport_OrderedByYear(t *testing.T) {
	repo := &infrastructure.MockReportRepository{Transactions: []domain.Transaction{
		{UserID: "user-1", Amount: 10, Type: domain.TypeExpense, Date: domain.NewDate(2024, 1, 1)},
		{UserID: "user-1", Amount: 200, Type: domain.TypeIncome, Date: domain.NewDate(2022, 6, 1)},
		{UserID: "user-1", Amount: 50, Type: domain.TypeExpense, Date: domain.NewDate(2022, 7, 1)},
	}}
	service := newTestReportService(repo)

	report, err := service.GetYearlyReport("user-1")

	assert.NoError(t, err)
	assert.Len(t, report, 2)
	assert.Equal(t, 2022, report[0].Year)
	assert.Equal(t, 150.0, report[0].Balance)
	assert.Equal(t, 2024, report[1].Year)
	assert.Equal(t, -10.0, report[1].Balance)
}
