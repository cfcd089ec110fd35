package application

import (
	"time"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
	"github.com/sirupsen/logrus"
)

type ReportService struct {
	repo   domain.ReportRepository
	logger *logrus.Logger
}

func NewReportService(repo domain.ReportRepository, logger *logrus.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) GetSummary(userID string) (domain.Summary, error) {
	summary, err := s.repo.Summary(userID)
	if err != nil {
		s.logger.WithError(err).Error("could not compute summary")
		return domain.Summary{}, err
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return summary, nil
}

func (s *ReportService) GetMonthlyReport(userID string, year int) ([]domain.MonthlyTotal, error) {
	totals, err := s.repo.MonthlyTotals(userID, year)
	if err != nil {
		s.logger.WithError(err).Error("could not compute monthly report")
		return nil, err
	}
	for i := range totals {
		totals[i].MonthName = time.Month(totals[i].MonthNumber).String()
	}
	if totals == nil {
		return []domain.MonthlyTotal{}, nil
	}
	return totals, nil
}

func (s *ReportService) GetCategoryReport(userID string, month, year int) ([]domain.CategoryTotal, error) {
	totals, err := s.repo.CategoryTotals(userID, month, year)
	if err != nil {
		s.logger.WithError(err).Error("could not compute category report")
		return nil, err
	}
	if totals == nil {
		return []domain.CategoryTotal{}, nil
	}
	return totals, nil
}

func (s *ReportService) GetYearlyReport(userID string) ([]domain.YearlyTotal, error) {
	totals, err := s.repo.YearlyTotals(userID)
	if err != nil {
		s.logger.WithError(err).Error("could not compute yearly report")
		return nil, err
	}
	if totals == nil {
		return []domain.YearlyTotal{}, nil
	}
	return totals, nil
}
