package application

import (
	"github.com/google/uuid"
	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
	financeErrors "github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/errors"
	"github.com/sirupsen/logrus"
)

type TransactionService struct {
	repo   domain.TransactionRepository
	logger *logrus.Logger
}

func NewTransactionService(repo domain.TransactionRepository, logger *logrus.Logger) *TransactionService {
	return &TransactionService{repo: repo, logger: logger}
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	transaction.ID = uuid.NewString()
	if err := transaction.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(*transaction); err != nil {
		s.logger.WithError(err).Error("could not save transaction")
		return err
	}
	return nil
}

func (s *TransactionService) GetTransaction(transactionID, userID string) (*domain.Transaction, error) {
	return s.repo.FindByID(transactionID, userID)
}

func (s *TransactionService) GetUserTransactions(userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByUser(userID, filter)
	if err != nil {
		s.logger.WithError(err).Error("could not list transactions")
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// UpdateTransaction applies a partial update after an ownership check. The
// check and the UPDATE are separate statements; a concurrent delete between
// them is an accepted window.
func (s *TransactionService) UpdateTransaction(transactionID, userID string, update domain.TransactionUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	owned, err := s.repo.IsOwnedBy(userID, transactionID)
	if err != nil {
		s.logger.WithError(err).Error("could not check transaction ownership")
		return err
	}
	if !owned {
		return financeErrors.ErrTransactionNotFound
	}

	if update.IsEmpty() {
		return nil
	}

	if err := s.repo.Update(transactionID, userID, update); err != nil {
		s.logger.WithError(err).Error("could not update transaction")
		return err
	}
	return nil
}

func (s *TransactionService) DeleteTransaction(transactionID, userID string) error {
	owned, err := s.repo.IsOwnedBy(userID, transactionID)
	if err != nil {
		s.logger.WithError(err).Error("could not check transaction ownership")
		return err
	}
	if !owned {
		return financeErrors.ErrTransactionNotFound
	}

	if err := s.repo.Delete(transactionID, userID); err != nil {
		s.logger.WithError(err).Error("could not delete transaction")
		return err
	}
	return nil
}
