package interfaces

import (
	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
)

// MockTransactionService records the arguments handlers pass down and returns
// whatever the test configures.
type MockTransactionService struct {
	CreateErr error
	GetResult *domain.Transaction
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error

	LastUserID        string
	LastTransaction   domain.Transaction
	LastTransactionID string
	LastFilter        domain.TransactionFilter
	LastUpdate        domain.TransactionUpdate
	ListResult        []domain.Transaction
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	transaction.ID = "generated-id"
	m.LastUserID = transaction.UserID
	m.LastTransaction = *transaction
	return nil
}

func (m *MockTransactionService) GetTransaction(transactionID, userID string) (*domain.Transaction, error) {
	m.LastTransactionID = transactionID
	m.LastUserID = userID
	return m.GetResult, m.GetErr
}

func (m *MockTransactionService) GetUserTransactions(userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	m.LastUserID = userID
	m.LastFilter = filter
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.ListResult == nil {
		return []domain.Transaction{}, nil
	}
	return m.ListResult, nil
}

func (m *MockTransactionService) UpdateTransaction(transactionID, userID string, update domain.TransactionUpdate) error {
	m.LastTransactionID = transactionID
	m.LastUserID = userID
	m.LastUpdate = update
	return m.UpdateErr
}

func (m *MockTransactionService) DeleteTransaction(transactionID, userID string) error {
	m.LastTransactionID = transactionID
	m.LastUserID = userID
	return m.DeleteErr
}
