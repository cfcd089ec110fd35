package infrastructure

import (
	"sort"
	"strings"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
)

// MockTransactionRepository mirrors the SQL repository's semantics in memory
// for service tests: user scoping, filter composition, partial updates.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) FindByUser(userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if filter.Type != "" && transaction.Type != filter.Type {
			continue
		}
		if filter.Category != "" && transaction.Category != filter.Category {
			continue
		}
		if filter.Month != 0 && filter.Year != 0 {
			if int(transaction.Date.Month()) != filter.Month || transaction.Date.Year() != filter.Year {
				continue
			}
		} else if filter.Year != 0 {
			if transaction.Date.Year() != filter.Year {
				continue
			}
		}
		if filter.Search != "" && !strings.Contains(transaction.Description, filter.Search) {
			continue
		}
		filtered = append(filtered, transaction)
	}

	switch strings.ToUpper(filter.Order) {
	case "ASC":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Amount < filtered[j].Amount })
	case "DESC":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Amount > filtered[j].Amount })
	}
	return filtered, nil
}

func (m *MockTransactionRepository) Update(transactionID, userID string, update domain.TransactionUpdate) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID != transactionID || m.Transactions[i].UserID != userID {
			continue
		}
		if update.Amount != nil {
			m.Transactions[i].Amount = *update.Amount
		}
		if update.Type != nil {
			m.Transactions[i].Type = *update.Type
		}
		if update.Category != nil {
			m.Transactions[i].Category = *update.Category
		}
		if update.Description != nil {
			m.Transactions[i].Description = *update.Description
		}
		if update.Date != nil {
			m.Transactions[i].Date = *update.Date
		}
		return nil
	}
	return nil
}

func (m *MockTransactionRepository) Delete(transactionID, userID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockTransactionRepository) IsOwnedBy(userID, transactionID string) (bool, error) {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
