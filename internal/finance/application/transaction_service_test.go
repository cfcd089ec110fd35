package application

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
	financeErrors "github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/errors"
	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/infrastructure"
)

func newTestTransactionService(repo *infrastructure.MockTransactionRepository) *TransactionService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewTransactionService(repo, logger)
}

func seedTransaction(repo *infrastructure.MockTransactionRepository, id, userID, kind, category string, amount float64) {
	repo.Transactions = append(repo.Transactions, domain.Transaction{
		ID:       id,
		UserID:   userID,
		Amount:   amount,
		Type:     kind,
		Category: category,
		Date:     domain.NewDate(2024, 3, 5),
	})
}

func TestCreateTransaction_AssignsID(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestTransactionService(repo)

	transaction := domain.Transaction{
		UserID: "user-1",
		Amount: 42.5,
		Type:   domain.TypeExpense,
		Date:   domain.NewDate(2024, 3, 5),
	}
	err := service.CreateTransaction(&transaction)

	assert.NoError(t, err)
	_, parseErr := uuid.Parse(transaction.ID)
	assert.NoError(t, parseErr)
	assert.Len(t, repo.Transactions, 1)
	assert.Equal(t, transaction.ID, repo.Transactions[0].ID)
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestTransactionService(repo)

	transaction := domain.Transaction{
		UserID: "user-1",
		Amount: 10,
		Type:   "transfer",
		Date:   domain.NewDate(2024, 3, 5),
	}
	err := service.CreateTransaction(&transaction)

	assert.Error(t, err)
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Transactions)
}

func TestGetTransaction_OtherUsersTransactionIsInvisible(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	seedTransaction(repo, "tx-1", "user-1", domain.TypeExpense, "food", 12)
	service := newTestTransactionService(repo)

	transaction, err := service.GetTransaction("tx-1", "user-2")

	assert.NoError(t, err)
	assert.Nil(t, transaction)
}

func TestGetUserTransactions_FilterComposition(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	seedTransaction(repo, "tx-1", "user-1", domain.TypeExpense, "food", 12)
	seedTransaction(repo, "tx-2", "user-1", domain.TypeExpense, "travel", 80)
	seedTransaction(repo, "tx-3", "user-1", domain.TypeIncome, "food", 100)
	seedTransaction(repo, "tx-4", "user-2", domain.TypeExpense, "food", 12)
	service := newTestTransactionService(repo)

	transactions, err := service.GetUserTransactions("user-1", domain.TransactionFilter{
		Type:     domain.TypeExpense,
		Category: "food",
	})

	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, "tx-1", transactions[0].ID)
}

func TestGetUserTransactions_OrderByAmount(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	seedTransaction(repo, "tx-1", "user-1", domain.TypeExpense, "food", 50)
	seedTransaction(repo, "tx-2", "user-1", domain.TypeExpense, "food", 10)
	seedTransaction(repo, "tx-3", "user-1", domain.TypeExpense, "food", 30)
	service := newTestTransactionService(repo)

	asc, err := service.GetUserTransactions("user-1", domain.TransactionFilter{Order: "asc"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"tx-2", "tx-3", "tx-1"}, []string{asc[0].ID, asc[1].ID, asc[2].ID})

	desc, err := service.GetUserTransactions("user-1", domain.TransactionFilter{Order: "desc"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"tx-1", "tx-3", "tx-2"}, []string{desc[0].ID, desc[1].ID, desc[2].ID})
}

func TestGetUserTransactions_EmptyResultIsNotNil(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTestTransactionService(repo)

	transactions, err := service.GetUserTransactions("user-1", domain.TransactionFilter{})

	assert.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}

func TestUpdateTransaction_NotOwned(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	seedTransaction(repo, "tx-1", "user-1", domain.TypeExpense, "food", 12)
	service := newTestTransactionService(repo)

	amount := 99.0
	err := service.UpdateTransaction("tx-1", "user-2", domain.TransactionUpdate{Amount: &amount})

	assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
	assert.Equal(t, 12.0, repo.Transactions[0].Amount)
}

func TestUpdateTransaction_PartialFieldsOnly(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	seedTransaction(repo, "tx-1", "user-1", domain.TypeExpense, "food", 12)
	repo.Transactions[0].Description = "lunch"
	service := newTestTransactionService(repo)

	amount := 20.0
	err := service.UpdateTransaction("tx-1", "user-1", domain.TransactionUpdate{Amount: &amount})

	assert.NoError(t, err)
	updated := repo.Transactions[0]
	assert.Equal(t, 20.0, updated.Amount)
	assert.Equal(t, domain.TypeExpense, updated.Type)
	assert.Equal(t, "food", updated.Category)
	assert.Equal(t, "lunch", updated.Description)
}

func TestUpdateTransaction_EmptyUpdateIsNoop(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	seedTransaction(repo, "tx-1", "user-1", domain.TypeExpense, "food", 12)
	service := newTestTransactionService(repo)

	err := service.UpdateTransaction("tx-1", "user-1", domain.TransactionUpdate{})

	assert.NoError(t, err)
	assert.Equal(t, 12.0, repo.Transactions[0].Amount)
}

func TestUpdateTransaction_InvalidType(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	seedTransaction(repo, "tx-1", "user-1", domain.TypeExpense, "food", 12)
	service := newTestTransactionService(repo)

	kind := "refund"
	err := service.UpdateTransaction("tx-1", "user-1", domain.TransactionUpdate{Type: &kind})

	assert.Error(t, err)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestDeleteTransaction_NotOwned(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	seedTransaction(repo, "tx-1", "user-1", domain.TypeExpense, "food", 12)
	service := newTestTransactionService(repo)

	err := service.DeleteTransaction("tx-1", "user-2")

	assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
	assert.Len(t, repo.Transactions, 1)
}

func TestDeleteTransaction_Owned(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	seedTransaction(repo, "tx-1", "user-1", domain.TypeExpense, "food", 12)
	service := newTestTransactionService(repo)

	err := service.DeleteTransaction("tx-1", "user-1")

	assert.NoError(t, err)
	assert.Empty(t, repo.Transactions)
}
