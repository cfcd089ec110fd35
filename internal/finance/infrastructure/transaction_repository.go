package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, user_id, amount, type, category, description, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		transaction.ID, transaction.UserID, transaction.Amount, transaction.Type,
		transaction.Category, transaction.Description, transaction.Date,
	)
	return err
}

// FindByID returns nil when the id is absent or belongs to another user; the
// two cases are indistinguishable.
func (r *TransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRow(
		`SELECT id, user_id, amount, type, category, description, date FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	).Scan(&transaction.ID, &transaction.UserID, &transaction.Amount, &transaction.Type,
		&transaction.Category, &transaction.Description, &transaction.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindByUser(userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query, args := buildListQuery(userID, filter)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Amount, &transaction.Type,
			&transaction.Category, &transaction.Description, &transaction.Date); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Update(transactionID, userID string, update domain.TransactionUpdate) error {
	query, args := buildUpdateQuery(transactionID, userID, update)
	_, err := r.db.Exec(query, args...)
	return err
}

func (r *TransactionRepository) Delete(transactionID, userID string) error {
	_, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	return err
}

func (r *TransactionRepository) IsOwnedBy(userID, transactionID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM transactions WHERE id = $1 AND user_id = $2)"
	err := r.db.QueryRow(query, transactionID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
