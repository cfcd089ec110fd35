package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/errors"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	maxDescriptionLength = 200

	DateLayout = "2006-01-02"
)

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

// Date is a calendar date with no time component. It marshals as "2006-01-02"
// and maps to a Postgres DATE column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a %q string", DateLayout)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

type Transaction struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        Date    `json:"date"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if len(t.Description) > maxDescriptionLength {
		return errors.NewValidationError(fmt.Sprintf("Description must be of length less than %d", maxDescriptionLength))
	}
	if t.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	return nil
}

// TransactionFilter narrows a transaction listing. Zero values mean the
// filter is absent; filters combine with logical AND.
type TransactionFilter struct {
	Type     string
	Category string
	Month    int
	Year     int
	Search   string
	Order    string
}

// TransactionUpdate is a partial update: only non-nil fields change.
type TransactionUpdate struct {
	Amount      *float64
	Type        *string
	Category    *string
	Description *string
	Date        *Date
}

func (u TransactionUpdate) IsEmpty() bool {
	return u.Amount == nil && u.Type == nil && u.Category == nil && u.Description == nil && u.Date == nil
}

func (u TransactionUpdate) Validate() error {
	if u.Type != nil && !IsValidTransactionType(*u.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if u.Description != nil && len(*u.Description) > maxDescriptionLength {
		return errors.NewValidationError(fmt.Sprintf("Description must be of length less than %d", maxDescriptionLength))
	}
	return nil
}

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByID(transactionID, userID string) (*Transaction, error)
	FindByUser(userID string, filter TransactionFilter) ([]Transaction, error)
	Update(transactionID, userID string, update TransactionUpdate) error
	Delete(transactionID, userID string) error
	IsOwnedBy(userID, transactionID string) (bool, error)
}
