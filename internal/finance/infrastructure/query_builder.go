package infrastructure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
)

// queryBuilder assembles a conjunctive WHERE clause. Predicates are appended
// in a fixed order so the generated SQL is stable for any filter combination,
// and every filter value travels as a bind parameter, never as query text.
type queryBuilder struct {
	sql  strings.Builder
	args []interface{}
}

func newQueryBuilder(base string, args ...interface{}) *queryBuilder {
	qb := &queryBuilder{args: args}
	qb.sql.WriteString(base)
	return qb
}

// And appends one predicate. expr must contain a single %d verb marking the
// bind-parameter position.
func (qb *queryBuilder) And(expr string, value interface{}) {
	qb.args = append(qb.args, value)
	qb.sql.WriteString(" AND ")
	qb.sql.WriteString(fmt.Sprintf(expr, len(qb.args)))
}

// OrderBy appends an ordering clause. clause must come from a whitelist, not
// from user input.
func (qb *queryBuilder) OrderBy(clause string) {
	qb.sql.WriteString(" ORDER BY ")
	qb.sql.WriteString(clause)
}

func (qb *queryBuilder) Query() (string, []interface{}) {
	return qb.sql.String(), qb.args
}

// buildListQuery composes the listing query for one user from an arbitrary
// subset of filters, in the order type, category, month/year, search, order.
func buildListQuery(userID string, filter domain.TransactionFilter) (string, []interface{}) {
	qb := newQueryBuilder(
		`SELECT id, user_id, amount, type, category, description, date FROM transactions WHERE user_id = $1`,
		userID,
	)

	if filter.Type != "" {
		qb.And("type = $%d", filter.Type)
	}
	if filter.Category != "" {
		qb.And("category = $%d", filter.Category)
	}
	// A month without a year applies no date predicate at all.
	switch {
	case filter.Month != 0 && filter.Year != 0:
		qb.And("to_char(date, 'MM') = $%d", fmt.Sprintf("%02d", filter.Month))
		qb.And("to_char(date, 'YYYY') = $%d", strconv.Itoa(filter.Year))
	case filter.Year != 0:
		qb.And("to_char(date, 'YYYY') = $%d", strconv.Itoa(filter.Year))
	}
	if filter.Search != "" {
		qb.And("description LIKE $%d", "%"+filter.Search+"%")
	}

	switch strings.ToUpper(filter.Order) {
	case "ASC":
		qb.OrderBy("amount ASC")
	case "DESC":
		qb.OrderBy("amount DESC")
	}

	return qb.Query()
}

// buildUpdateQuery produces a SET list holding only the fields present in the
// partial update. The caller must reject empty updates beforehand.
func buildUpdateQuery(transactionID, userID string, update domain.TransactionUpdate) (string, []interface{}) {
	var sets []string
	var args []interface{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Amount != nil {
		set("amount", *update.Amount)
	}
	if update.Type != nil {
		set("type", *update.Type)
	}
	if update.Category != nil {
		set("category", *update.Category)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.Date != nil {
		set("date", *update.Date)
	}

	args = append(args, transactionID, userID)
	query := fmt.Sprintf(
		"UPDATE transactions SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)
	return query, args
}
