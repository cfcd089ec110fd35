package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
	financeErrors "github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/errors"
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) error
	GetTransaction(transactionID, userID string) (*domain.Transaction, error)
	GetUserTransactions(userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	UpdateTransaction(transactionID, userID string, update domain.TransactionUpdate) error
	DeleteTransaction(transactionID, userID string) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Amount      float64 `json:"amount"`
		Type        string  `json:"type"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Date        string  `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
		return
	}

	transaction := domain.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}
	if err := h.service.CreateTransaction(&transaction); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data": map[string]string{
			"transaction_id": transaction.ID,
		},
	})
}

// filterFromQuery reads the optional listing filters. Unparseable month or
// year values are treated as absent rather than rejected.
func filterFromQuery(r *http.Request) domain.TransactionFilter {
	q := r.URL.Query()
	filter := domain.TransactionFilter{
		Type:     q.Get("type"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Order:    q.Get("order"),
	}
	if month, err := strconv.Atoi(q.Get("month")); err == nil && month >= 1 && month <= 12 {
		filter.Month = month
	}
	if year, err := strconv.Atoi(q.Get("year")); err == nil && year > 0 {
		filter.Year = year
	}
	return filter
}

func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.service.GetUserTransactions(userID, filterFromQuery(r))
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    transactions,
	})
}

// GetTransaction responds with a one-element array, or an empty array when
// the id is absent or owned by another user.
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transaction, err := h.service.GetTransaction(r.PathValue("id"), userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transaction")
		return
	}

	data := []domain.Transaction{}
	if transaction != nil {
		data = append(data, *transaction)
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction retrieved successfully.",
		"data":    data,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Amount      *float64 `json:"amount"`
		Type        *string  `json:"type"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		Date        *string  `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := domain.TransactionUpdate{
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
			return
		}
		update.Date = &date
	}

	if err := h.service.UpdateTransaction(r.PathValue("id"), userID, update); err != nil {
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusBadRequest, "Invalid user or transaction")
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteTransaction(r.PathValue("id"), userID); err != nil {
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusNotFound, "Invalid user or transaction")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully deleted.",
	})
}
