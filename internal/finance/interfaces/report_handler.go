package interfaces

import (
	"net/http"
	"strconv"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/domain"
)

type ReportServiceInterface interface {
	GetSummary(userID string) (domain.Summary, error)
	GetMonthlyReport(userID string, year int) ([]domain.MonthlyTotal, error)
	GetCategoryReport(userID string, month, year int) ([]domain.CategoryTotal, error)
	GetYearlyReport(userID string) ([]domain.YearlyTotal, error)
}

type ReportHandler struct {
	service      ReportServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewReportHandler(
	service ReportServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ReportHandler {
	return &ReportHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.GetSummary(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Summary retrieved successfully.",
		"data":    summary,
	})
}

func (h *ReportHandler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year <= 0 {
		h.respondError(w, http.StatusBadRequest, "Invalid year value")
		return
	}

	report, err := h.service.GetMonthlyReport(userID, year)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve monthly report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Monthly report retrieved successfully.",
		"data":    report,
	})
}

func (h *ReportHandler) GetCategoryReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.respondError(w, http.StatusBadRequest, "Invalid month value")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year <= 0 {
		h.respondError(w, http.StatusBadRequest, "Invalid year value")
		return
	}

	report, err := h.service.GetCategoryReport(userID, month, year)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve category report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category report retrieved successfully.",
		"data":    report,
	})
}

func (h *ReportHandler) GetYearlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	report, err := h.service.GetYearlyReport(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve yearly report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Yearly report retrieved successfully.",
		"data":    report,
	})
}
