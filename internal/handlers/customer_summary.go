package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/apperrors"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/models"
)

// CustomerSummaryReader defines the interface that the service must implement.
type CustomerSummaryReader interface {
	GetCustomerSummary(ctx context.Context, customerID uuid.UUID) (*models.CustomerSummary, error)
}

// NewCustomerSummaryHandler returns an HTTP handler for the customer report.
// @Summary Get customer summary
// @Description Aggregates all transactions of one customer: revenue normalized to PLN, distinct products and last activity. Recomputed on every request.
// @Tags reports
// @Produce json
// @Param customer_id path string true "Customer ID (UUID)"
// @Success 200 {object} models.CustomerSummary "Customer summary"
// @Failure 400 {object} apperrors.Error "Malformed identifier"
// @Failure 404 {object} apperrors.Error "No transactions for this customer"
// @Failure 500 {object} apperrors.Error "Store failure"
// @Router /reports/customer-summary/{customer_id} [get]
func NewCustomerSummaryHandler(svc CustomerSummaryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		customerID, err := uuid.Parse(chi.URLParam(r, "customer_id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				apperrors.InvalidField("customer_id must be a valid UUID"))
			return
		}

		summary, err := svc.GetCustomerSummary(ctx, customerID)
		if err != nil {
			appErr := asAppError(err)
			switch appErr.Code {
			case apperrors.CodeResourceNotFound:
				writeJSON(w, http.StatusNotFound, appErr)
			default:
				logger.Log.Errorw("failed to build customer summary", "customer_id", customerID, "error", err)
				writeJSON(w, http.StatusInternalServerError, appErr)
			}
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
