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

// TransactionGetter defines the interface that the service must implement.
type TransactionGetter interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
}

// NewGetTransactionHandler returns an HTTP handler for a point lookup.
// @Summary Get transaction details
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 400 {object} apperrors.Error "Malformed identifier"
// @Failure 404 {object} apperrors.Error "Transaction does not exist"
// @Failure 500 {object} apperrors.Error "Store failure"
// @Router /transactions/{transaction_id} [get]
func NewGetTransactionHandler(svc TransactionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		transactionID, err := uuid.Parse(chi.URLParam(r, "transaction_id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				apperrors.InvalidField("transaction_id must be a valid UUID"))
			return
		}

		transaction, err := svc.GetByID(ctx, transactionID)
		if err != nil {
			appErr := asAppError(err)
			switch appErr.Code {
			case apperrors.CodeResourceNotFound:
				writeJSON(w, http.StatusNotFound, appErr)
			default:
				logger.Log.Errorw("failed to get transaction", "transaction_id", transactionID, "error", err)
				writeJSON(w, http.StatusInternalServerError, appErr)
			}
			return
		}

		writeJSON(w, http.StatusOK, transaction)
	}
}
