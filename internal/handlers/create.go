package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/apperrors"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/models"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, raw models.RawTransaction) (*models.Transaction, error)
}

// CreateTransactionRequest carries the raw field values of one transaction.
// All fields arrive as strings and go through the same validation as a CSV
// row.
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Transaction identifier (UUID, natural key)
	// required: true
	TransactionID string `json:"transaction_id"`

	// ISO-8601 timestamp, trailing Z accepted
	// required: true
	Timestamp string `json:"timestamp"`

	// Amount, must be greater than zero
	// required: true
	Amount string `json:"amount"`

	// Currency code, one of PLN, EUR, USD
	// required: true
	Currency string `json:"currency"`

	// Customer identifier (UUID)
	// required: true
	CustomerID string `json:"customer_id"`

	// Product identifier (UUID)
	// required: true
	ProductID string `json:"product_id"`

	// Quantity, must be greater than zero
	// required: true
	Quantity string `json:"quantity"`
}

// NewCreateTransactionHandler returns an HTTP handler for single-record creation.
// @Summary Create a transaction
// @Description Validates the raw field values and persists one transaction record.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransactionRequest true "Transaction to create"
// @Success 201 {object} models.Transaction "Transaction persisted"
// @Failure 400 {object} apperrors.Error "Malformed or out-of-range field"
// @Failure 409 {object} apperrors.Error "Transaction already exists"
// @Failure 500 {object} apperrors.Error "Store failure"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode create request", "error", err)
			writeJSON(w, http.StatusBadRequest, apperrors.InvalidField("invalid request body"))
			return
		}

		raw := models.RawTransaction{
			TransactionID: req.TransactionID,
			Timestamp:     req.Timestamp,
			Amount:        req.Amount,
			Currency:      req.Currency,
			CustomerID:    req.CustomerID,
			ProductID:     req.ProductID,
			Quantity:      req.Quantity,
		}

		transaction, err := svc.Create(ctx, raw)
		if err != nil {
			appErr := asAppError(err)
			switch appErr.Code {
			case apperrors.CodeValidationError:
				writeJSON(w, http.StatusBadRequest, appErr)
			case apperrors.CodeRepositoryError:
				writeJSON(w, http.StatusConflict, appErr)
			default:
				logger.Log.Errorw("failed to create transaction", "error", err)
				writeJSON(w, http.StatusInternalServerError, appErr)
			}
			return
		}

		writeJSON(w, http.StatusCreated, transaction)
	}
}
