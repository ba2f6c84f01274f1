package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/apperrors"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/models"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	FetchPaginated(ctx context.Context, customerID, productID *uuid.UUID, page, pageSize int) (*models.TransactionsPaginated, error)
}

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// NewListTransactionsHandler returns an HTTP handler for the paginated listing.
// @Summary List transactions
// @Description Returns one page of transactions ordered by timestamp descending, optionally filtered by customer or product.
// @Tags transactions
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param page_size query int false "Page size" default(10)
// @Param customer_id query string false "Filter by customer ID (UUID)"
// @Param product_id query string false "Filter by product ID (UUID)"
// @Success 200 {object} models.TransactionsPaginated "One listing page"
// @Failure 400 {object} apperrors.Error "Malformed query parameter"
// @Failure 500 {object} apperrors.Error "Store failure"
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		page, err := positiveIntParam(query.Get("page"), defaultPage)
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				apperrors.InvalidField("page must be an integer greater than or equal to 1"))
			return
		}

		pageSize, err := positiveIntParam(query.Get("page_size"), defaultPageSize)
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				apperrors.InvalidField("page_size must be an integer greater than or equal to 1"))
			return
		}

		customerID, err := optionalUUIDParam(query.Get("customer_id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				apperrors.InvalidField("customer_id must be a valid UUID"))
			return
		}

		productID, err := optionalUUIDParam(query.Get("product_id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				apperrors.InvalidField("product_id must be a valid UUID"))
			return
		}

		paginated, err := svc.FetchPaginated(ctx, customerID, productID, page, pageSize)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "error", err)
			writeJSON(w, http.StatusInternalServerError, asAppError(err))
			return
		}

		writeJSON(w, http.StatusOK, paginated)
	}
}

func positiveIntParam(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return 0, strconv.ErrRange
	}
	return parsed, nil
}

func optionalUUIDParam(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
