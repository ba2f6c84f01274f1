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

// ProductSummaryReader defines the interface that the service must implement.
type ProductSummaryReader interface {
	GetProductSummary(ctx context.Context, productID uuid.UUID) (*models.ProductSummary, error)
}

// NewProductSummaryHandler returns an HTTP handler for the product report.
// @Summary Get product summary
// @Description Aggregates all transactions of one product: total quantity, revenue normalized to PLN and distinct customers. Recomputed on every request.
// @Tags reports
// @Produce json
// @Param product_id path string true "Product ID (UUID)"
// @Success 200 {object} models.ProductSummary "Product summary"
// @Failure 400 {object} apperrors.Error "Malformed identifier"
// @Failure 404 {object} apperrors.Error "No transactions for this product"
// @Failure 500 {object} apperrors.Error "Store failure"
// @Router /reports/product-summary/{product_id} [get]
func NewProductSummaryHandler(svc ProductSummaryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				apperrors.InvalidField("product_id must be a valid UUID"))
			return
		}

		summary, err := svc.GetProductSummary(ctx, productID)
		if err != nil {
			appErr := asAppError(err)
			switch appErr.Code {
			case apperrors.CodeResourceNotFound:
				writeJSON(w, http.StatusNotFound, appErr)
			default:
				logger.Log.Errorw("failed to build product summary", "product_id", productID, "error", err)
				writeJSON(w, http.StatusInternalServerError, appErr)
			}
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
