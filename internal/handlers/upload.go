package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/apperrors"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/models"
)

// TransactionUploader defines the interface that the service must implement.
type TransactionUploader interface {
	CreateFromCSV(ctx context.Context, content []byte) (*models.BulkTransactionResult, error)
}

// availableMIMEFormats gatekeeps uploads before any bytes reach the validator.
var availableMIMEFormats = map[string]struct{}{
	"text/csv":                 {},
	"application/vnd.ms-excel": {},
}

// NewUploadTransactionsHandler returns an HTTP handler for bulk CSV upload.
// @Summary Upload a transactions CSV file
// @Description Validates every row independently and persists the valid ones. Partial success is reported, not treated as an error.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with a transaction_id,timestamp,amount,currency,customer_id,product_id,quantity header"
// @Success 201 {object} models.BulkTransactionResult "All rows persisted"
// @Success 207 {object} models.BulkTransactionResult "Mixed success and failure"
// @Failure 400 {object} apperrors.Error "Unsupported format or invalid file structure"
// @Failure 422 {object} models.BulkTransactionResult "No row persisted"
// @Failure 500 {object} apperrors.Error "Store failure"
// @Router /transactions/upload [post]
func NewUploadTransactionsHandler(svc TransactionUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.Log.Warnw("upload without file field", "error", err)
			writeJSON(w, http.StatusBadRequest,
				apperrors.InvalidField("multipart form must contain a 'file' field"))
			return
		}
		defer file.Close()

		if _, ok := availableMIMEFormats[header.Header.Get("Content-Type")]; !ok {
			logger.Log.Warnw("unsupported upload content type",
				"content_type", header.Header.Get("Content-Type"))
			writeJSON(w, http.StatusBadRequest, apperrors.UnsupportedTransactionFormat())
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read uploaded file", "error", err)
			writeJSON(w, http.StatusBadRequest,
				apperrors.InvalidField("failed to read uploaded file"))
			return
		}

		result, err := svc.CreateFromCSV(ctx, content)
		if err != nil {
			appErr := asAppError(err)
			switch appErr.Code {
			case apperrors.CodeValidationError:
				writeJSON(w, http.StatusBadRequest, appErr)
			default:
				logger.Log.Errorw("bulk upload failed", "error", err)
				writeJSON(w, http.StatusInternalServerError, appErr)
			}
			return
		}

		// Bucket the batch outcome: all persisted, partially persisted, or
		// nothing persisted (including an empty data section).
		var statusCode int
		switch {
		case result.Success > 0 && result.Failure == 0:
			statusCode = http.StatusCreated
		case result.Success > 0 && result.Failure > 0:
			statusCode = http.StatusMultiStatus
		default:
			statusCode = http.StatusUnprocessableEntity
		}

		writeJSON(w, statusCode, result)
	}
}
