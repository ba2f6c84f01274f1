package validation

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/apperrors"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/models"
)

// expectedHeaders is the fixed column set every uploaded file must carry.
// Column order does not matter.
var expectedHeaders = map[string]struct{}{
	"transaction_id": {},
	"timestamp":      {},
	"amount":         {},
	"currency":       {},
	"customer_id":    {},
	"product_id":     {},
	"quantity":       {},
}

// Result partitions one batch: the validated records in file order plus
// success and failure counts. Rows skipped as in-batch duplicates count
// toward neither bucket.
type Result struct {
	Validated []models.Transaction
	Success   int
	Failure   int
}

// Validator parses a raw CSV payload and validates each row independently.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate parses content as CSV with a header row. A header set that
// differs from the expected columns fails the whole batch immediately; every
// per-row problem degrades to a counted failure and never aborts the batch.
// A header-only file yields an empty result, not an error.
func (v *Validator) Validate(content []byte) (*Result, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.InvalidFileStructure(headerMismatchMessage(nil))
	}

	received := make(map[string]struct{}, len(header))
	for _, column := range header {
		received[column] = struct{}{}
	}
	if !headerSetsEqual(received) {
		return nil, apperrors.InvalidFileStructure(headerMismatchMessage(header))
	}

	// Column positions for this file.
	index := make(map[string]int, len(header))
	for pos, column := range header {
		index[column] = pos
	}

	result := &Result{}
	seen := make(map[uuid.UUID]struct{})

	for rowIdx := 1; ; rowIdx++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Log.Errorw("invalid row content", "row", rowIdx, "reason", err)
			result.Failure++
			continue
		}
		if len(row) != len(header) {
			logger.Log.Errorw("invalid row content", "row", rowIdx, "reason", "wrong number of fields")
			result.Failure++
			continue
		}

		raw := models.RawTransaction{
			TransactionID: row[index["transaction_id"]],
			Timestamp:     row[index["timestamp"]],
			Amount:        row[index["amount"]],
			Currency:      row[index["currency"]],
			CustomerID:    row[index["customer_id"]],
			ProductID:     row[index["product_id"]],
			Quantity:      row[index["quantity"]],
		}

		transaction, err := models.ParseTransaction(raw)
		if err != nil {
			logger.Log.Errorw("invalid row content", "row", rowIdx, "reason", err)
			result.Failure++
			continue
		}

		if _, ok := seen[transaction.TransactionID]; ok {
			logger.Log.Errorw("duplicate transaction_id",
				"transaction_id", transaction.TransactionID, "row", rowIdx)
			continue
		}

		seen[transaction.TransactionID] = struct{}{}
		result.Validated = append(result.Validated, *transaction)
		result.Success++
	}

	return result, nil
}

func headerSetsEqual(received map[string]struct{}) bool {
	if len(received) != len(expectedHeaders) {
		return false
	}
	for column := range expectedHeaders {
		if _, ok := received[column]; !ok {
			return false
		}
	}
	return true
}

func headerMismatchMessage(received []string) string {
	expected := make([]string, 0, len(expectedHeaders))
	for column := range expectedHeaders {
		expected = append(expected, column)
	}
	sort.Strings(expected)

	got := append([]string(nil), received...)
	sort.Strings(got)

	return fmt.Sprintf("Invalid CSV headers. Expected: %v. Received: %v", expected, got)
}
