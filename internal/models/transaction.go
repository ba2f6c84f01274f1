package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/apperrors"
)

// Supported currency codes. PLN is the reporting currency.
const (
	PLN = "PLN"
	EUR = "EUR"
	USD = "USD"
)

// SupportedCurrencies is the closed set of accepted currency codes.
var SupportedCurrencies = map[string]struct{}{
	PLN: {},
	EUR: {},
	USD: {},
}

// Transaction is a validated transaction record. Instances are only produced
// by ParseTransaction or read back from the store, and are never mutated.
type Transaction struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerID    uuid.UUID `json:"customer_id"`
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int       `json:"quantity"`
}

// TransactionDB represents a transaction row in the database.
type TransactionDB struct {
	TransactionID uuid.UUID `db:"transaction_id"` // Natural key, immutable
	Timestamp     time.Time `db:"timestamp"`
	Amount        float64   `db:"amount"`
	Currency      string    `db:"currency"`
	CustomerID    uuid.UUID `db:"customer_id"` // Indexed for lookup
	ProductID     uuid.UUID `db:"product_id"`  // Indexed for lookup
	Quantity      int       `db:"quantity"`
}

// ToDB converts a validated transaction into its row shape.
func (t Transaction) ToDB() TransactionDB {
	return TransactionDB{
		TransactionID: t.TransactionID,
		Timestamp:     t.Timestamp,
		Amount:        t.Amount,
		Currency:      t.Currency,
		CustomerID:    t.CustomerID,
		ProductID:     t.ProductID,
		Quantity:      t.Quantity,
	}
}

// FromDB converts a stored row back into a transaction.
func FromDB(row TransactionDB) Transaction {
	return Transaction{
		TransactionID: row.TransactionID,
		Timestamp:     row.Timestamp,
		Amount:        row.Amount,
		Currency:      row.Currency,
		CustomerID:    row.CustomerID,
		ProductID:     row.ProductID,
		Quantity:      row.Quantity,
	}
}

// RawTransaction holds untyped field values as they arrive from a CSV row or
// a single-create request body.
type RawTransaction struct {
	TransactionID string `json:"transaction_id"`
	Timestamp     string `json:"timestamp"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	CustomerID    string `json:"customer_id"`
	ProductID     string `json:"product_id"`
	Quantity      string `json:"quantity"`
}

// ParseTransaction validates raw field values and builds a transaction.
// Validation is fail-fast: the first invalid field aborts construction and
// the returned error names the offending value.
func ParseTransaction(raw RawTransaction) (*Transaction, error) {
	transactionID, err := uuid.Parse(strings.TrimSpace(raw.TransactionID))
	if err != nil {
		return nil, apperrors.InvalidField(
			fmt.Sprintf("transaction_id must be a valid UUID, received: %s", raw.TransactionID))
	}

	timestamp, err := parseTimestamp(strings.TrimSpace(raw.Timestamp))
	if err != nil {
		return nil, apperrors.InvalidField(
			fmt.Sprintf("timestamp must be provided in ISO 8601 format, received: %s", raw.Timestamp))
	}

	// ParseFloat accepts NaN and infinities, and NaN compares false against
	// everything, so the positivity check alone would let them through.
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, apperrors.InvalidField(
			fmt.Sprintf("amount must be a number greater than zero, received: %s", raw.Amount))
	}

	currency := strings.TrimSpace(raw.Currency)
	if _, ok := SupportedCurrencies[currency]; !ok {
		return nil, apperrors.InvalidField(
			fmt.Sprintf("unsupported currency: %s", raw.Currency))
	}

	customerID, err := uuid.Parse(strings.TrimSpace(raw.CustomerID))
	if err != nil {
		return nil, apperrors.InvalidField(
			fmt.Sprintf("customer_id must be a valid UUID, received: %s", raw.CustomerID))
	}

	productID, err := uuid.Parse(strings.TrimSpace(raw.ProductID))
	if err != nil {
		return nil, apperrors.InvalidField(
			fmt.Sprintf("product_id must be a valid UUID, received: %s", raw.ProductID))
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(raw.Quantity))
	if err != nil || quantity <= 0 {
		return nil, apperrors.InvalidField(
			fmt.Sprintf("quantity must be an integer greater than zero, received: %s", raw.Quantity))
	}

	return &Transaction{
		TransactionID: transactionID,
		Timestamp:     timestamp,
		Amount:        amount,
		Currency:      currency,
		CustomerID:    customerID,
		ProductID:     productID,
		Quantity:      quantity,
	}, nil
}

// sanitizeISOTimestamp normalizes a trailing Z to an explicit +00:00 offset.
// The malformed double suffix Z+00:00 has been seen in incoming files and is
// normalized the same way.
func sanitizeISOTimestamp(value string) string {
	if strings.HasSuffix(value, "Z+00:00") {
		return strings.TrimSuffix(value, "Z+00:00") + "+00:00"
	}
	if strings.HasSuffix(value, "Z") {
		return strings.TrimSuffix(value, "Z") + "+00:00"
	}
	return value
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	sanitized := sanitizeISOTimestamp(value)

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, sanitized)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
