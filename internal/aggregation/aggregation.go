package aggregation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/currency"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/models"
)

// BuildCustomerSummary folds all transactions of one customer into a summary:
// revenue normalized to PLN, distinct product count and most recent activity.
// Returns nil when there are no records: an unknown customer is a not-found
// condition for the caller, not a zero-revenue summary.
func BuildCustomerSummary(customerID uuid.UUID, records []models.Transaction) *models.CustomerSummary {
	if len(records) == 0 {
		return nil
	}

	revenue := decimal.Zero
	products := make(map[uuid.UUID]struct{})
	var last time.Time

	for _, record := range records {
		revenue = revenue.Add(currency.ToPLN(record.Amount, record.Currency))
		products[record.ProductID] = struct{}{}
		if record.Timestamp.After(last) {
			last = record.Timestamp
		}
	}

	return &models.CustomerSummary{
		CustomerID:          customerID,
		TotalRevenue:        revenue,
		UniqueProductsCount: len(products),
		LastTransactionDate: last,
	}
}

// BuildProductSummary folds all transactions of one product into a summary.
// Returns nil when there are no records.
func BuildProductSummary(productID uuid.UUID, records []models.Transaction) *models.ProductSummary {
	if len(records) == 0 {
		return nil
	}

	revenue := decimal.Zero
	customers := make(map[uuid.UUID]struct{})
	totalQuantity := 0

	for _, record := range records {
		revenue = revenue.Add(currency.ToPLN(record.Amount, record.Currency))
		customers[record.CustomerID] = struct{}{}
		totalQuantity += record.Quantity
	}

	return &models.ProductSummary{
		ProductID:            productID,
		TotalQuantity:        totalQuantity,
		TotalRevenue:         revenue,
		UniqueCustomersCount: len(customers),
	}
}
