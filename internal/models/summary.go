package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerSummary is an aggregate over all transactions of one customer,
// recomputed on every request. Revenue is normalized to PLN.
type CustomerSummary struct {
	CustomerID          uuid.UUID       `json:"customer_id"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	UniqueProductsCount int             `json:"unique_products_count"`
	LastTransactionDate time.Time       `json:"last_transaction_date"`
}

// ProductSummary is an aggregate over all transactions of one product.
type ProductSummary struct {
	ProductID            uuid.UUID       `json:"product_id"`
	TotalQuantity        int             `json:"total_quantity"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	UniqueCustomersCount int             `json:"unique_customers_count"`
}
