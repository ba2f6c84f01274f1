package models

// TransactionsPaginated is one page of a filtered transaction listing,
// ordered by timestamp descending.
type TransactionsPaginated struct {
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Items      []Transaction `json:"items"`
}

// BulkTransactionResult reports the outcome of one batch upload.
type BulkTransactionResult struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}
