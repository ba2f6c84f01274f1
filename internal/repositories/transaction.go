package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/apperrors"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// TransactionWriteRepository handles transaction inserts.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one transaction. A duplicate natural key maps to a unique
// constraint error, anything else from the driver to an operational error.
func (r *TransactionWriteRepository) Save(ctx context.Context, transaction models.Transaction) error {
	const query = `
		INSERT INTO transactions (transaction_id, timestamp, amount, currency, customer_id, product_id, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	row := transaction.ToDB()
	args := []any{
		row.TransactionID, row.Timestamp, row.Amount, row.Currency,
		row.CustomerID, row.ProductID, row.Quantity,
	}

	_, err := executor.ExecContext(ctx, query, args...)

	logger.Log.Infow("executing query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.UniqueConstraintViolation(
				fmt.Sprintf("transaction %s already exists", row.TransactionID))
		}
		return apperrors.OperationalError(err.Error())
	}
	return nil
}

// TransactionReadRepository handles transaction reads.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByID retrieves one transaction by its natural key. Returns nil without
// an error when no row matches.
func (r *TransactionReadRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	const query = `
		SELECT transaction_id, timestamp, amount, currency, customer_id, product_id, quantity
		FROM transactions
		WHERE transaction_id = $1
	`

	var row models.TransactionDB
	err := r.db.GetContext(ctx, &row, query, transactionID)

	logger.Log.Infow("executing query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.OperationalError(err.Error())
	}

	transaction := models.FromDB(row)
	return &transaction, nil
}

// FetchPaginated returns one page of transactions matching the optional
// customer/product filter, ordered by timestamp descending, together with
// the total match count.
func (r *TransactionReadRepository) FetchPaginated(
	ctx context.Context,
	customerID, productID *uuid.UUID,
	page, pageSize int,
) (*models.TransactionsPaginated, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM transactions
		WHERE ($1::UUID IS NULL OR customer_id = $1)
		  AND ($2::UUID IS NULL OR product_id = $2)
	`

	var totalCount int
	err := r.db.GetContext(ctx, &totalCount, countQuery, customerID, productID)

	logger.Log.Infow("executing query",
		"query", strings.Join(strings.Fields(countQuery), " "),
		"args", []any{customerID, productID},
		"result", totalCount,
		"error", err,
	)

	if err != nil {
		return nil, apperrors.OperationalError(err.Error())
	}

	const query = `
		SELECT transaction_id, timestamp, amount, currency, customer_id, product_id, quantity
		FROM transactions
		WHERE ($1::UUID IS NULL OR customer_id = $1)
		  AND ($2::UUID IS NULL OR product_id = $2)
		ORDER BY timestamp DESC
		OFFSET $3 LIMIT $4
	`

	var rows []models.TransactionDB
	offset := (page - 1) * pageSize
	err = r.db.SelectContext(ctx, &rows, query, customerID, productID, offset, pageSize)

	logger.Log.Infow("executing query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{customerID, productID, offset, pageSize},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, apperrors.OperationalError(err.Error())
	}

	items := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.FromDB(row))
	}

	return &models.TransactionsPaginated{
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		Items:      items,
	}, nil
}

// ScanAll returns every transaction matching the optional customer/product
// filter, in no particular order. Used by the aggregation path, which always
// scans all matches.
func (r *TransactionReadRepository) ScanAll(ctx context.Context, customerID, productID *uuid.UUID) ([]models.Transaction, error) {
	const query = `
		SELECT transaction_id, timestamp, amount, currency, customer_id, product_id, quantity
		FROM transactions
		WHERE ($1::UUID IS NULL OR customer_id = $1)
		  AND ($2::UUID IS NULL OR product_id = $2)
	`

	var rows []models.TransactionDB
	err := r.db.SelectContext(ctx, &rows, query, customerID, productID)

	logger.Log.Infow("executing query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{customerID, productID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, apperrors.OperationalError(err.Error())
	}

	records := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.FromDB(row))
	}
	return records, nil
}
