package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/aggregation"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/apperrors"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/models"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/validation"
)

// TransactionWriter defines transaction write operations used by the service.
type TransactionWriter interface {
	Save(ctx context.Context, transaction models.Transaction) error // Inserts one transaction
}

// TransactionReader defines transaction read operations used by the service.
type TransactionReader interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
	FetchPaginated(ctx context.Context, customerID, productID *uuid.UUID, page, pageSize int) (*models.TransactionsPaginated, error)
	ScanAll(ctx context.Context, customerID, productID *uuid.UUID) ([]models.Transaction, error)
}

// BatchValidator validates a raw CSV payload into a partitioned batch result.
type BatchValidator interface {
	Validate(content []byte) (*validation.Result, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService orchestrates ingestion, lookups and reporting.
type TransactionService struct {
	writeRepo   TransactionWriter
	readRepo    TransactionReader
	validator   BatchValidator
	kafkaWriter KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	writeRepo TransactionWriter,
	readRepo TransactionReader,
	validator BatchValidator,
	kafkaWriter KafkaWriter,
) *TransactionService {
	return &TransactionService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		validator:   validator,
		kafkaWriter: kafkaWriter,
	}
}

// publishTransaction publishes a persisted transaction to Kafka.
func (s *TransactionService) publishTransaction(ctx context.Context, transaction models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing",
			"transaction_id", transaction.TransactionID)
		return
	}

	data, err := json.Marshal(transaction)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka",
			"transaction_id", transaction.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(transaction.TransactionID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka",
			"transaction_id", transaction.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka",
			"transaction_id", transaction.TransactionID, "amount", transaction.Amount)
	}
}

// Create validates raw field values, persists the record and publishes it.
func (s *TransactionService) Create(ctx context.Context, raw models.RawTransaction) (*models.Transaction, error) {
	transaction, err := models.ParseTransaction(raw)
	if err != nil {
		logger.Log.Warnw("invalid transaction payload", "error", err)
		return nil, err
	}

	if err := s.writeRepo.Save(ctx, *transaction); err != nil {
		logger.Log.Errorw("failed to save transaction",
			"transaction_id", transaction.TransactionID, "error", err)
		return nil, err
	}

	s.publishTransaction(ctx, *transaction)

	return transaction, nil
}

// CreateFromCSV validates a bulk CSV payload and persists every valid row.
// Rows are inserted individually; a store failure mid-batch surfaces as an
// infrastructure error and whatever was already inserted stays subject to
// the request-scoped commit (best-effort batch persistence).
func (s *TransactionService) CreateFromCSV(ctx context.Context, content []byte) (*models.BulkTransactionResult, error) {
	result, err := s.validator.Validate(content)
	if err != nil {
		return nil, err
	}

	for _, transaction := range result.Validated {
		if err := s.writeRepo.Save(ctx, transaction); err != nil {
			logger.Log.Errorw("failed to save transaction from batch",
				"transaction_id", transaction.TransactionID, "error", err)
			return nil, err
		}
		s.publishTransaction(ctx, transaction)
	}

	return &models.BulkTransactionResult{
		Success: result.Success,
		Failure: result.Failure,
	}, nil
}

// GetByID fetches one transaction or reports not-found.
func (s *TransactionService) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.readRepo.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "transaction_id", transactionID, "error", err)
		return nil, err
	}
	if transaction == nil {
		return nil, apperrors.TransactionNotFound()
	}
	return transaction, nil
}

// FetchPaginated returns one listing page matching the optional filter.
func (s *TransactionService) FetchPaginated(
	ctx context.Context,
	customerID, productID *uuid.UUID,
	page, pageSize int,
) (*models.TransactionsPaginated, error) {
	paginated, err := s.readRepo.FetchPaginated(ctx, customerID, productID, page, pageSize)
	if err != nil {
		logger.Log.Errorw("failed to fetch transactions",
			"customer_id", customerID, "product_id", productID, "error", err)
		return nil, err
	}
	return paginated, nil
}

// GetCustomerSummary scans all transactions of one customer and aggregates
// them. Zero matching records is a not-found condition, not a zero summary.
func (s *TransactionService) GetCustomerSummary(ctx context.Context, customerID uuid.UUID) (*models.CustomerSummary, error) {
	records, err := s.readRepo.ScanAll(ctx, &customerID, nil)
	if err != nil {
		logger.Log.Errorw("failed to scan customer transactions", "customer_id", customerID, "error", err)
		return nil, err
	}

	summary := aggregation.BuildCustomerSummary(customerID, records)
	if summary == nil {
		return nil, apperrors.CustomerSummaryNotFound()
	}
	return summary, nil
}

// GetProductSummary scans all transactions of one product and aggregates them.
func (s *TransactionService) GetProductSummary(ctx context.Context, productID uuid.UUID) (*models.ProductSummary, error) {
	records, err := s.readRepo.ScanAll(ctx, nil, &productID)
	if err != nil {
		logger.Log.Errorw("failed to scan product transactions", "product_id", productID, "error", err)
		return nil, err
	}

	summary := aggregation.BuildProductSummary(productID, records)
	if summary == nil {
		return nil, apperrors.ProductSummaryNotFound()
	}
	return summary, nil
}
