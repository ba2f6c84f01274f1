package apperrors

// Code is a stable machine-readable error code rendered in API responses.
type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeRepositoryError  Code = "REPOSITORY_ERROR"
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeValidationError  Code = "VALIDATION_ERROR"
	CodeResourceNotFound Code = "RESOURCE_NOT_FOUND"
)

// Error is the single domain error carrier: a stable code plus a message.
// Each variant below fixes the code and supplies a default message that the
// caller may override with something more specific.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code Code, defaultMessage, message string) *Error {
	if message == "" {
		message = defaultMessage
	}
	return &Error{Code: code, Message: message}
}

// TransactionNotFound signals a point lookup that matched no transaction.
func TransactionNotFound() *Error {
	return newError(CodeResourceNotFound, "Transaction does not exist", "")
}

// CustomerSummaryNotFound signals that no transactions exist for a customer.
func CustomerSummaryNotFound() *Error {
	return newError(CodeResourceNotFound, "Customer summary does not exist", "")
}

// ProductSummaryNotFound signals that no transactions exist for a product.
func ProductSummaryNotFound() *Error {
	return newError(CodeResourceNotFound, "Product summary does not exist", "")
}

// InvalidFileStructure aborts a whole batch whose header row does not match
// the expected column set.
func InvalidFileStructure(message string) *Error {
	return newError(CodeValidationError, "Invalid file structure", message)
}

// UnsupportedTransactionFormat rejects uploads with a non-CSV content type.
func UnsupportedTransactionFormat() *Error {
	return newError(CodeValidationError, "Unsupported transaction input format", "")
}

// InvalidField reports a single malformed or out-of-range record field.
func InvalidField(message string) *Error {
	return newError(CodeValidationError, "Invalid field value", message)
}

// UniqueConstraintViolation reports an insert that hit an existing natural key.
func UniqueConstraintViolation(message string) *Error {
	return newError(CodeRepositoryError, "Transaction already exists", message)
}

// OperationalError reports a transient store-layer failure.
func OperationalError(message string) *Error {
	return newError(CodeDatabaseError, "Database operation failed", message)
}
