// Package error defines domain-specific errors for the application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is not positive.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrInvalidTransactionDate is returned when the date is malformed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidPaymentMethod is returned when the payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrCardRequired is returned when a card-bound transaction carries no card reference.
	ErrCardRequired = errors.New("card reference required for this transaction")

	// ErrCardNotFoundForTransaction is returned when cardId references a nonexistent card.
	ErrCardNotFoundForTransaction = errors.New("referenced card not found")

	// ErrCardArchivedForTransaction is returned when cardId references an archived card.
	ErrCardArchivedForTransaction = errors.New("referenced card is archived")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is the error kind (01 validation, 02 reference)
// and YYYY is the specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidPaymentMethod     TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"
	ErrCodeCardRequired             TransactionErrorCode = "TXN-010007"

	// Reference errors (02XXXX)
	ErrCodeTxnCardNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeTxnCardArchived TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
