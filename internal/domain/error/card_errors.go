// Package error defines domain-specific errors for the application.
package error

import "errors"

// Credit card domain errors.
var (
	// ErrCardNotFound is returned when a credit card is not found.
	ErrCardNotFound = errors.New("credit card not found")

	// ErrInvalidCardLimit is returned when the card limit is negative.
	ErrInvalidCardLimit = errors.New("card limit must not be negative")

	// ErrInvalidPaymentAmount is returned when a payoff amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrPaymentExceedsBalance is returned when a payoff exceeds the card's balance.
	ErrPaymentExceedsBalance = errors.New("payment exceeds card balance")

	// ErrPaymentExceedsSavings is returned when a payoff exceeds the savings pool.
	ErrPaymentExceedsSavings = errors.New("payment exceeds total savings")
)

// CardErrorCode defines error codes for credit card errors.
type CardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCardLimit      CardErrorCode = "CARD-010001"
	ErrCodeInvalidPaymentAmount  CardErrorCode = "CARD-010002"
	ErrCodePaymentExceedsBalance CardErrorCode = "CARD-010003"
	ErrCodePaymentExceedsSavings CardErrorCode = "CARD-010004"
	ErrCodeMissingCardFields     CardErrorCode = "CARD-010005"

	// Reference errors (02XXXX)
	ErrCodeCardNotFound CardErrorCode = "CARD-020001"
)

// CardError represents a credit card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
