// Package error defines domain-specific errors for the application.
package error

import "errors"

// Errors shared by the smaller collections (assets, subscriptions, snapshot).
var (
	// ErrAssetNotFound is returned when an asset is not found.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidAssetValue is returned when an asset value is malformed.
	ErrInvalidAssetValue = errors.New("invalid asset value")

	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInvalidSubscriptionAmount is returned when the amount is not positive.
	ErrInvalidSubscriptionAmount = errors.New("subscription amount must be positive")

	// ErrInvalidFrequency is returned when a subscription frequency is unknown.
	ErrInvalidFrequency = errors.New("invalid subscription frequency")

	// ErrMalformedSnapshot is returned when an imported snapshot cannot be parsed.
	ErrMalformedSnapshot = errors.New("malformed snapshot file")

	// ErrRateLimited is returned when too many extraction requests arrive.
	ErrRateLimited = errors.New("too many requests")
)

// GeneralErrorCode defines error codes not tied to a single collection.
type GeneralErrorCode string

const (
	ErrCodeAssetNotFound        GeneralErrorCode = "GEN-010001"
	ErrCodeInvalidAssetValue    GeneralErrorCode = "GEN-010002"
	ErrCodeSubscriptionNotFound GeneralErrorCode = "GEN-010003"
	ErrCodeInvalidSubscription  GeneralErrorCode = "GEN-010004"
	ErrCodeMalformedSnapshot    GeneralErrorCode = "GEN-010005"
	ErrCodeRateLimited          GeneralErrorCode = "GEN-010006"
	ErrCodeInternalError        GeneralErrorCode = "GEN-990001"
)

// GeneralError represents an error with code and message for the smaller
// collections.
type GeneralError struct {
	Code    GeneralErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GeneralError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GeneralError) Unwrap() error {
	return e.Err
}

// NewGeneralError creates a new GeneralError with the given code and message.
func NewGeneralError(code GeneralErrorCode, message string, err error) *GeneralError {
	return &GeneralError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
