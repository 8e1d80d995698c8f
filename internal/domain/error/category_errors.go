// Package error defines domain-specific errors for the application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateCategoryName is returned when a name already exists within the type.
	ErrDuplicateCategoryName = errors.New("category name already exists for this type")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryTypeMismatch is returned when reordering categories of different types.
	ErrCategoryTypeMismatch = errors.New("categories must share a type to be reordered")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeDuplicateCategoryName CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryTypeMismatch  CategoryErrorCode = "CAT-010004"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010005"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
