// Package error defines domain-specific errors for the application.
package error

import (
	"errors"
	"fmt"
	"strings"
)

// Statement import domain errors.
var (
	// ErrNotAPDF is returned when the uploaded statement is not a PDF document.
	ErrNotAPDF = errors.New("uploaded file must be a PDF")

	// ErrEmptyStatement is returned when the uploaded statement is empty.
	ErrEmptyStatement = errors.New("uploaded statement is empty")

	// ErrExtractionFailed is returned when the extraction collaborator fails.
	// No partial results are trusted.
	ErrExtractionFailed = errors.New("statement extraction failed")

	// ErrExtractionTimeout is returned when the extraction call exceeds its deadline.
	ErrExtractionTimeout = errors.New("statement extraction timed out")

	// ErrMalformedExtraction is returned when the collaborator's response cannot be parsed.
	ErrMalformedExtraction = errors.New("malformed extraction response")
)

// StatementErrorCode defines error codes for statement import errors.
// Kind prefixes: 01 validation, 03 external service, 04 partial import.
type StatementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNotAPDF        StatementErrorCode = "STMT-010001"
	ErrCodeEmptyStatement StatementErrorCode = "STMT-010002"
	ErrCodeNoSelection    StatementErrorCode = "STMT-010003"

	// External service errors (03XXXX)
	ErrCodeExtractionFailed    StatementErrorCode = "STMT-030001"
	ErrCodeExtractionTimeout   StatementErrorCode = "STMT-030002"
	ErrCodeMalformedExtraction StatementErrorCode = "STMT-030003"

	// Partial import (04XXXX)
	ErrCodePartialImport StatementErrorCode = "STMT-040001"
)

// StatementError represents a statement import error with code and message.
type StatementError struct {
	Code    StatementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}

// NewStatementError creates a new StatementError with the given code and message.
func NewStatementError(code StatementErrorCode, message string, err error) *StatementError {
	return &StatementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// FailedImportItem identifies a single candidate that failed to commit
// during a batch import.
type FailedImportItem struct {
	Index       int
	Description string
	Err         error
}

// PartialImportError reports candidates that failed to commit in a batch
// import. Batch import is not atomic: commits that succeeded before or after
// a failure are kept, and only the listed items need to be retried.
type PartialImportError struct {
	Imported int
	Failed   []FailedImportItem
}

// Error implements the error interface.
func (e *PartialImportError) Error() string {
	parts := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		parts = append(parts, fmt.Sprintf("#%d %q: %v", f.Index, f.Description, f.Err))
	}
	return fmt.Sprintf("%d of %d candidates failed to import: %s",
		len(e.Failed), e.Imported+len(e.Failed), strings.Join(parts, "; "))
}
