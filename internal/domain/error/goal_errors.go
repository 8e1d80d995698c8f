// Package error defines domain-specific errors for the application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalTarget is returned when the target amount is not positive.
	ErrInvalidGoalTarget = errors.New("goal target amount must be positive")

	// ErrInvalidGoalDeadline is returned when the deadline is malformed.
	ErrInvalidGoalDeadline = errors.New("invalid goal deadline")
)

// GoalErrorCode defines error codes for goal errors.
type GoalErrorCode string

const (
	ErrCodeInvalidGoalTarget   GoalErrorCode = "GOAL-010001"
	ErrCodeInvalidGoalDeadline GoalErrorCode = "GOAL-010002"
	ErrCodeGoalNotFound        GoalErrorCode = "GOAL-010003"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOAL-010004"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
