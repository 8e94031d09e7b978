package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the booking workflow.
var (
	// ErrInvalidRequest indicates the request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSessionNotFound indicates no workflow session exists for the ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired indicates the workflow session has expired.
	ErrSessionExpired = errors.New("session expired")

	// ErrFlightRequired indicates a workflow was started without a flight
	// in context. This is a precondition violation, not a user error.
	ErrFlightRequired = errors.New("flight is required")

	// ErrGateClosed indicates an attempt to advance past a closed gate.
	ErrGateClosed = errors.New("gate closed")

	// ErrSubmissionFailed indicates the booking-creation call failed.
	// Workflow state is preserved so the user can retry.
	ErrSubmissionFailed = errors.New("booking submission failed")
)

// SubmissionError wraps a failure of the booking-creation call with a
// retryability flag for the transport layer.
type SubmissionError struct {
	// Err is the underlying error
	Err error

	// Retryable indicates whether the call may be retried
	Retryable bool
}

// Error implements the error interface.
func (e *SubmissionError) Error() string {
	return fmt.Sprintf("booking submission failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Is reports whether the target matches ErrSubmissionFailed.
func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}

// NewSubmissionError creates a non-retryable submission error.
func NewSubmissionError(err error) *SubmissionError {
	return &SubmissionError{Err: err}
}

// NewRetryableSubmissionError creates a retryable submission error.
func NewRetryableSubmissionError(err error) *SubmissionError {
	return &SubmissionError{Err: err, Retryable: true}
}

// GateClosedError wraps ErrGateClosed with the gate's refusal reason.
type GateClosedError struct {
	// Reason is the human-readable refusal reason
	Reason string
}

// Error implements the error interface.
func (e *GateClosedError) Error() string {
	return fmt.Sprintf("gate closed: %s", e.Reason)
}

// Is reports whether the target matches ErrGateClosed.
func (e *GateClosedError) Is(target error) bool {
	return target == ErrGateClosed
}

// NewGateClosedError creates a GateClosedError with the given reason.
func NewGateClosedError(reason string) *GateClosedError {
	return &GateClosedError{Reason: reason}
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	// Field is the name of the field that failed validation
	Field string

	// Message describes why validation failed
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest wraps ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsSessionNotFound checks if the error is or wraps ErrSessionNotFound.
func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

// IsGateClosed checks if the error is or wraps ErrGateClosed.
func IsGateClosed(err error) bool {
	return errors.Is(err, ErrGateClosed)
}

// IsSubmissionFailed checks if the error is or wraps ErrSubmissionFailed.
func IsSubmissionFailed(err error) bool {
	return errors.Is(err, ErrSubmissionFailed)
}
