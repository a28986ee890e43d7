package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is the sentinel error for caller-supplied data that
	// fails a precondition. Use errors.Is to classify errors of this kind.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict is the sentinel error for operations that would violate a
	// uniqueness constraint, such as creating an order with an ID that is
	// already taken.
	ErrConflict = errors.New("conflict")
)

// InvalidArgumentError reports that a caller-supplied value failed validation.
// Reason carries the exact, human-readable validation message for the first
// failing check; it is always set before any side effect has occurred.
type InvalidArgumentError struct {
	Reason string
	Cause  error
}

// NewInvalidArgumentError creates an InvalidArgumentError with the given reason.
func NewInvalidArgumentError(reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: reason}
}

// NewInvalidArgumentErrorWithCause creates an InvalidArgumentError with the
// given reason and an underlying cause.
func NewInvalidArgumentErrorWithCause(reason string, cause error) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: reason, Cause: cause}
}

// Error returns the formatted error message.
func (e *InvalidArgumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid argument: %s (cause: %s)", sanitize(e.Reason), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("invalid argument: %s", sanitize(e.Reason))
}

// Unwrap returns the sentinel ErrInvalidArgument so callers can classify the
// error with errors.Is.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// ConflictError reports an attempt to create an object whose identifier is
// already in use. The existing object is never mutated by the failed attempt.
type ConflictError struct {
	Reason string
	Cause  error
}

// NewConflictError creates a ConflictError with the given reason.
func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// NewConflictErrorWithCause creates a ConflictError with the given reason and
// an underlying cause.
func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Cause: cause}
}

// Error returns the formatted error message.
func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conflict: %s (cause: %s)", sanitize(e.Reason), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("conflict: %s", sanitize(e.Reason))
}

// Unwrap returns the sentinel ErrConflict so callers can classify the error
// with errors.Is.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
