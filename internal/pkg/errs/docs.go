// Package errs provides standardized error types for the order tracker.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines exactly two error kinds:
//   - InvalidArgumentError: caller-supplied data fails a precondition. The
//     Reason field carries the exact validation message for the earliest
//     failing check, and the error is always produced before any side effect.
//   - ConflictError: an attempted creation of an object whose identifier
//     already exists.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (ErrInvalidArgument, ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// "Not found" is deliberately not an error kind: lookups that find nothing
// report absence through their signatures, not through this package.
package errs
