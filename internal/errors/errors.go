// Package apperrors holds the structured error types of bindtime and the
// exit codes they map to. Every type wraps its cause so errors.Is and
// errors.As see through it.
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess       = 0   // Run completed.
	ExitErrorGeneric  = 1   // Unclassified failure.
	ExitErrorTimeout  = 2   // The configured timeout elapsed.
	ExitErrorMismatch = 3   // Strategies or a lookup table disagreed.
	ExitErrorConfig   = 4   // Invalid flags, environment or config file.
	ExitErrorCanceled = 130 // Interrupted (SIGINT).
)

// ConfigError reports invalid user configuration: a flag, an environment
// variable or a config file entry that cannot be used.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError returns a ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: The new ConfigError.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// MismatchError reports a strategy whose value is outside the tolerance
// around the runtime-recursive baseline, or a table slot that differs from
// direct evaluation (Strategy is then "table[i]").
type MismatchError struct {
	Function string
	Strategy string
	Got      float64
	Want     float64
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("%s: %s = %g, want %g", e.Function, e.Strategy, e.Got, e.Want)
}

// ServerError is a failure of the HTTP server, such as a listener that
// cannot bind or a shutdown that does not complete.
type ServerError struct {
	Message string
	Cause   error
}

func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError returns a ServerError. cause may be nil.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// ValidationError reports an invalid request parameter or config field.
type ValidationError struct {
	// Field is the offending parameter; empty when the error is not tied to one.
	Field   string
	Message string
	// Value is the rejected input, if available.
	Value any
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError returns a ValidationError.
func NewValidationError(field, message string, value any) error {
	return ValidationError{Field: field, Message: message, Value: value}
}

// WrapError adds context to err with %w so the chain stays inspectable.
// It returns nil when err is nil.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err comes from a canceled or expired
// context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
