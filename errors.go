package jsonutils

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	// ErrInvalidNumber is returned when a number cannot be represented in JSON
	// text: NaN, infinities, nil numbers and values that are not numeric.
	ErrInvalidNumber = errors.New("invalid JSON number")

	// ErrMalformedCustomRendering is returned when a JSONStringer fails or
	// produces something other than text.
	ErrMalformedCustomRendering = errors.New("malformed custom rendering")

	// ErrUnsupportedType is returned when a value cannot be mapped to a type class
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidFunction is returned when text is not a function literal
	ErrInvalidFunction = errors.New("invalid function literal")

	// ErrInvalidConfig is returned by configuration validation and loading
	ErrInvalidConfig = errors.New("invalid configuration")
)

// JSONError represents a classification or rendering error with essential context
type JSONError struct {
	Op      string `json:"op"`      // Operation that failed
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *JSONError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("JSON %s failed", e.Op)
	}
	return fmt.Sprintf("JSON %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *JSONError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *JSONError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*JSONError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

// newOperationError creates a JSONError for operation failures
func newOperationError(operation, message string, err error) error {
	return &JSONError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// newInvalidNumberError creates a JSONError for numbers JSON cannot carry
func newInvalidNumberError(operation, message string) error {
	return &JSONError{
		Op:      operation,
		Message: message,
		Err:     ErrInvalidNumber,
	}
}

// newCustomRenderingError wraps the failure of a JSONStringer. The cause,
// when present, stays reachable through errors.Is and errors.As.
func newCustomRenderingError(message string, cause error) error {
	err := ErrMalformedCustomRendering
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrMalformedCustomRendering, cause)
	}
	return &JSONError{
		Op:      "render",
		Message: message,
		Err:     err,
	}
}

// IsInvalidNumber reports whether err was caused by a non-representable number
func IsInvalidNumber(err error) bool {
	return errors.Is(err, ErrInvalidNumber)
}

// IsMalformedCustomRendering reports whether err came from a failing JSONStringer
func IsMalformedCustomRendering(err error) bool {
	return errors.Is(err, ErrMalformedCustomRendering)
}
