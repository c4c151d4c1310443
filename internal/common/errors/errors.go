// Package errors provides the standardized error taxonomy for the scoping engine.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

// Code represents a standardized engine error code.
type Code string

const (
	// CodeValidationFailed covers malformed payloads, missing required fields,
	// negative counts, non-unique names and non-contiguous tier bands.
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// CodeNotFound covers unknown submission ids and configuration documents
	// that have never been initialized.
	CodeNotFound Code = "NOT_FOUND"

	// CodeInconsistent covers invariant violations, e.g. a tier lookup that
	// misses every band. Never expected in normal operation.
	CodeInconsistent Code = "INCONSISTENT"

	// CodeUnavailable covers storage or renderer backends being down.
	CodeUnavailable Code = "UNAVAILABLE"
)

// Error is a structured engine error.
type Error struct {
	Code      Code      `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
	cause     error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewValidationFailed creates a non-retryable validation error.
func NewValidationFailed(message string) *Error {
	return &Error{
		Code:      CodeValidationFailed,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedf creates a non-retryable validation error with a
// formatted message.
func NewValidationFailedf(format string, args ...interface{}) *Error {
	return NewValidationFailed(fmt.Sprintf(format, args...))
}

// NewNotFound creates a non-retryable not-found error for a resource.
func NewNotFound(resource, id string) *Error {
	return &Error{
		Code:      CodeNotFound,
		Message:   fmt.Sprintf("%s not found", resource),
		Details:   id,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInconsistent creates a non-retryable invariant-violation error.
func NewInconsistent(message string, cause error) *Error {
	e := &Error{
		Code:      CodeInconsistent,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// NewUnavailable creates a retryable backend-unavailable error.
func NewUnavailable(backend string, cause error) *Error {
	e := &Error{
		Code:      CodeUnavailable,
		Message:   fmt.Sprintf("%s unavailable", backend),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// As extracts an *Error from err. A nil return means err carries no engine
// error and should be treated as Inconsistent by callers at the HTTP edge.
func As(err error) *Error {
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return nil
}

// IsCode reports whether err carries the given engine code.
func IsCode(err error, code Code) bool {
	e := As(err)
	return e != nil && e.Code == code
}

// HTTPStatus maps an engine code to its wire status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WarningUnallocatedHours is the kind attached to a successful result when an
// in-scope category has positive hours but zero summed allocation over the
// selected roles.
const WarningUnallocatedHours = "UnallocatedHours"

// Warning is a non-fatal finding attached to an otherwise successful result.
type Warning struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}
