package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "a", "error": "must be an integer" }
type FieldError struct {
	// Field is the parameter or field name the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type surfaced to API clients.
//
// It implements the error interface and is serialized directly by the
// global error handler. Only Message (as "error") and any field details
// appear on the wire; Code and Status drive logging and the response
// status line but are not part of the body.
type HTTPError struct {
	// Code is a machine-friendly error code (e.g. "MISSING_PARAMETER").
	Code string `json:"-"`

	// Message is the human-friendly message; it is the "error" field of
	// the response body.
	Message string `json:"error"`

	// Status is the HTTP status code to respond with.
	Status int `json:"-"`

	// Details holds field-level validation errors, omitted when empty so
	// the single-error wire shape stays minimal.
	Details []FieldError `json:"details,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so that
// errors.Is(err, &HTTPError{}) matches any client-facing error.
// It does not compare Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
// The original is never mutated; constructors hand out shared templates.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Details: e.Details,
	}
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to derive stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
