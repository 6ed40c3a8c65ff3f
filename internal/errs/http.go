package errs

import (
	"net/http"
)

// MissingParameterMessage is the exact message returned when either add
// operand is absent. Clients match on this string, so it never changes.
const MissingParameterMessage = "Missing parameter 'a' or 'b'"

// NewMissingParameterError creates the 400 error returned by the add
// route when operand a or b is absent (or, by documented policy, not
// parseable as an integer).
func NewMissingParameterError() *HTTPError {
	return &HTTPError{
		Code:    "MISSING_PARAMETER",
		Message: MissingParameterMessage,
		Status:  http.StatusBadRequest,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Optional extras:
//   - code: custom code string (nil defaults to "BAD_REQUEST")
//   - details: field-level validation errors
func NewBadRequestError(message string, code *string, details []FieldError) *HTTPError {
	// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Details: details,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
// Echo raises this when a path exists but the verb does not.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)),
		Message: http.StatusText(http.StatusMethodNotAllowed),
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the underlying error:
// clients get a stable body while the real error stays in the logs.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
