package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMissingParameterError(t *testing.T) {
	err := NewMissingParameterError()

	require.Equal(t, http.StatusBadRequest, err.Status)
	require.Equal(t, "MISSING_PARAMETER", err.Code)
	require.Equal(t, "Missing parameter 'a' or 'b'", err.Message)
}

func TestHTTPErrorWireShape(t *testing.T) {
	// The body must be exactly {"error": ...}: code and status are
	// response metadata, not payload.
	data, err := json.Marshal(NewMissingParameterError())
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"Missing parameter 'a' or 'b'"}`, string(data))
}

func TestHTTPErrorWireShapeWithDetails(t *testing.T) {
	httpErr := NewBadRequestError("Validation failed", nil, []FieldError{
		{Field: "a", Error: "is required"},
	})

	data, err := json.Marshal(httpErr)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"error":"Validation failed","details":[{"field":"a","error":"is required"}]}`,
		string(data))
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "OPERAND_INVALID"
	httpErr := NewBadRequestError("bad operand", &code, nil)

	require.Equal(t, "OPERAND_INVALID", httpErr.Code)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestWithMessageCopies(t *testing.T) {
	base := NewNotFoundError("Route not found")
	changed := base.WithMessage("No such operation")

	require.Equal(t, "Route not found", base.Message)
	require.Equal(t, "No such operation", changed.Message)
	require.Equal(t, base.Code, changed.Code)
	require.Equal(t, base.Status, changed.Status)
}

func TestIsMatchesAnyHTTPError(t *testing.T) {
	err := error(NewInternalServerError())

	require.True(t, errors.Is(err, &HTTPError{}))
	require.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	require.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	require.Equal(t, "METHOD_NOT_ALLOWED", MakeUpperCaseWithUnderscores("Method Not Allowed"))
	require.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}
