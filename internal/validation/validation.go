// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules defined in struct tags
// and extracts validation errors into a format the client can
// understand. Payloads that need lenient, hand-rolled binding (such as
// optional query integers) implement Bindable instead of relying on
// Echo's struct binding.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"mathsvc/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - define a request struct with validator tags, or
//   - implement Validate() with hand-written rules and return
//     CustomValidationErrors (or any error) on failure.
type Validatable interface {
	Validate() error
}

// Bindable is implemented by request payloads that bind themselves from
// the Echo context instead of going through c.Bind.
//
// This exists for payloads whose binding rules are looser than Echo's
// struct binding: the add route treats an unparseable query integer the
// same as an absent one, which struct binding cannot express.
type Bindable interface {
	Bind(c echo.Context) error
}

// CustomValidationError represents a single validation issue for a
// specific field, used for rules that cannot be expressed via tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. payload.Bind(c) when the payload implements Bindable, otherwise
//     c.Bind(payload) for standard struct binding.
//  2. payload.Validate() applies validation rules.
//  3. Failures come back as *errs.HTTPError (400).
//
// payload must be a pointer so binding can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if b, ok := payload.(Bindable); ok {
		if err := b.Bind(c); err != nil {
			return errs.NewBadRequestError(err.Error(), nil, nil)
		}
	} else if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("malformed request payload", nil, nil)
	}

	if err := payload.Validate(); err != nil {
		// The payload may return a client-facing error directly; pass it
		// through untouched so wire contracts stay exact.
		if httpErr, ok := err.(*errs.HTTPError); ok {
			return httpErr
		}

		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

// extractValidationError converts validator and custom errors into
// user-friendly field-level messages.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		if customErrors, ok := err.(CustomValidationErrors); ok {
			for _, cerr := range customErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: cerr.Field,
					Error: cerr.Message,
				})
			}
			return "Validation failed", fieldErrors
		}
		return err.Error(), nil
	}

	for _, verr := range validationErrors {
		field := strings.ToLower(verr.Field())
		var msg string

		switch verr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if verr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", verr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", verr.Param())
			}

		case "max":
			if verr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", verr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", verr.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", verr.Param())

		default:
			if verr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, verr.Tag(), verr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, verr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
