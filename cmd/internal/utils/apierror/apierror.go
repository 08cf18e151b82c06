package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services hand back to routes: an error that
// knows its HTTP status and marshals to the client-facing JSON body.
type ErrorResponse interface {
	error
	Code() int
}

type apiError struct {
	StatusCode int      `json:"-"`
	Message    string   `json:"error"`
	Details    []string `json:"details,omitempty"`
}

func (e *apiError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, "; "))
}

func (e *apiError) Code() int {
	return e.StatusCode
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	NotFoundError       = NewSimple(http.StatusNotFound, "Not found")
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed request body")

	// ForbiddenError is intentionally opaque. It carries no hint about
	// whether the credential was missing, stale or wrong.
	ForbiddenError = NewSimple(http.StatusForbidden, "Forbidden")
)

func NewSimple(code int, message string) ErrorResponse {
	return &apiError{StatusCode: code, Message: message}
}

func NewMissingParamError(name string) ErrorResponse {
	return &apiError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("Missing required parameter %q", name),
	}
}

func NewInvalidParamTypeError(name, expected string) ErrorResponse {
	return &apiError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("Parameter %q must be of type %s", name, expected),
	}
}

// NewInvalidTransitionError reports a status move the state machine does
// not allow. 409 because the request conflicts with the entry's current
// state, not with its syntax.
func NewInvalidTransitionError(from, to string) ErrorResponse {
	return &apiError{
		StatusCode: http.StatusConflict,
		Message:    fmt.Sprintf("Cannot move check-in from %q to %q", from, to),
	}
}

// FromValidationError converts validator.v10 failures into a 400 with
// one detail line per offending field.
func FromValidationError(err error) ErrorResponse {
	resp := &apiError{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return resp
	}

	for _, fe := range verrs {
		resp.Details = append(resp.Details, describeFieldError(fe))
	}
	return resp
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s", field, fe.Param())
	case "nodupes":
		return fmt.Sprintf("%s must not contain duplicates", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
