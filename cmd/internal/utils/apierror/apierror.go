package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what every service operation returns on failure.
// Implementations are JSON-serializable and carry their HTTP status.
type ErrorResponse interface {
	Code() int
}

type simpleError struct {
	status  int
	Message string `json:"error"`
}

func (s *simpleError) Code() int {
	return s.status
}

func NewSimple(status int, message string) ErrorResponse {
	return &simpleError{status: status, Message: message}
}

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Query parameter '%s' is required", name))
}

// The four error kinds the API surfaces: validation (400),
// conflict (409), not-found (404) and storage (500).
var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	NotFoundError       = NewSimple(http.StatusNotFound, "Appointment not found")
	SlotTakenError      = NewSimple(http.StatusConflict, "Time slot already taken")
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed request body")
)

type validationError struct {
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (v *validationError) Code() int {
	return http.StatusBadRequest
}

// FromValidationError turns a validator.Struct failure into a 400
// response listing the offending fields and their failed rules.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = ruleMessage(fe)
	}
	return &validationError{Message: "Validation failed", Fields: fields}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "slotdate":
		return "must be a 'YYYY-MM-DD HH:MM' date"
	case "serviceid":
		return "must be a known service"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed '%s' validation", fe.Tag())
	}
}
