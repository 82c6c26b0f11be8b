package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError reports a single failed rule, keyed by the json field name so the
// front end can highlight the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries the full ordered list of field failures for one request.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	return "validation failed"
}

// fieldMessages holds the user-facing message per form field. Each field has
// one message regardless of which rule tripped, matching what the form UI
// displays under the input.
var fieldMessages = map[string]string{
	"name":     "Name must be between 2 and 50 characters",
	"email":    "Please provide a valid email",
	"phone":    "Please provide a valid phone number",
	"service":  "Service is required",
	"message":  "Message must be between 10 and 1000 characters",
	"amount":   "Amount must be a number",
	"currency": "Currency is required",
}

// Format converts a validator error into an *Error with per-field messages.
// All field failures are collected; nothing short-circuits.
func Format(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return &Error{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}

	// Fallback for fields without a canned message
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// FromBindError maps a JSON binding failure to a field error when the
// offending field is identifiable (e.g. a string where a number is expected).
// Returns nil when the failure is not attributable to a single field.
func FromBindError(err error) *Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		// Nested paths come through as "a.b"; the leaf is the field name
		parts := strings.Split(typeErr.Field, ".")
		field := parts[len(parts)-1]

		msg, ok := fieldMessages[field]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", field)
		}
		return &Error{Fields: []FieldError{{Field: field, Message: msg}}}
	}
	return nil
}
