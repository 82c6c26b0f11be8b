package forexapi

import "fmt"

// FieldError is one per-field validation failure returned by the API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when the API rejects a submission with
// per-field errors (HTTP 400).
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "forexapi: validation failed"
	}
	return fmt.Sprintf("forexapi: validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

// APIError is returned for any other non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("forexapi: %d: %s", e.StatusCode, e.Message)
}
