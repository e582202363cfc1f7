package types

import "fmt"

// APIError is a failure that maps directly onto the response envelope:
// Label becomes the short "error" field, Message the human text.
type APIError struct {
	Status  int    `json:"status"`
	Label   string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s - %s", e.Status, e.Label, e.Message)
}

// NotFound builds a 404 lookup failure.
func NotFound(label, format string, args ...interface{}) *APIError {
	return &APIError{Status: 404, Label: label, Message: fmt.Sprintf(format, args...)}
}

// InvalidInput builds a 400 validation failure.
func InvalidInput(message string) *APIError {
	return &APIError{Status: 400, Label: "Invalid input", Message: message}
}

// Conflict builds a 409 duplicate-identifier failure.
func Conflict(format string, args ...interface{}) *APIError {
	return &APIError{Status: 409, Label: "Conflict", Message: fmt.Sprintf(format, args...)}
}
