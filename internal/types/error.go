package types

import "fmt"

// APIError is a request-terminal error with a known HTTP status.
// Anything else that escapes a service is treated as a store error (500).
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NotFound builds a 404 error for a missing entity.
func NotFound(message string) *APIError {
	return &APIError{Code: 404, Message: message, Type: "notFound"}
}

// Validation builds a 400 error for malformed or conflicting input.
func Validation(message string) *APIError {
	return &APIError{Code: 400, Message: message, Type: "validation"}
}
