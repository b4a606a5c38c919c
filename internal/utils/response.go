package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends a standard error response envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// MessageResponse sends a success response carrying only a message,
// used by delete and schema operations.
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   message,
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// MessageResponseStruct defines the schema for message-only success responses
type MessageResponseStruct struct {
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}
