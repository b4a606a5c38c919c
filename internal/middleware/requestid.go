package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID attaches a correlation id to every request. An inbound
// X-Request-Id header is honored; otherwise a new uuid is generated.
// The id is stored in context locals and echoed on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals("requestID", id)
		c.Set("X-Request-Id", id)

		return c.Next()
	}
}
