package response

import (
	"quicksend/internal/result"

	"github.com/gofiber/fiber/v2"
)

// Write sends the envelope with its status as the HTTP status code.
func Write[T any](c *fiber.Ctx, res result.Result[T]) error {
	return c.Status(res.Status()).JSON(res)
}

// BadRequest sends an invalid-request envelope.
func BadRequest(c *fiber.Ctx, message string) error {
	return Write(c, result.Invalid[any](message))
}

// NotFound sends a not-found envelope.
func NotFound(c *fiber.Ctx, message string) error {
	return Write(c, result.NotFound[any](message))
}

// TooManyRequests sends a rate-limit envelope. The result kinds have no
// rate-limit member, so the body is built directly.
func TooManyRequests(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"status":  fiber.StatusTooManyRequests,
		"message": message,
	})
}
