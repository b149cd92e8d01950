package presenters

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse logs the underlying error server-side and returns only the
// public message to the client.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	if err != nil {
		log.Printf("Error %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(statusCode).JSON(Response{
		Status:  false,
		Message: message,
	})
}
