package middleware

import (
	"matricula/models"

	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the {tool, status, message, dados} envelope every
// operation answers with. dados is omitted from the body when nil.
func JsonResponse(c *fiber.Ctx, statusCode int, tool, status, message string, dados interface{}) error {
	return c.Status(statusCode).JSON(models.Envelope{
		Tool:    tool,
		Status:  status,
		Message: message,
		Dados:   dados,
	})
}
