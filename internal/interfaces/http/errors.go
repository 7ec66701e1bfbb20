package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/despensa-api/internal/application/dto"
)

// internalError responde 500 con el mensaje tal cual (el cliente lo muestra
// sin parsearlo). El fallo es por petición: el proceso sigue sirviendo.
func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}
