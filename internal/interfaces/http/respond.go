package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/alquimueble/muebles-api/internal/application/dto"
)

// errInterno registra el error real y devuelve un 500 opaco: los detalles de
// persistencia no salen nunca hacia el cliente.
func errInterno(c *fiber.Ctx, op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
