package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/application/usecase"
)

// AlquilerHandler superficie de solo lectura sobre los alquileres del
// usuario autenticado.
type AlquilerHandler struct {
	uc *usecase.AlquilerUseCase
}

// NewAlquilerHandler construye el handler.
func NewAlquilerHandler(uc *usecase.AlquilerUseCase) *AlquilerHandler {
	return &AlquilerHandler{uc: uc}
}

// List lista los alquileres del usuario autenticado.
func (h *AlquilerHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad requerida"})
	}
	out, err := h.uc.ListByUser(userID)
	if err != nil {
		return errInterno(c, "list alquileres", err)
	}
	return c.JSON(out)
}
