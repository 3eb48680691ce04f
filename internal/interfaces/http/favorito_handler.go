package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/application/usecase"
	"github.com/alquimueble/muebles-api/internal/domain"
)

// FavoritoHandler maneja favoritos. Todas las rutas son autenticadas y la
// identidad sale del token, nunca del cuerpo.
type FavoritoHandler struct {
	uc *usecase.FavoritoUseCase
}

// NewFavoritoHandler construye el handler.
func NewFavoritoHandler(uc *usecase.FavoritoUseCase) *FavoritoHandler {
	return &FavoritoHandler{uc: uc}
}

// Create guarda el mueble del path como favorito del usuario autenticado.
func (h *FavoritoHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad requerida"})
	}
	codigo := c.Params("codigo")
	out, err := h.uc.Create(userID, codigo)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mueble no encontrado"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el mueble ya está en favoritos"})
		}
		return errInterno(c, "create favorito", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los favoritos del usuario autenticado.
func (h *FavoritoHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad requerida"})
	}
	out, err := h.uc.List(userID)
	if err != nil {
		return errInterno(c, "list favoritos", err)
	}
	return c.JSON(out)
}

// Delete elimina un favorito por su ID.
func (h *FavoritoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "favorito no encontrado"})
		}
		return errInterno(c, "delete favorito", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
