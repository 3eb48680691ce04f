package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/application/usecase"
	"github.com/alquimueble/muebles-api/internal/domain"
)

// MuebleHandler maneja las peticiones HTTP para Mueble.
// Lectura pública; escritura detrás del middleware de auth.
type MuebleHandler struct {
	uc *usecase.MuebleUseCase
}

// NewMuebleHandler construye el handler.
func NewMuebleHandler(uc *usecase.MuebleUseCase) *MuebleHandler {
	return &MuebleHandler{uc: uc}
}

// Create acepta un objeto JSON o un array de objetos (alta en lote).
// El lote entero se rechaza si cualquier elemento falla: no hay commit parcial.
func (h *MuebleHandler) Create(c *fiber.Ctx) error {
	items, err := parseMuebles(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(items)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "id_codigo ya existe"})
		}
		return errInterno(c, "create mueble", err)
	}
	if len(out) == 1 {
		return c.Status(fiber.StatusCreated).JSON(out[0])
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// parseMuebles admite las dos formas del cuerpo: objeto único o array.
func parseMuebles(body []byte) ([]dto.CreateMuebleRequest, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []dto.CreateMuebleRequest
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var item dto.CreateMuebleRequest
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, err
	}
	return []dto.CreateMuebleRequest{item}, nil
}

// List lista todos los muebles (público).
func (h *MuebleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errInterno(c, "list muebles", err)
	}
	return c.JSON(out)
}

// GetByCodigo obtiene un mueble por su código (público).
func (h *MuebleHandler) GetByCodigo(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	out, err := h.uc.GetByCodigo(codigo)
	if err != nil {
		return errInterno(c, "get mueble", err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mueble no encontrado"})
	}
	return c.JSON(out)
}

// Update actualización parcial sobre la lista blanca; id_codigo nunca cambia.
func (h *MuebleHandler) Update(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	var in dto.UpdateMuebleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(codigo, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return errInterno(c, "update mueble", err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mueble no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un mueble. 404 si no existe; 409 si tiene alquileres.
func (h *MuebleHandler) Delete(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if err := h.uc.Delete(codigo); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mueble no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el mueble tiene alquileres registrados"})
		}
		return errInterno(c, "delete mueble", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
