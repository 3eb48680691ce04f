package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/alquimueble/muebles-api/internal/application/auth"
	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/domain"
)

// AuthHandler maneja login y verificación de token.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login verifica credenciales y devuelve un Bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return errInterno(c, "login", err)
	}
	return c.JSON(out)
}

// VerifyToken confirma que el token de la petición sigue siendo válido.
// La distinción expirado/malformado la hace el middleware; llegar aquí
// significa que el token pasó.
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"valid":   true,
		"user_id": GetUserID(c),
	})
}

// Protected sonda autenticada de ejemplo.
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "acceso concedido",
		"user_id": GetUserID(c),
		"email":   GetEmail(c),
	})
}
