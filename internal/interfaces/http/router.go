package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alquimueble/muebles-api/internal/application/auth"
	"github.com/alquimueble/muebles-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	MuebleUC   *usecase.MuebleUseCase
	FavoritoUC *usecase.FavoritoUseCase
	AlquilerUC *usecase.AlquilerUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Alta de usuario, login y lectura de
// muebles son públicos; el resto requiere Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	protegido := AuthMiddleware(deps.JWTSecret)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)
	app.Get("/verify-token", protegido, authHandler.VerifyToken)
	app.Get("/protected", protegido, authHandler.Protected)

	// Users (alta pública, resto protegido)
	userHandler := NewUserHandler(deps.UserUC)
	app.Post("/users", userHandler.Create)
	app.Get("/users", protegido, userHandler.List)
	app.Get("/users/:id", protegido, userHandler.GetByID)
	app.Put("/users/:id", protegido, userHandler.Update)
	app.Delete("/users/:id", protegido, userHandler.Delete)

	// Muebles (lectura pública, escritura protegida)
	muebleHandler := NewMuebleHandler(deps.MuebleUC)
	app.Post("/mueble", protegido, muebleHandler.Create)
	app.Get("/mueble", muebleHandler.List)
	app.Get("/mueble/:codigo", muebleHandler.GetByCodigo)
	app.Put("/mueble/:codigo", protegido, muebleHandler.Update)
	app.Delete("/mueble/:codigo", protegido, muebleHandler.Delete)

	// Favoritos (protegido, identidad del token)
	favoritoHandler := NewFavoritoHandler(deps.FavoritoUC)
	app.Get("/user/favourites", protegido, favoritoHandler.List)
	app.Post("/favourite/mueble/:codigo", protegido, favoritoHandler.Create)
	app.Delete("/favoritos/:id", protegido, favoritoHandler.Delete)

	// Alquileres (protegido, solo lectura)
	alquilerHandler := NewAlquilerHandler(deps.AlquilerUC)
	app.Get("/user/alquileres", protegido, alquilerHandler.List)
}
