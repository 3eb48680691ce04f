package entity

import "time"

// Favorito vincula un usuario con un mueble guardado.
// El par (UserID, MuebleCodigo) es único: un usuario no puede guardar dos
// veces el mismo mueble.
type Favorito struct {
	ID           string
	UserID       string
	MuebleCodigo string
	CreatedAt    time.Time
}
