package entity

import "time"

// User representa un usuario del marketplace.
// Email y Address son únicos a nivel global (constraint en DB).
type User struct {
	ID              string
	Email           string
	PasswordHash    string // hash bcrypt, nunca en texto plano después de persistir
	IsActive        bool
	Address         string
	Nombre          string // opcional
	Nacionalidad    string // opcional
	FechaNacimiento string // opcional, fecha ISO (YYYY-MM-DD)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
