package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Address         string `json:"address"`
	IsActive        *bool  `json:"is_active"` // opcional, default true
	Nombre          string `json:"nombre"`
	Nacionalidad    string `json:"nacionalidad"`
	FechaNacimiento string `json:"fecha_nacimiento"`
}

// UpdateUserRequest actualización parcial sobre lista blanca de campos.
// Los campos en nil no se tocan; el ID nunca es modificable.
type UpdateUserRequest struct {
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	Nombre          *string `json:"nombre"`
	Address         *string `json:"address"`
	Nacionalidad    *string `json:"nacionalidad"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
}

// Empty indica si el payload no trae ningún campo actualizable.
func (r UpdateUserRequest) Empty() bool {
	return r.Email == nil && r.Password == nil && r.Nombre == nil &&
		r.Address == nil && r.Nacionalidad == nil && r.FechaNacimiento == nil
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	IsActive        bool      `json:"is_active"`
	Address         string    `json:"address"`
	Nombre          string    `json:"nombre,omitempty"`
	Nacionalidad    string    `json:"nacionalidad,omitempty"`
	FechaNacimiento string    `json:"fecha_nacimiento,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
