package repository

import "github.com/alquimueble/muebles-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando no existe la fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
