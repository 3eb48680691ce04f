package repository

import "github.com/alquimueble/muebles-api/internal/domain/entity"

// FavoritoRepository define el puerto de persistencia para Favorito (DIP).
type FavoritoRepository interface {
	Create(favorito *entity.Favorito) error
	GetByID(id string) (*entity.Favorito, error)
	ListByUser(userID string) ([]*entity.Favorito, error)
	Delete(id string) error
}
