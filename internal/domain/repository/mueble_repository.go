package repository

import "github.com/alquimueble/muebles-api/internal/domain/entity"

// MuebleRepository define el puerto de persistencia para Mueble (DIP).
type MuebleRepository interface {
	Create(mueble *entity.Mueble) error
	GetByCodigo(codigo string) (*entity.Mueble, error)
	List() ([]*entity.Mueble, error)
	Update(mueble *entity.Mueble) error
	Delete(codigo string) error
}
