package repository

import "github.com/alquimueble/muebles-api/internal/domain/entity"

// AlquilerRepository define el puerto de lectura para Alquiler.
// Solo lectura: los alquileres se serializan pero no tienen ciclo de vida
// propio en esta versión.
type AlquilerRepository interface {
	ListByUser(userID string) ([]*entity.Alquiler, error)
}
