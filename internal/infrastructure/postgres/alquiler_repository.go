package postgres

import (
	"context"
	"fmt"

	"github.com/alquimueble/muebles-api/internal/domain/entity"
	"github.com/alquimueble/muebles-api/internal/domain/repository"
)

var _ repository.AlquilerRepository = (*AlquilerRepo)(nil)

// AlquilerRepo adaptador de solo lectura para alquileres.
type AlquilerRepo struct {
	q Querier
}

// NewAlquilerRepository construye el adaptador.
func NewAlquilerRepository(q Querier) *AlquilerRepo {
	return &AlquilerRepo{q: q}
}

// ListByUser lista los alquileres de un usuario.
func (r *AlquilerRepo) ListByUser(userID string) ([]*entity.Alquiler, error) {
	query := `
		SELECT id, user_id, mueble_codigo, fecha_inicio, fecha_fin, pago_mensual, created_at
		FROM alquileres WHERE user_id = $1 ORDER BY fecha_inicio DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list alquileres: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alquiler
	for rows.Next() {
		var a entity.Alquiler
		if err := rows.Scan(&a.ID, &a.UserID, &a.MuebleCodigo, &a.FechaInicio, &a.FechaFin, &a.PagoMensual, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alquiler: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
