package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alquimueble/muebles-api/internal/domain"
	"github.com/alquimueble/muebles-api/internal/domain/entity"
	"github.com/alquimueble/muebles-api/internal/domain/repository"
)

var _ repository.MuebleRepository = (*MuebleRepo)(nil)

// MuebleRepo implementación del puerto MuebleRepository sobre PostgreSQL (usable con pool o tx).
type MuebleRepo struct {
	q Querier
}

// NewMuebleRepository construye el adaptador de persistencia para muebles. Pasar pool o tx (Querier).
func NewMuebleRepository(q Querier) *MuebleRepo {
	return &MuebleRepo{q: q}
}

// Create persiste un nuevo mueble. Código duplicado -> ErrDuplicate.
func (r *MuebleRepo) Create(m *entity.Mueble) error {
	query := `
		INSERT INTO muebles (id_codigo, nombre, disponible, color, espacio, estilo, categoria, precio_mes, ancho, alto, fondo, fecha_entrega, fecha_recogida, imagen, personalidad, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		m.IDCodigo, m.Nombre, m.Disponible, m.Color, m.Espacio, m.Estilo, m.Categoria,
		m.PrecioMes, m.Ancho, m.Alto, m.Fondo, m.FechaEntrega, m.FechaRecogida,
		m.Imagen, m.Personalidad, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert mueble: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un mueble por su código. Devuelve (nil, nil) si no existe.
func (r *MuebleRepo) GetByCodigo(codigo string) (*entity.Mueble, error) {
	query := `
		SELECT id_codigo, nombre, disponible, color, espacio, estilo, categoria, precio_mes, ancho, alto, fondo, fecha_entrega, fecha_recogida, imagen, personalidad, created_at, updated_at
		FROM muebles WHERE id_codigo = $1`
	var m entity.Mueble
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&m.IDCodigo, &m.Nombre, &m.Disponible, &m.Color, &m.Espacio, &m.Estilo, &m.Categoria,
		&m.PrecioMes, &m.Ancho, &m.Alto, &m.Fondo, &m.FechaEntrega, &m.FechaRecogida,
		&m.Imagen, &m.Personalidad, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mueble: %w", err)
	}
	return &m, nil
}

// List lista todos los muebles.
func (r *MuebleRepo) List() ([]*entity.Mueble, error) {
	query := `
		SELECT id_codigo, nombre, disponible, color, espacio, estilo, categoria, precio_mes, ancho, alto, fondo, fecha_entrega, fecha_recogida, imagen, personalidad, created_at, updated_at
		FROM muebles ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list muebles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mueble
	for rows.Next() {
		var m entity.Mueble
		if err := rows.Scan(&m.IDCodigo, &m.Nombre, &m.Disponible, &m.Color, &m.Espacio, &m.Estilo, &m.Categoria,
			&m.PrecioMes, &m.Ancho, &m.Alto, &m.Fondo, &m.FechaEntrega, &m.FechaRecogida,
			&m.Imagen, &m.Personalidad, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mueble: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un mueble existente. El código nunca cambia.
func (r *MuebleRepo) Update(m *entity.Mueble) error {
	query := `
		UPDATE muebles SET nombre = $2, disponible = $3, color = $4, espacio = $5, estilo = $6, categoria = $7,
			precio_mes = $8, ancho = $9, alto = $10, fondo = $11, fecha_entrega = $12, fecha_recogida = $13,
			imagen = $14, personalidad = $15, updated_at = $16
		WHERE id_codigo = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.IDCodigo, m.Nombre, m.Disponible, m.Color, m.Espacio, m.Estilo, m.Categoria,
		m.PrecioMes, m.Ancho, m.Alto, m.Fondo, m.FechaEntrega, m.FechaRecogida,
		m.Imagen, m.Personalidad, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update mueble: %w", err)
	}
	return nil
}

// Delete elimina un mueble por código. Devuelve ErrNotFound si no existía y
// ErrConflict si hay alquileres que referencian el mueble (ON DELETE RESTRICT).
func (r *MuebleRepo) Delete(codigo string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM muebles WHERE id_codigo = $1`, codigo)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete mueble: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
