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

var _ repository.FavoritoRepository = (*FavoritoRepo)(nil)

// FavoritoRepo implementación del puerto FavoritoRepository sobre PostgreSQL.
type FavoritoRepo struct {
	q Querier
}

// NewFavoritoRepository construye el adaptador de persistencia para favoritos.
func NewFavoritoRepository(q Querier) *FavoritoRepo {
	return &FavoritoRepo{q: q}
}

// Create persiste un favorito. El constraint único sobre (user_id, mueble_codigo)
// es la señal autoritativa de duplicado -> ErrDuplicate.
func (r *FavoritoRepo) Create(f *entity.Favorito) error {
	query := `
		INSERT INTO favoritos (id, user_id, mueble_codigo, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, f.ID, f.UserID, f.MuebleCodigo, f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			// El user o el mueble desaparecieron entre el pre-check y el insert.
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert favorito: %w", err)
	}
	return nil
}

// GetByID obtiene un favorito por ID. Devuelve (nil, nil) si no existe.
func (r *FavoritoRepo) GetByID(id string) (*entity.Favorito, error) {
	query := `SELECT id, user_id, mueble_codigo, created_at FROM favoritos WHERE id = $1`
	var f entity.Favorito
	err := r.q.QueryRow(context.Background(), query, id).Scan(&f.ID, &f.UserID, &f.MuebleCodigo, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get favorito: %w", err)
	}
	return &f, nil
}

// ListByUser lista los favoritos de un usuario.
func (r *FavoritoRepo) ListByUser(userID string) ([]*entity.Favorito, error) {
	query := `
		SELECT id, user_id, mueble_codigo, created_at
		FROM favoritos WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favoritos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Favorito
	for rows.Next() {
		var f entity.Favorito
		if err := rows.Scan(&f.ID, &f.UserID, &f.MuebleCodigo, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorito: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina un favorito por ID. Devuelve ErrNotFound si no existía.
func (r *FavoritoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM favoritos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete favorito: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
