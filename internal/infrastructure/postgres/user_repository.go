package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/alquimueble/muebles-api/internal/domain"
	"github.com/alquimueble/muebles-api/internal/domain/entity"
	"github.com/alquimueble/muebles-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Email y address son únicos: la violación
// 23505 se mapea al error de dominio según el constraint que salte.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, is_active, address, nombre, nacionalidad, fecha_nacimiento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.IsActive, user.Address,
		user.Nombre, user.Nacionalidad, user.FechaNacimiento, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueToDomain(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, is_active, address, nombre, nacionalidad, fecha_nacimiento, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByEmail obtiene un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, is_active, address, nombre, nacionalidad, fecha_nacimiento, created_at, updated_at
		FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

// List lista todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `
		SELECT id, email, password_hash, is_active, address, nombre, nacionalidad, fecha_nacimiento, created_at, updated_at
		FROM users ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive, &u.Address,
			&u.Nombre, &u.Nacionalidad, &u.FechaNacimiento, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario. El ID nunca cambia.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, is_active = $4, address = $5,
			nombre = $6, nacionalidad = $7, fecha_nacimiento = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.IsActive, user.Address,
		user.Nombre, user.Nacionalidad, user.FechaNacimiento, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueToDomain(err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID. Devuelve ErrNotFound si no existía y
// ErrConflict si la DB bloquea el borrado por alquileres existentes
// (ON DELETE RESTRICT); los favoritos caen en cascada.
func (r *UserRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive, &u.Address,
		&u.Nombre, &u.Nacionalidad, &u.FechaNacimiento, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// uniqueToDomain distingue qué unicidad saltó mirando el nombre del constraint.
func uniqueToDomain(err error) error {
	name := constraintName(err)
	switch {
	case strings.Contains(name, "email"):
		return domain.ErrEmailAlreadyExists
	case strings.Contains(name, "address"):
		return domain.ErrAddressTaken
	default:
		return domain.ErrDuplicate
	}
}
