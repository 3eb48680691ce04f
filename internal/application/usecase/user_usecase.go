package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/domain"
	"github.com/alquimueble/muebles-api/internal/domain/entity"
	"github.com/alquimueble/muebles-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario: valida campos requeridos, hashea password con bcrypt
// y persiste. La violación de unicidad de la DB es la señal autoritativa de
// duplicado (no hay pre-check que pueda competir con otra petición).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" {
		return nil, campoRequerido("email")
	}
	if in.Password == "" {
		return nil, campoRequerido("password")
	}
	if in.Address == "" {
		return nil, campoRequerido("address")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	user := &entity.User{
		ID:              uuid.New().String(),
		Email:           in.Email,
		PasswordHash:    string(hash),
		IsActive:        isActive,
		Address:         in.Address,
		Nombre:          in.Nombre,
		Nacionalidad:    in.Nacionalidad,
		FechaNacimiento: in.FechaNacimiento,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Update actualización parcial sobre la lista blanca
// {email, password, nombre, address, nacionalidad, fecha_nacimiento}.
// El ID nunca es modificable; password se vuelve a hashear si viene en el payload.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Nombre != nil {
		user.Nombre = *in.Nombre
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.Nacionalidad != nil {
		user.Nacionalidad = *in.Nacionalidad
	}
	if in.FechaNacimiento != nil {
		user.FechaNacimiento = *in.FechaNacimiento
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. Los favoritos caen en cascada (schema); si el
// usuario tiene alquileres la DB bloquea el borrado y se devuelve ErrConflict.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		IsActive:        u.IsActive,
		Address:         u.Address,
		Nombre:          u.Nombre,
		Nacionalidad:    u.Nacionalidad,
		FechaNacimiento: u.FechaNacimiento,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// campoRequerido construye el error de validación nombrando el campo ausente.
func campoRequerido(campo string) error {
	return fmt.Errorf("%w: campo requerido: %s", domain.ErrInvalidInput, campo)
}
