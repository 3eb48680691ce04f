package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/domain"
	"github.com/alquimueble/muebles-api/internal/domain/entity"
	"github.com/alquimueble/muebles-api/internal/domain/repository"
)

// FavoritoUseCase casos de uso para favoritos. El userID viene siempre de la
// identidad autenticada, nunca del cuerpo de la petición.
type FavoritoUseCase struct {
	repo       repository.FavoritoRepository
	userRepo   repository.UserRepository
	muebleRepo repository.MuebleRepository
}

// NewFavoritoUseCase construye el caso de uso.
func NewFavoritoUseCase(repo repository.FavoritoRepository, userRepo repository.UserRepository, muebleRepo repository.MuebleRepository) *FavoritoUseCase {
	return &FavoritoUseCase{repo: repo, userRepo: userRepo, muebleRepo: muebleRepo}
}

// Create guarda un mueble como favorito del usuario. La unicidad del par
// (user, mueble) la garantiza el constraint de la DB: el pre-check de
// existencia es solo para responder 404 con mensaje claro, el 409 sale de la
// violación de unicidad.
func (uc *FavoritoUseCase) Create(userID, muebleCodigo string) (*dto.FavoritoResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	mueble, err := uc.muebleRepo.GetByCodigo(muebleCodigo)
	if err != nil {
		return nil, err
	}
	if mueble == nil {
		return nil, domain.ErrNotFound
	}
	fav := &entity.Favorito{
		ID:           uuid.New().String(),
		UserID:       userID,
		MuebleCodigo: muebleCodigo,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(fav); err != nil {
		return nil, err
	}
	return toFavoritoResponse(fav), nil
}

// List lista los favoritos del usuario autenticado (nunca los de todos).
func (uc *FavoritoUseCase) List(userID string) (*dto.FavoritoListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FavoritoResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFavoritoResponse(f))
	}
	return &dto.FavoritoListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un favorito por su ID.
func (uc *FavoritoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toFavoritoResponse(f *entity.Favorito) *dto.FavoritoResponse {
	if f == nil {
		return nil
	}
	return &dto.FavoritoResponse{
		ID:           f.ID,
		UserID:       f.UserID,
		MuebleCodigo: f.MuebleCodigo,
		CreatedAt:    f.CreatedAt,
	}
}
