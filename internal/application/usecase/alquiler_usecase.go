package usecase

import (
	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/domain/entity"
	"github.com/alquimueble/muebles-api/internal/domain/repository"
)

// AlquilerUseCase superficie de solo lectura sobre alquileres.
type AlquilerUseCase struct {
	repo repository.AlquilerRepository
}

// NewAlquilerUseCase construye el caso de uso.
func NewAlquilerUseCase(repo repository.AlquilerRepository) *AlquilerUseCase {
	return &AlquilerUseCase{repo: repo}
}

// ListByUser lista los alquileres del usuario autenticado.
func (uc *AlquilerUseCase) ListByUser(userID string) (*dto.AlquilerListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlquilerResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAlquilerResponse(a))
	}
	return &dto.AlquilerListResponse{Items: items, Total: len(items)}, nil
}

func toAlquilerResponse(a *entity.Alquiler) *dto.AlquilerResponse {
	if a == nil {
		return nil
	}
	return &dto.AlquilerResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		MuebleCodigo: a.MuebleCodigo,
		FechaInicio:  a.FechaInicio,
		FechaFin:     a.FechaFin,
		PagoMensual:  a.PagoMensual,
	}
}
