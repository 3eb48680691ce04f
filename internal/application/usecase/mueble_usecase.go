package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/domain"
	"github.com/alquimueble/muebles-api/internal/domain/entity"
	"github.com/alquimueble/muebles-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un MuebleRepository atado a una transacción.
// Si fn devuelve error no se hace commit. Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.MuebleRepository) error) error
}

// MuebleUseCase casos de uso CRUD para muebles, incluida el alta en lote.
type MuebleUseCase struct {
	repo repository.MuebleRepository
	tx   TxRunner
}

// NewMuebleUseCase construye el caso de uso.
func NewMuebleUseCase(repo repository.MuebleRepository, tx TxRunner) *MuebleUseCase {
	return &MuebleUseCase{repo: repo, tx: tx}
}

// Create da de alta uno o varios muebles. El lote se valida entero antes de
// escribir y se inserta dentro de una única transacción: si un elemento falla
// no se persiste ninguno.
func (uc *MuebleUseCase) Create(items []dto.CreateMuebleRequest) ([]dto.MuebleResponse, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}
	muebles := make([]*entity.Mueble, 0, len(items))
	for i, in := range items {
		m, err := validarAlta(in)
		if err != nil {
			if len(items) > 1 {
				return nil, fmt.Errorf("elemento %d: %w", i+1, err)
			}
			return nil, err
		}
		muebles = append(muebles, m)
	}
	err := uc.tx.Run(context.Background(), func(repo repository.MuebleRepository) error {
		for _, m := range muebles {
			if err := repo.Create(m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MuebleResponse, 0, len(muebles))
	for _, m := range muebles {
		out = append(out, *toMuebleResponse(m))
	}
	return out, nil
}

// GetByCodigo obtiene un mueble por su código. Devuelve (nil, nil) si no existe.
func (uc *MuebleUseCase) GetByCodigo(codigo string) (*dto.MuebleResponse, error) {
	m, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMuebleResponse(m), nil
}

// List lista todos los muebles publicados.
func (uc *MuebleUseCase) List() (*dto.MuebleListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MuebleResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMuebleResponse(m))
	}
	return &dto.MuebleListResponse{Items: items, Total: len(items)}, nil
}

// Update actualización parcial sobre la lista blanca de campos mutables.
// IDCodigo nunca cambia aunque el payload lo traiga: no forma parte del DTO.
func (uc *MuebleUseCase) Update(codigo string, in dto.UpdateMuebleRequest) (*dto.MuebleResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}
	m, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		m.Nombre = *in.Nombre
	}
	if in.Disponible != nil {
		m.Disponible = *in.Disponible
	}
	if in.Color != nil {
		c, ok := entity.CanonColor(*in.Color)
		if !ok {
			return nil, valorNoPermitido("color", *in.Color)
		}
		m.Color = c
	}
	if in.Espacio != nil {
		c, ok := entity.CanonEspacio(*in.Espacio)
		if !ok {
			return nil, valorNoPermitido("espacio", *in.Espacio)
		}
		m.Espacio = c
	}
	if in.Estilo != nil {
		c, ok := entity.CanonEstilo(*in.Estilo)
		if !ok {
			return nil, valorNoPermitido("estilo", *in.Estilo)
		}
		m.Estilo = c
	}
	if in.Categoria != nil {
		c, ok := entity.CanonCategoria(*in.Categoria)
		if !ok {
			return nil, valorNoPermitido("categoria", *in.Categoria)
		}
		m.Categoria = c
	}
	if in.PrecioMes != nil {
		m.PrecioMes = *in.PrecioMes
	}
	if in.Ancho != nil {
		m.Ancho = *in.Ancho
	}
	if in.Alto != nil {
		m.Alto = *in.Alto
	}
	if in.Fondo != nil {
		m.Fondo = *in.Fondo
	}
	if in.FechaEntrega != nil {
		m.FechaEntrega = *in.FechaEntrega
	}
	if in.FechaRecogida != nil {
		m.FechaRecogida = *in.FechaRecogida
	}
	if in.Imagen != nil {
		m.Imagen = *in.Imagen
	}
	if in.Personalidad != nil {
		m.Personalidad = *in.Personalidad
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMuebleResponse(m), nil
}

// Delete elimina un mueble. Favoritos en cascada; con alquileres la DB
// bloquea y se devuelve ErrConflict.
func (uc *MuebleUseCase) Delete(codigo string) error {
	return uc.repo.Delete(codigo)
}

// validarAlta comprueba campos requeridos en orden fijo y canoniza los
// catálogos. El primer campo ausente o inválido da nombre al error.
func validarAlta(in dto.CreateMuebleRequest) (*entity.Mueble, error) {
	if in.IDCodigo == "" {
		return nil, campoRequerido("id_codigo")
	}
	if in.Nombre == "" {
		return nil, campoRequerido("nombre")
	}
	if in.Color == "" {
		return nil, campoRequerido("color")
	}
	if in.Espacio == "" {
		return nil, campoRequerido("espacio")
	}
	if in.Estilo == "" {
		return nil, campoRequerido("estilo")
	}
	if in.Categoria == "" {
		return nil, campoRequerido("categoria")
	}
	if in.PrecioMes == nil {
		return nil, campoRequerido("precio_mes")
	}
	if in.Ancho == nil {
		return nil, campoRequerido("ancho")
	}
	if in.Alto == nil {
		return nil, campoRequerido("alto")
	}
	if in.Fondo == nil {
		return nil, campoRequerido("fondo")
	}
	color, ok := entity.CanonColor(in.Color)
	if !ok {
		return nil, valorNoPermitido("color", in.Color)
	}
	espacio, ok := entity.CanonEspacio(in.Espacio)
	if !ok {
		return nil, valorNoPermitido("espacio", in.Espacio)
	}
	estilo, ok := entity.CanonEstilo(in.Estilo)
	if !ok {
		return nil, valorNoPermitido("estilo", in.Estilo)
	}
	categoria, ok := entity.CanonCategoria(in.Categoria)
	if !ok {
		return nil, valorNoPermitido("categoria", in.Categoria)
	}
	disponible := true
	if in.Disponible != nil {
		disponible = *in.Disponible
	}
	now := time.Now()
	return &entity.Mueble{
		IDCodigo:      in.IDCodigo,
		Nombre:        in.Nombre,
		Disponible:    disponible,
		Color:         color,
		Espacio:       espacio,
		Estilo:        estilo,
		Categoria:     categoria,
		PrecioMes:     *in.PrecioMes,
		Ancho:         *in.Ancho,
		Alto:          *in.Alto,
		Fondo:         *in.Fondo,
		FechaEntrega:  in.FechaEntrega,
		FechaRecogida: in.FechaRecogida,
		Imagen:        in.Imagen,
		Personalidad:  in.Personalidad,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func toMuebleResponse(m *entity.Mueble) *dto.MuebleResponse {
	if m == nil {
		return nil
	}
	return &dto.MuebleResponse{
		IDCodigo:      m.IDCodigo,
		Nombre:        m.Nombre,
		Disponible:    m.Disponible,
		Color:         m.Color,
		Espacio:       m.Espacio,
		Estilo:        m.Estilo,
		Categoria:     m.Categoria,
		PrecioMes:     m.PrecioMes,
		Ancho:         m.Ancho,
		Alto:          m.Alto,
		Fondo:         m.Fondo,
		FechaEntrega:  m.FechaEntrega,
		FechaRecogida: m.FechaRecogida,
		Imagen:        m.Imagen,
		Personalidad:  m.Personalidad,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// valorNoPermitido construye el error de validación para catálogos cerrados.
func valorNoPermitido(campo, valor string) error {
	return fmt.Errorf("%w: valor no permitido para %s: %q", domain.ErrInvalidInput, campo, valor)
}
