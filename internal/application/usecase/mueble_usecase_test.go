package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/application/usecase"
	"github.com/alquimueble/muebles-api/internal/domain"
	"github.com/alquimueble/muebles-api/internal/domain/entity"
	"github.com/alquimueble/muebles-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMuebleRepo struct {
	m map[string]*entity.Mueble
}

func newFakeMuebleRepo() *fakeMuebleRepo {
	return &fakeMuebleRepo{m: map[string]*entity.Mueble{}}
}

func (f *fakeMuebleRepo) Create(x *entity.Mueble) error {
	if _, ok := f.m[x.IDCodigo]; ok {
		return domain.ErrDuplicate
	}
	cp := *x
	f.m[x.IDCodigo] = &cp
	return nil
}

func (f *fakeMuebleRepo) GetByCodigo(codigo string) (*entity.Mueble, error) {
	x, ok := f.m[codigo]
	if !ok {
		return nil, nil
	}
	cp := *x
	return &cp, nil
}

func (f *fakeMuebleRepo) List() ([]*entity.Mueble, error) {
	var list []*entity.Mueble
	for _, x := range f.m {
		cp := *x
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeMuebleRepo) Update(x *entity.Mueble) error {
	cp := *x
	f.m[x.IDCodigo] = &cp
	return nil
}

func (f *fakeMuebleRepo) Delete(codigo string) error {
	if _, ok := f.m[codigo]; !ok {
		return domain.ErrNotFound
	}
	delete(f.m, codigo)
	return nil
}

// fakeTxRunner emula la semántica todo-o-nada: si fn falla se restaura el
// estado previo del repo.
type fakeTxRunner struct {
	repo *fakeMuebleRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repo repository.MuebleRepository) error) error {
	backup := make(map[string]*entity.Mueble, len(f.repo.m))
	for k, v := range f.repo.m {
		backup[k] = v
	}
	if err := fn(f.repo); err != nil {
		f.repo.m = backup
		return err
	}
	return nil
}

func newMuebleUC() (*usecase.MuebleUseCase, *fakeMuebleRepo) {
	repo := newFakeMuebleRepo()
	return usecase.NewMuebleUseCase(repo, &fakeTxRunner{repo: repo}), repo
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }

func altaValida(codigo string) dto.CreateMuebleRequest {
	return dto.CreateMuebleRequest{
		IDCodigo:  codigo,
		Nombre:    "Sofá Lund",
		Color:     "gris",
		Espacio:   "salón/comedor",
		Estilo:    "nórdico",
		Categoria: "sofá",
		PrecioMes: intPtr(45),
		Ancho:     floatPtr(210.5),
		Alto:      floatPtr(84),
		Fondo:     floatPtr(95),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestMuebleCreate_AltaSimple(t *testing.T) {
	uc, repo := newMuebleUC()

	out, err := uc.Create([]dto.CreateMuebleRequest{altaValida("SOF-001")})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "SOF-001", out[0].IDCodigo)
	assert.True(t, out[0].Disponible, "disponible debe ser true por defecto")
	assert.Equal(t, 45, out[0].PrecioMes)
	assert.Contains(t, repo.m, "SOF-001")
}

func TestMuebleCreate_CampoRequeridoAusente_NombraElCampo(t *testing.T) {
	uc, repo := newMuebleUC()

	in := altaValida("SOF-002")
	in.Ancho = nil
	_, err := uc.Create([]dto.CreateMuebleRequest{in})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "ancho", "el error debe nombrar el campo ausente")
	assert.Empty(t, repo.m, "no debe persistirse nada")
}

func TestMuebleCreate_EnumInvalido(t *testing.T) {
	uc, _ := newMuebleUC()

	in := altaValida("SOF-003")
	in.Espacio = "cocina"
	_, err := uc.Create([]dto.CreateMuebleRequest{in})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "espacio")
}

func TestMuebleCreate_EnumNormalizado(t *testing.T) {
	uc, _ := newMuebleUC()

	in := altaValida("SOF-004")
	in.Estilo = "CLÁSICO" // mayúsculas: debe validar y guardarse en forma canónica
	out, err := uc.Create([]dto.CreateMuebleRequest{in})

	require.NoError(t, err)
	assert.Equal(t, "clásico", out[0].Estilo)
}

func TestMuebleCreate_LoteConElementoInvalido_RechazaTodo(t *testing.T) {
	uc, repo := newMuebleUC()

	ok1 := altaValida("SOF-010")
	mal := altaValida("SOF-011")
	mal.PrecioMes = nil
	_, err := uc.Create([]dto.CreateMuebleRequest{ok1, mal})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "precio_mes", "debe nombrar el campo ausente")
	assert.Contains(t, err.Error(), "elemento 2", "debe señalar qué elemento falló")
	assert.Empty(t, repo.m, "sin commit parcial: el elemento válido tampoco se persiste")
}

func TestMuebleCreate_LoteConDuplicado_Rollback(t *testing.T) {
	uc, repo := newMuebleUC()

	_, err := uc.Create([]dto.CreateMuebleRequest{altaValida("SOF-020")})
	require.NoError(t, err)

	// El lote trae uno nuevo y uno que choca con el existente: rollback total.
	_, err = uc.Create([]dto.CreateMuebleRequest{altaValida("SOF-021"), altaValida("SOF-020")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NotContains(t, repo.m, "SOF-021", "el elemento válido del lote no debe quedar persistido")
}

func TestMuebleCreate_RoundTripCampos(t *testing.T) {
	uc, _ := newMuebleUC()

	in := altaValida("SOF-030")
	in.Disponible = boolPtr(false)
	in.FechaEntrega = "2026-09-15"
	in.FechaRecogida = "2027-09-15"
	in.Imagen = "https://cdn.example.com/sof-030.jpg"
	in.Personalidad = "acogedor y un poco retro"

	out, err := uc.Create([]dto.CreateMuebleRequest{in})
	require.NoError(t, err)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, in.IDCodigo, got.IDCodigo)
	assert.Equal(t, in.Nombre, got.Nombre)
	assert.False(t, got.Disponible)
	assert.Equal(t, in.Color, got.Color)
	assert.Equal(t, in.Espacio, got.Espacio)
	assert.Equal(t, in.Estilo, got.Estilo)
	assert.Equal(t, in.Categoria, got.Categoria)
	assert.Equal(t, *in.PrecioMes, got.PrecioMes)
	assert.Equal(t, *in.Ancho, got.Ancho)
	assert.Equal(t, *in.Alto, got.Alto)
	assert.Equal(t, *in.Fondo, got.Fondo)
	assert.Equal(t, in.FechaEntrega, got.FechaEntrega)
	assert.Equal(t, in.FechaRecogida, got.FechaRecogida)
	assert.Equal(t, in.Imagen, got.Imagen)
	assert.Equal(t, in.Personalidad, got.Personalidad)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestMuebleUpdate_SoloCamposEnListaBlanca(t *testing.T) {
	uc, repo := newMuebleUC()

	_, err := uc.Create([]dto.CreateMuebleRequest{altaValida("SOF-040")})
	require.NoError(t, err)

	out, err := uc.Update("SOF-040", dto.UpdateMuebleRequest{Nombre: strPtr("Sofá Malmö")})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Sofá Malmö", out.Nombre)
	assert.Equal(t, "SOF-040", out.IDCodigo, "la clave primaria nunca cambia")
	assert.Equal(t, "gris", out.Color, "los campos no incluidos no se tocan")
	assert.Contains(t, repo.m, "SOF-040")
}

func TestMuebleUpdate_CuerpoVacio(t *testing.T) {
	uc, _ := newMuebleUC()

	_, err := uc.Create([]dto.CreateMuebleRequest{altaValida("SOF-041")})
	require.NoError(t, err)

	_, err = uc.Update("SOF-041", dto.UpdateMuebleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMuebleUpdate_NoExiste(t *testing.T) {
	uc, _ := newMuebleUC()

	out, err := uc.Update("NO-EXISTE", dto.UpdateMuebleRequest{Nombre: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, out, "mueble ausente se señala con nil (el handler lo convierte en 404)")
}

func TestMuebleUpdate_EnumInvalido(t *testing.T) {
	uc, _ := newMuebleUC()

	_, err := uc.Create([]dto.CreateMuebleRequest{altaValida("SOF-042")})
	require.NoError(t, err)

	_, err = uc.Update("SOF-042", dto.UpdateMuebleRequest{Categoria: strPtr("nevera")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "categoria")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestMuebleDelete_NoExiste(t *testing.T) {
	uc, _ := newMuebleUC()
	err := uc.Delete("NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMuebleDelete_Existente(t *testing.T) {
	uc, repo := newMuebleUC()

	_, err := uc.Create([]dto.CreateMuebleRequest{altaValida("SOF-050")})
	require.NoError(t, err)

	require.NoError(t, uc.Delete("SOF-050"))
	assert.NotContains(t, repo.m, "SOF-050")
}
