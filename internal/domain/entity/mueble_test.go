package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alquimueble/muebles-api/internal/domain/entity"
)

func TestCanonEspacio_ValorCanonico(t *testing.T) {
	c, ok := entity.CanonEspacio("salón/comedor")
	assert.True(t, ok)
	assert.Equal(t, "salón/comedor", c)
}

func TestCanonEspacio_TildeDescompuesta(t *testing.T) {
	// "salón" con la tilde como combining mark (NFD) debe resolver al canónico NFC.
	c, ok := entity.CanonEspacio("salón/comedor")
	assert.True(t, ok)
	assert.Equal(t, "salón/comedor", c)
}

func TestCanonEstilo_Mayusculas(t *testing.T) {
	c, ok := entity.CanonEstilo("NÓRDICO")
	assert.True(t, ok)
	assert.Equal(t, "nórdico", c)
}

func TestCanonEstilo_EspaciosAlrededor(t *testing.T) {
	c, ok := entity.CanonEstilo("  rústico ")
	assert.True(t, ok)
	assert.Equal(t, "rústico", c)
}

func TestCanonColor_ValorDesconocido(t *testing.T) {
	_, ok := entity.CanonColor("fucsia")
	assert.False(t, ok)
}

func TestCanonCategoria_ValorDesconocido(t *testing.T) {
	_, ok := entity.CanonCategoria("lámpara")
	assert.False(t, ok)
}

func TestCatalogos_VacioNoValida(t *testing.T) {
	_, ok := entity.CanonEspacio("")
	assert.False(t, ok)
	_, ok = entity.CanonEstilo("")
	assert.False(t, ok)
	_, ok = entity.CanonColor("")
	assert.False(t, ok)
	_, ok = entity.CanonCategoria("")
	assert.False(t, ok)
}
