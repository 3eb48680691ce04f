package entity

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Mueble representa un mueble publicado para alquiler.
// La clave primaria es IDCodigo, un código de negocio asignado por el cliente
// (no un autoincremental).
type Mueble struct {
	IDCodigo      string
	Nombre        string
	Disponible    bool
	Color         string // catálogo cerrado
	Espacio       string // catálogo cerrado
	Estilo        string // catálogo cerrado
	Categoria     string // catálogo cerrado
	PrecioMes     int    // precio mensual en euros
	Ancho         float64
	Alto          float64
	Fondo         float64
	FechaEntrega  string // opcional, fecha ISO
	FechaRecogida string // opcional, fecha ISO
	Imagen        string // opcional, URL o referencia
	Personalidad  string // texto libre
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Catálogos cerrados. Los valores canónicos llevan tildes en forma NFC.
var (
	Espacios   = []string{"salón/comedor", "dormitorio", "recibidor", "zona de trabajo", "exterior", "otras"}
	Estilos    = []string{"industrial", "clásico", "minimalista", "nórdico", "rústico", "vintage/mid-century", "otras"}
	Colores    = []string{"blanco", "negro", "gris", "beige", "marrón", "azul", "verde", "rojo", "amarillo", "madera"}
	Categorias = []string{"sofá", "mesa", "silla", "cama", "armario", "estantería", "escritorio", "otros"}
)

var (
	espacioIdx   = buildIndex(Espacios)
	estiloIdx    = buildIndex(Estilos)
	colorIdx     = buildIndex(Colores)
	categoriaIdx = buildIndex(Categorias)
)

func buildIndex(valores []string) map[string]string {
	idx := make(map[string]string, len(valores))
	for _, v := range valores {
		idx[normalizar(v)] = v
	}
	return idx
}

// normalizar pasa el valor a NFC y minúsculas para que "salón" escrito con
// tilde descompuesta (o en mayúsculas) siga encontrando el valor canónico.
func normalizar(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// CanonEspacio devuelve la forma canónica del valor, o false si no pertenece al catálogo.
func CanonEspacio(v string) (string, bool) {
	c, ok := espacioIdx[normalizar(v)]
	return c, ok
}

// CanonEstilo devuelve la forma canónica del valor, o false si no pertenece al catálogo.
func CanonEstilo(v string) (string, bool) {
	c, ok := estiloIdx[normalizar(v)]
	return c, ok
}

// CanonColor devuelve la forma canónica del valor, o false si no pertenece al catálogo.
func CanonColor(v string) (string, bool) {
	c, ok := colorIdx[normalizar(v)]
	return c, ok
}

// CanonCategoria devuelve la forma canónica del valor, o false si no pertenece al catálogo.
func CanonCategoria(v string) (string, bool) {
	c, ok := categoriaIdx[normalizar(v)]
	return c, ok
}
