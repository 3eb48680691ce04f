package dto

import "time"

// CreateMuebleRequest entrada para publicar un mueble. Los campos numéricos
// requeridos son punteros para distinguir "ausente" de cero.
type CreateMuebleRequest struct {
	IDCodigo      string   `json:"id_codigo"`
	Nombre        string   `json:"nombre"`
	Disponible    *bool    `json:"disponible"` // opcional, default true
	Color         string   `json:"color"`
	Espacio       string   `json:"espacio"`
	Estilo        string   `json:"estilo"`
	Categoria     string   `json:"categoria"`
	PrecioMes     *int     `json:"precio_mes"`
	Ancho         *float64 `json:"ancho"`
	Alto          *float64 `json:"alto"`
	Fondo         *float64 `json:"fondo"`
	FechaEntrega  string   `json:"fecha_entrega"`
	FechaRecogida string   `json:"fecha_recogida"`
	Imagen        string   `json:"imagen"`
	Personalidad  string   `json:"personalidad"`
}

// UpdateMuebleRequest actualización parcial sobre lista blanca de campos.
// IDCodigo no aparece aquí a propósito: la clave primaria nunca es modificable.
type UpdateMuebleRequest struct {
	Nombre        *string  `json:"nombre"`
	Disponible    *bool    `json:"disponible"`
	Color         *string  `json:"color"`
	Espacio       *string  `json:"espacio"`
	Estilo        *string  `json:"estilo"`
	Categoria     *string  `json:"categoria"`
	PrecioMes     *int     `json:"precio_mes"`
	Ancho         *float64 `json:"ancho"`
	Alto          *float64 `json:"alto"`
	Fondo         *float64 `json:"fondo"`
	FechaEntrega  *string  `json:"fecha_entrega"`
	FechaRecogida *string  `json:"fecha_recogida"`
	Imagen        *string  `json:"imagen"`
	Personalidad  *string  `json:"personalidad"`
}

// Empty indica si el payload no trae ningún campo actualizable.
func (r UpdateMuebleRequest) Empty() bool {
	return r.Nombre == nil && r.Disponible == nil && r.Color == nil &&
		r.Espacio == nil && r.Estilo == nil && r.Categoria == nil &&
		r.PrecioMes == nil && r.Ancho == nil && r.Alto == nil && r.Fondo == nil &&
		r.FechaEntrega == nil && r.FechaRecogida == nil && r.Imagen == nil &&
		r.Personalidad == nil
}

// MuebleResponse salida de un mueble.
type MuebleResponse struct {
	IDCodigo      string    `json:"id_codigo"`
	Nombre        string    `json:"nombre"`
	Disponible    bool      `json:"disponible"`
	Color         string    `json:"color"`
	Espacio       string    `json:"espacio"`
	Estilo        string    `json:"estilo"`
	Categoria     string    `json:"categoria"`
	PrecioMes     int       `json:"precio_mes"`
	Ancho         float64   `json:"ancho"`
	Alto          float64   `json:"alto"`
	Fondo         float64   `json:"fondo"`
	FechaEntrega  string    `json:"fecha_entrega,omitempty"`
	FechaRecogida string    `json:"fecha_recogida,omitempty"`
	Imagen        string    `json:"imagen,omitempty"`
	Personalidad  string    `json:"personalidad,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MuebleListResponse listado de muebles.
type MuebleListResponse struct {
	Items []MuebleResponse `json:"items"`
	Total int              `json:"total"`
}
