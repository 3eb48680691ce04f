package entity

import "time"

// Alquiler registra un periodo de alquiler entre un usuario y un mueble.
// En esta versión la superficie es solo de lectura: las filas se serializan
// pero no hay operaciones de ciclo de vida sobre ellas.
type Alquiler struct {
	ID           string
	UserID       string
	MuebleCodigo string
	FechaInicio  string // fecha ISO
	FechaFin     string // fecha ISO
	PagoMensual  int
	CreatedAt    time.Time
}
