package dto

// AlquilerResponse salida de un alquiler (solo lectura).
type AlquilerResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	MuebleCodigo string `json:"mueble_codigo"`
	FechaInicio  string `json:"fecha_inicio"`
	FechaFin     string `json:"fecha_fin"`
	PagoMensual  int    `json:"pago_mensual"`
}

// AlquilerListResponse alquileres del usuario autenticado.
type AlquilerListResponse struct {
	Items []AlquilerResponse `json:"items"`
	Total int                `json:"total"`
}
