package dto

import "time"

// FavoritoResponse salida de un favorito.
type FavoritoResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	MuebleCodigo string    `json:"mueble_codigo"`
	CreatedAt    time.Time `json:"created_at"`
}

// FavoritoListResponse favoritos del usuario autenticado.
type FavoritoListResponse struct {
	Items []FavoritoResponse `json:"items"`
	Total int                `json:"total"`
}
