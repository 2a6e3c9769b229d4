package models

const (
	FavoriteAdded   = "added"
	FavoriteRemoved = "removed"
)

type FavoriteRequest struct {
	UsuarioID   int64 `json:"usuario_id" binding:"required"`
	PropiedadID int64 `json:"propiedad_id" binding:"required"`
}
