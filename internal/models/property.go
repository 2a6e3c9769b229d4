package models

import "time"

// Property is a listing joined with its type, location and first image
type Property struct {
	ID               int64     `json:"id"`
	Titulo           string    `json:"titulo"`
	Descripcion      string    `json:"descripcion"`
	Precio           float64   `json:"precio"`
	Superficie       float64   `json:"superficie"`
	Habitaciones     int       `json:"habitaciones"`
	Banos            int       `json:"banos"`
	TipoID           int64     `json:"tipo_id"`
	UbicacionID      int64     `json:"ubicacion_id"`
	UsuarioID        *int64    `json:"usuario_id"`
	Destacada        bool      `json:"destacada"`
	FechaPublicacion time.Time `json:"fecha_publicacion"`
	Tipo             string    `json:"tipo"`
	Ciudad           string    `json:"ciudad"`
	Provincia        string    `json:"provincia"`
	URLImagen        *string   `json:"url_imagen"`

	// Direccion is only filled by the single-property read
	Direccion *string `json:"direccion,omitempty"`
	// FechaAgregado is only filled by the favorites listing
	FechaAgregado *time.Time `json:"fecha_agregado,omitempty"`
}

// PropertyInput carries the fields written by property create and update.
// Tipo and Ubicacion are names resolved to ids by the store.
type PropertyInput struct {
	Titulo       string  `json:"titulo" binding:"required"`
	Descripcion  string  `json:"descripcion"`
	Precio       float64 `json:"precio"`
	Superficie   float64 `json:"superficie"`
	Habitaciones int     `json:"habitaciones"`
	Banos        int     `json:"banos"`
	Tipo         string  `json:"tipo" binding:"required"`
	Ubicacion    string  `json:"ubicacion" binding:"required"`
	URLImagen    string  `json:"url_imagen"`
	UsuarioID    int64   `json:"usuario_id"`
	Destacada    *bool   `json:"destacada"`
}
