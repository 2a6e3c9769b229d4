package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

func (h *Handler) GetFavorites(c *gin.Context) {
	userID, ok := idParam(c, "usuario_id")
	if !ok {
		return
	}

	favorites, err := h.db.GetFavorites(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, err, "Failed to get favorites")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// ToggleFavorite adds the pair when absent and removes it when present
func (h *Handler) ToggleFavorite(c *gin.Context) {
	var req models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	added, err := h.db.ToggleFavorite(c.Request.Context(), req.UsuarioID, req.PropiedadID)
	if err != nil {
		h.internalError(c, err, "Failed to toggle favorite")
		return
	}

	if added {
		c.JSON(http.StatusOK, gin.H{"mensaje": "Favorito agregado", "action": models.FavoriteAdded})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Favorito eliminado", "action": models.FavoriteRemoved})
}

func (h *Handler) CheckFavorite(c *gin.Context) {
	userID, ok := idParam(c, "usuario_id")
	if !ok {
		return
	}
	propertyID, ok := idParam(c, "propiedad_id")
	if !ok {
		return
	}

	exists, err := h.db.IsFavorite(c.Request.Context(), userID, propertyID)
	if err != nil {
		h.internalError(c, err, "Failed to check favorite")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorito": exists})
}
