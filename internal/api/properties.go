package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alejandro2cabezas/davincipropiedades-be/internal/database"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

const (
	msgPropertyNotFound    = "Propiedad no encontrada"
	msgInvalidPropertyType = "Tipo de propiedad no válido"
)

func (h *Handler) GetProperties(c *gin.Context) {
	properties, err := h.db.GetProperties(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "Failed to get properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetFeaturedProperties(c *gin.Context) {
	properties, err := h.db.GetFeaturedProperties(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "Failed to get featured properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetUserProperties(c *gin.Context) {
	userID, ok := idParam(c, "usuario_id")
	if !ok {
		return
	}

	properties, err := h.db.GetPropertiesByUser(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, err, "Failed to get user properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	property, err := h.db.GetPropertyByID(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgPropertyNotFound})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to get property")
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var req models.PropertyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	id, err := h.db.CreateProperty(c.Request.Context(), req)
	if errors.Is(err, database.ErrInvalidPropertyType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidPropertyType})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to create property")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "mensaje": "Propiedad creada exitosamente"})
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req models.PropertyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	err := h.db.UpdateProperty(c.Request.Context(), id, req)
	switch {
	case errors.Is(err, database.ErrInvalidPropertyType):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidPropertyType})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgPropertyNotFound})
	case err != nil:
		h.internalError(c, err, "Failed to update property")
	default:
		c.JSON(http.StatusOK, gin.H{"mensaje": "Propiedad actualizada exitosamente"})
	}
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	err := h.db.DeleteProperty(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgPropertyNotFound})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to delete property")
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Propiedad eliminada exitosamente"})
}
