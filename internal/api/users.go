package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alejandro2cabezas/davincipropiedades-be/internal/database"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

const msgUserNotFound = "Usuario no encontrado"

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.db.GetUsers(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "Failed to get users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to get user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	password, err := h.passwords.Hash(req.Password)
	if err != nil {
		h.internalError(c, err, "Failed to hash password")
		return
	}

	id, err := h.db.CreateUser(c.Request.Context(), &models.User{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Telefono: req.Telefono,
		Password: password,
		Rol:      req.Rol,
	})
	if errors.Is(err, database.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El email ya existe"})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "mensaje": "Usuario creado exitosamente"})
}

// UpdateUser overwrites the whole row from the admin panel
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	password, err := h.passwords.Hash(req.Password)
	if err != nil {
		h.internalError(c, err, "Failed to hash password")
		return
	}

	err = h.db.UpdateUser(c.Request.Context(), &models.User{
		ID:       id,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Telefono: req.Telefono,
		Password: password,
		Rol:      req.Rol,
	})
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
	case errors.Is(err, database.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "El email ya existe"})
	case err != nil:
		h.internalError(c, err, "Failed to update user")
	default:
		c.JSON(http.StatusOK, gin.H{"mensaje": "Usuario actualizado exitosamente"})
	}
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	err := h.db.DeleteUser(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Usuario eliminado exitosamente"})
}
