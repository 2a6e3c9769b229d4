package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alejandro2cabezas/davincipropiedades-be/internal/auth"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/database"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

// Login checks the credentials and returns the user with a signed token
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	user, err := h.authenticate(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		authAttempts.WithLabelValues("login", "rejected").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña incorrectos"})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to log in")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email, user.Rol)
	if err != nil {
		h.internalError(c, err, "Failed to issue token")
		return
	}

	authAttempts.WithLabelValues("login", "accepted").Inc()
	c.JSON(http.StatusOK, gin.H{"usuario": user, "token": token})
}

func (h *Handler) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := h.db.GetUserByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !h.passwords.Matches(user.Password, password) {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}

// Register creates a user with the default role
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	password, err := h.passwords.Hash(req.Password)
	if err != nil {
		h.internalError(c, err, "Failed to hash password")
		return
	}

	ctx := c.Request.Context()
	id, err := h.db.CreateUser(ctx, &models.User{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Telefono: req.Telefono,
		Password: password,
		Rol:      models.RoleCliente,
	})
	if errors.Is(err, database.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Este email ya está registrado"})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to register user")
		return
	}

	user, err := h.db.GetUserByID(ctx, id)
	if err != nil {
		h.internalError(c, err, "Failed to load registered user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"usuario": user})
}
