package api

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alejandro2cabezas/davincipropiedades-be/internal/auth"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

// Store is the persistence the handlers need. *database.Database implements it.
type Store interface {
	Ping(ctx context.Context) error

	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id int64) error

	GetProperties(ctx context.Context) ([]models.Property, error)
	GetFeaturedProperties(ctx context.Context) ([]models.Property, error)
	GetPropertiesByUser(ctx context.Context, userID int64) ([]models.Property, error)
	GetPropertyByID(ctx context.Context, id int64) (*models.Property, error)
	CreateProperty(ctx context.Context, in models.PropertyInput) (int64, error)
	UpdateProperty(ctx context.Context, id int64, in models.PropertyInput) error
	DeleteProperty(ctx context.Context, id int64) error

	ToggleFavorite(ctx context.Context, userID, propertyID int64) (bool, error)
	IsFavorite(ctx context.Context, userID, propertyID int64) (bool, error)
	GetFavorites(ctx context.Context, userID int64) ([]models.Property, error)

	ResetAll(ctx context.Context) error
}

type Handler struct {
	db        Store
	tokens    *auth.TokenIssuer
	passwords auth.PasswordHasher
	logger    *logrus.Logger
}

func NewHandler(db Store, tokens *auth.TokenIssuer, passwords auth.PasswordHasher, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:        db,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

const (
	msgInternalError = "Error interno del servidor"
	msgInvalidBody   = "Datos inválidos"
	msgInvalidID     = "ID inválido"
)

// internalError logs err and answers with the generic 500 body
func (h *Handler) internalError(c *gin.Context, err error, logMsg string) {
	h.logger.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error(logMsg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	h.logger.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Warn("Failed to parse request body")
	c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
}

// idParam parses a positive numeric path parameter. On failure it writes the
// 400 response and returns false.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidID})
		return 0, false
	}
	return id, true
}
