package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ResetAll empties every table. Any authenticated caller may run it.
func (h *Handler) ResetAll(c *gin.Context) {
	if err := h.db.ResetAll(c.Request.Context()); err != nil {
		h.internalError(c, err, "Failed to reset database")
		return
	}

	entry := h.logger.WithField("request_id", c.GetString(requestIDKey))
	if claims, err := ClaimsFrom(c); err == nil {
		entry = entry.WithFields(logrus.Fields{"user_id": claims.UserID, "email": claims.Email})
	}
	entry.Warn("Database reset")
	c.JSON(http.StatusOK, gin.H{"mensaje": "Toda la base de datos ha sido reseteada exitosamente"})
}

func (h *Handler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.WithError(err).Error("Database ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
