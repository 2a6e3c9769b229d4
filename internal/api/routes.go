package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, h *Handler, allowedOrigins []string) {
	router.Use(
		RequestID(),
		RequestLogger(h.logger),
		Metrics(),
		cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
			ExposeHeaders:    []string{"Content-Length", requestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	router.POST("/login", h.Login)
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := router.Group("/", AuthMiddleware(h.tokens))
	{
		protected.POST("/register", h.Register)

		protected.GET("/usuarios", h.GetUsers)
		protected.GET("/usuarios/:id", h.GetUser)
		protected.POST("/usuarios", h.CreateUser)
		protected.PUT("/usuarios/:id", h.UpdateUser)
		protected.DELETE("/usuarios/:id", h.DeleteUser)

		protected.GET("/propiedades", h.GetProperties)
		protected.GET("/propiedades/destacadas", h.GetFeaturedProperties)
		protected.GET("/propiedades/usuario/:usuario_id", h.GetUserProperties)
		protected.GET("/propiedades/:id", h.GetProperty)
		protected.POST("/propiedades", h.CreateProperty)
		protected.PUT("/propiedades/:id", h.UpdateProperty)
		protected.DELETE("/propiedades/:id", h.DeleteProperty)

		protected.POST("/favoritos", h.ToggleFavorite)
		protected.GET("/favoritos/:usuario_id", h.GetFavorites)
		protected.GET("/favoritos/:usuario_id/:propiedad_id", h.CheckFavorite)

		protected.DELETE("/resetAll", h.ResetAll)
	}
}
