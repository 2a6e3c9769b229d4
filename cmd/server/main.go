package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alejandro2cabezas/davincipropiedades-be/config"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/api"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/auth"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/database"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("Unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	db, err := database.NewDatabase(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	testConnection(db, logger)

	if cfg.Database.AutoMigrate {
		logger.Info("Running database migrations...")
		if err := db.RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Failed to run database migrations")
		}
	}

	passwords, err := auth.NewPasswordHasher(cfg.Auth.PasswordHashing)
	if err != nil {
		logger.WithError(err).Fatal("Failed to configure password hashing")
	}

	if err := bootstrapAdmin(cfg, db, passwords, logger); err != nil {
		logger.WithError(err).Fatal("Failed to create bootstrap admin")
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn.Duration())
	handler := api.NewHandler(db, tokens, passwords, logger)

	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, handler, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}
}

// testConnection logs whether the store answers. The server still starts
// when it does not; /health reports the state afterwards.
func testConnection(db *database.Database, logger *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		logger.WithError(err).Error("Error connecting to database")
		return
	}
	logger.Info("Connected to database")
}

func bootstrapAdmin(cfg *config.Config, db *database.Database, passwords auth.PasswordHasher, logger *logrus.Logger) error {
	if cfg.Auth.BootstrapAdminEmail == "" || cfg.Auth.BootstrapAdminPassword == "" {
		return nil
	}

	hashed, err := passwords.Hash(cfg.Auth.BootstrapAdminPassword)
	if err != nil {
		return err
	}

	created, err := db.EnsureUser(context.Background(), &models.User{
		Nombre:   "Admin",
		Email:    cfg.Auth.BootstrapAdminEmail,
		Password: hashed,
		Rol:      models.RoleAdmin,
	})
	if err != nil {
		return err
	}
	if created {
		logger.WithField("email", cfg.Auth.BootstrapAdminEmail).Info("Created bootstrap admin user")
	}
	return nil
}
