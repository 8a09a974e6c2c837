package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/router"
	"github.com/pet-connect/backend/pkg/config"
	"github.com/pet-connect/backend/pkg/firebase"
	"github.com/pet-connect/backend/validators"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize data store connections
	db, err := config.InitDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB()

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		logger.Fatal("failed to initialize Firebase", zap.Error(err))
	}
	logger.Info("Firebase app and auth client initialized")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	config.SetupMiddleware(e, logger)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, router.Deps{
		Postgres:           db.Postgres,
		Mongo:              db.Mongo,
		Redis:              db.Redis,
		FirebaseAuthClient: firebaseApp.AuthClient,
		Logger:             logger,
		ScanRateLimit:      cfg.ScanRateLimit,
		ScanRateWindow:     cfg.ScanRateWindow,
	}); err != nil {
		logger.Fatal("failed to set up routes", zap.Error(err))
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
