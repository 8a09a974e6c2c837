package router

import (
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/handlers"
	"github.com/pet-connect/backend/internal/middleware"
	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps carries the external dependencies the routes need
type Deps struct {
	Postgres           *gorm.DB
	Mongo              *mongo.Client
	Redis              *redis.Client
	FirebaseAuthClient *auth.Client
	Logger             *zap.Logger
	ScanRateLimit      int
	ScanRateWindow     time.Duration
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Deps) error {
	if err := deps.Postgres.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Follow{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	); err != nil {
		return err
	}
	deps.Logger.Info("PostgreSQL auto-migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(deps.Postgres)
	petRepo := repositories.NewPostgresPetRepository(deps.Postgres)
	followRepo := repositories.NewPostgresFollowRepository(deps.Postgres)
	postRepo := repositories.NewPostgresPostRepository(deps.Postgres)
	likeRepo := repositories.NewPostgresLikeRepository(deps.Postgres)
	commentRepo := repositories.NewPostgresCommentRepository(deps.Postgres)
	deviceEventRepo := repositories.NewMongoDeviceEventRepository(deps.Mongo.Database("petconnect"))

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, deps.FirebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Public routes ---
	// Scan routes carry the QR capability and are rate limited per client.
	public := e.Group("/api/v1")
	scanGroup := public.Group("", middleware.RateLimitMiddleware(
		deps.Redis, deps.ScanRateLimit, deps.ScanRateWindow, deps.Logger))
	scanHandler := handlers.NewScanHandler(petRepo, deviceEventRepo)
	scanHandler.RegisterScanRoutes(scanGroup)

	// --- Protected routes (require a Firebase ID token) ---
	api := e.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(deps.FirebaseAuthClient))

	// User profile routes
	profileHandler := handlers.NewProfileHandler(userRepo, followRepo)
	profileHandler.RegisterProfileRoutes(api)

	// Pet routes
	petHandler := handlers.NewPetHandler(petRepo, userRepo, deviceEventRepo)
	petHandler.RegisterPetRoutes(api)

	// Follow routes
	followHandler := handlers.NewFollowHandler(followRepo, petRepo, userRepo)
	followHandler.RegisterFollowRoutes(api)

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, petRepo, userRepo)
	postHandler.RegisterPostRoutes(api)
	postHandler.RegisterPublicPostRoutes(public)

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, userRepo)
	likeHandler.RegisterLikeRoutes(api)
	likeHandler.RegisterPublicLikeRoutes(public)

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo)
	commentHandler.RegisterCommentRoutes(api)
	commentHandler.RegisterPublicCommentRoutes(public)

	// Feed routes
	feedHandler := handlers.NewFeedHandler(postRepo, followRepo, userRepo)
	feedHandler.RegisterFeedRoutes(api)

	deps.Logger.Info("all routes configured")
	return nil
}
