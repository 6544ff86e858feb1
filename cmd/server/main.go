// @title MaltaCheck Backend API
// @version 1.0
// @description Malta suitability assessment API - scores questionnaire submissions and returns a weighted interpretation
// @termsOfService http://swagger.io/terms/

// @contact.name Brixon Tools Support
// @contact.email support@brixon.tools

// @host localhost:8080
// @BasePath /api/v1

// Package main is the entry point for the MaltaCheck Backend API server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/brixon-tools/maltacheck_backend/internal/auth"
	"github.com/brixon-tools/maltacheck_backend/internal/catalog"
	"github.com/brixon-tools/maltacheck_backend/internal/config"
	"github.com/brixon-tools/maltacheck_backend/internal/handlers"
	"github.com/brixon-tools/maltacheck_backend/internal/middleware"
	"github.com/brixon-tools/maltacheck_backend/internal/ratelimit"
	"github.com/brixon-tools/maltacheck_backend/internal/services"

	// Swagger docs
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/brixon-tools/maltacheck_backend/docs"
)

// Build-time variables (set via ldflags)
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// The question catalog is compiled in; refuse to start on an
	// inconsistent one
	if err := catalog.Validate(); err != nil {
		log.Fatalf("Invalid question catalog: %v", err)
	}

	// Initialize the rate-limit store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			log.Printf("Error closing Redis connection: %v", closeErr)
		}
	}()

	store := ratelimit.NewRedisStore(redisClient)

	// The limiter fails open on store errors, so an unreachable Redis is a
	// warning at startup, not a fatal
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if pingErr := store.Ping(pingCtx); pingErr != nil {
		log.Printf("Warning: Redis unreachable at startup, rate limiting degraded: %v", pingErr)
	}
	cancel()

	// Initialize nonce service
	nonceService, err := auth.NewNonceService(auth.NonceConfig{
		Secret: cfg.NonceSecret,
		Expiry: cfg.NonceExpiry,
		Issuer: "maltacheck-backend",
	})
	if err != nil {
		log.Fatalf("Failed to initialize nonce service: %v", err)
	}

	// Initialize services
	limiter := ratelimit.NewLimiter(store, cfg.RateLimitMax, cfg.RateLimitWindow)
	scoringService := services.NewScoringService()
	interpretationService := services.NewInterpretationService(cfg.InterpretationVariant)
	webhookService := services.NewWebhookService(cfg)
	assessmentService := services.NewAssessmentService(
		cfg,
		nonceService,
		limiter,
		scoringService,
		interpretationService,
		webhookService,
	)

	// Initialize handlers
	assessHandler := handlers.NewAssessHandler(cfg, assessmentService, nonceService)
	healthHandler := handlers.NewHealthHandler(store, Version)

	// Create Gin router
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(cfg.DebugMode))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecureHeaders())

	// Register health routes (not under /api/v1)
	healthHandler.RegisterRoutes(router)

	// Register Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create API v1 group
	apiV1 := router.Group("/api/v1")

	// Register routes
	assessHandler.RegisterRoutes(apiV1)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting MaltaCheck Backend API server v%s on port %s", Version, cfg.ServerPort)
		log.Printf("Build: %s | Commit: %s | Branch: %s", BuildTime, GitCommit, GitBranch)
		log.Printf("Environment: %s", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown complete")
}
