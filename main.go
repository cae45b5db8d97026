package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/cache"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/config"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/controllers"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/database"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/middleware"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/repository"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/retry"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/service"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Wait for the database and initialize the schema before serving.
	// Gives up after 10 attempts with exponential backoff.
	if err := database.ConnectWithRetry(context.Background(), db, retry.DefaultPolicy); err != nil {
		log.Fatalf("Failed to connect to DB after retries: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize upload storage
	fileStore, err := storage.NewFileStore(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Initialize repository, service and controllers
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cacheClient)
	authController := controllers.NewAuthController(authService, fileStore)
	healthController := controllers.NewHealthController(userRepo)

	// Create a Gin router
	router := gin.Default()

	// CORS allow-list applies to every route
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Uploaded profile images are served back read-only
	router.Static("/uploads", fileStore.Dir())

	api := router.Group("/api")
	{
		api.GET("/health", healthController.Health)
		api.POST("/signup", authController.Signup)
		api.POST("/login", authController.Login)
		api.POST("/forgot", authController.ForgotPassword)
	}

	// Legacy route kept for the existing frontend
	router.POST("/check-email-data", authController.CheckEmail)

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	log.Printf("Server running on port %d", cfg.Port)
	if len(cfg.AllowedOrigins) > 0 {
		log.Printf("Allowed CORS origins: %s", strings.Join(cfg.AllowedOrigins, ", "))
	}
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
