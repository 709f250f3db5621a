package main

import (
	"wallpaperverse/pkg/cache"
	"wallpaperverse/pkg/config"
	"wallpaperverse/pkg/database"
	"wallpaperverse/pkg/logger"
	commerceApp "wallpaperverse/services/commerce/internal/app"

	"github.com/gin-gonic/gin"
)

// @title           Commerce Service API
// @version         1.0
// @description     Credit ledger, generation requests and store operations for WallpaperVerse

// @host      localhost:8001
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	commerceApp.Run(cfg, log, db, redisClient)
}
