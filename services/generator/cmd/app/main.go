package main

import (
	"wallpaperverse/pkg/config"
	"wallpaperverse/pkg/database"
	"wallpaperverse/pkg/logger"
	"wallpaperverse/pkg/s3"
	generatorApp "wallpaperverse/services/generator/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	generatorApp.Run(cfg, log, db, s3Client)
}
