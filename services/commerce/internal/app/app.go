package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallpaperverse/pkg/config"
	"wallpaperverse/pkg/jwt"
	"wallpaperverse/pkg/logger"
	"wallpaperverse/pkg/middleware"
	commerceHTTP "wallpaperverse/services/commerce/internal/controller/http"
	"wallpaperverse/services/commerce/internal/repo/persistent"
	"wallpaperverse/services/commerce/internal/storeclient"
	"wallpaperverse/services/commerce/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "wallpaperverse/services/commerce/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	ledgerRepo := persistent.NewLedgerRepository(db)
	genRepo := persistent.NewGenerationRepository(db)
	ownershipRepo := persistent.NewOwnershipRepository(db)
	wallpaperRepo := persistent.NewWallpaperRepository(db)
	receiptRepo := persistent.NewReceiptRepository(db)

	// Initialize use cases
	validator := storeclient.NewClient(&http.Client{Timeout: 15 * time.Second}, cfg.AppleSharedSecret)
	ledgerUseCase := usecase.NewLedgerUseCase(ledgerRepo, jwtService, log)
	genUseCase := usecase.NewGenerationUseCase(genRepo, ledgerRepo, log)
	storeUseCase := usecase.NewStoreUseCase(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo, redisClient, log)
	receiptUseCase := usecase.NewReceiptUseCase(receiptRepo, validator, log)

	// Initialize HTTP handlers
	walletHandler := commerceHTTP.NewWalletHandler(ledgerUseCase, log)
	genHandler := commerceHTTP.NewGenerationHandler(genUseCase, log)
	storeHandler := commerceHTTP.NewStoreHandler(storeUseCase, log)
	receiptHandler := commerceHTTP.NewReceiptHandler(receiptUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/wallet", walletHandler.GetWallet)
		api.GET("/wallet/audit", walletHandler.GetAuditLog)
		api.POST("/credits/spend", walletHandler.SpendCredits)

		api.POST("/generations", genHandler.RequestGeneration)
		api.GET("/generations", genHandler.ListGenerations)
		api.GET("/generations/:id", genHandler.GetGeneration)
		api.POST("/generations/:id/unlock", storeHandler.UnlockGenerated)

		api.GET("/wallpapers", storeHandler.ListWallpapers)
		api.GET("/wallpapers/:id", storeHandler.GetWallpaper)
		api.POST("/wallpapers/:id/purchase", storeHandler.PurchaseWallpaper)

		api.POST("/receipts/validate", receiptHandler.ValidateReceipt)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Commerce service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down commerce service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Commerce service exited")
}
