package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallpaperverse/pkg/config"
	"wallpaperverse/pkg/logger"
	"wallpaperverse/pkg/s3"
	generatorHTTP "wallpaperverse/services/generator/internal/controller/http"
	"wallpaperverse/services/generator/internal/materializer"
	"wallpaperverse/services/generator/internal/provider"
	"wallpaperverse/services/generator/internal/repo/persistent"
	"wallpaperverse/services/generator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client) {
	// Initialize repositories
	genRepo := persistent.NewGenerationRepository(db)
	ledgerRepo := persistent.NewLedgerRepository(db)

	// Initialize providers and the materializer
	registry := provider.NewRegistry(
		provider.NewStabilityProvider(nil, cfg.AIAPIKey),
		provider.NewOpenAIProvider(nil, cfg.AIAPIKey),
	)
	mat, err := materializer.New(s3Client, nil)
	if err != nil {
		log.Error("Failed to build materializer: %v", err)
		panic(err)
	}

	// Initialize use cases
	workerUseCase := usecase.NewWorkerUseCase(
		genRepo,
		ledgerRepo,
		registry,
		mat,
		cfg.AIProvider,
		cfg.WorkerBatchSize,
		cfg.WorkerRefundOnFailure,
		log,
	)

	// Initialize HTTP handlers
	workerHandler := generatorHTTP.NewWorkerHandler(workerUseCase, log)

	// Scheduled dispatch
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.WorkerCronSpec, func() {
		if _, err := workerUseCase.ProcessBatch(context.Background()); err != nil {
			log.Error("Scheduled batch failed: %v", err)
		}
	}); err != nil {
		log.Error("Invalid worker cron spec %q: %v", cfg.WorkerCronSpec, err)
		panic(err)
	}
	scheduler.Start()

	// Setup router
	r := gin.Default()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// On-demand dispatch
	r.POST("/worker/run", workerHandler.RunBatch)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Generator service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down generator service...")

	// Stop scheduling and let the running batch finish
	cronCtx := scheduler.Stop()
	<-cronCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Generator service exited")
}
