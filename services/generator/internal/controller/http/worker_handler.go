package http

import (
	"net/http"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/generator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	workerUseCase usecase.WorkerUseCase
	logger        *logger.Logger
}

func NewWorkerHandler(workerUseCase usecase.WorkerUseCase, logger *logger.Logger) *WorkerHandler {
	return &WorkerHandler{
		workerUseCase: workerUseCase,
		logger:        logger,
	}
}

// RunBatch triggers one dispatch pass on demand, outside the cron
// schedule. Useful for draining a backlog or in development.
func (h *WorkerHandler) RunBatch(c *gin.Context) {
	processed, err := h.workerUseCase.ProcessBatch(c.Request.Context())
	if err != nil {
		h.logger.Error("On-demand batch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "batch run failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "batch complete",
		"processed": processed,
	})
}
