package http

import (
	"net/http"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	receiptUseCase usecase.ReceiptUseCase
	logger         *logger.Logger
}

func NewReceiptHandler(receiptUseCase usecase.ReceiptUseCase, logger *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptUseCase: receiptUseCase,
		logger:         logger,
	}
}

type ValidateReceiptRequest struct {
	Raw      string `json:"raw" binding:"required"`
	Platform string `json:"platform" binding:"required,oneof=ios android"`
}

// ValidateReceipt godoc
// @Summary      Validate a store receipt
// @Description  Verify a purchase with the platform store and grant credits exactly once per transaction
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ValidateReceiptRequest true "Receipt payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /receipts/validate [post]
func (h *ReceiptHandler) ValidateReceipt(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ValidateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.receiptUseCase.ValidateReceipt(c.Request.Context(), userID, req.Raw, req.Platform)
	if err != nil {
		h.logger.Error("Receipt validation failed for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"validated":       true,
		"credits_granted": receipt.CreditsGranted,
	})
}
