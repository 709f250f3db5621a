package http

import (
	"net/http"
	"strconv"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        *logger.Logger
}

func NewWalletHandler(ledgerUseCase usecase.LedgerUseCase, logger *logger.Logger) *WalletHandler {
	return &WalletHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// GetWallet godoc
// @Summary      Get wallet
// @Description  Get credit balance for the authenticated user
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Account
// @Router       /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID := c.GetString("user_id")

	account, err := h.ledgerUseCase.GetWallet(userID)
	if err != nil {
		h.logger.Error("Failed to get wallet for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// GetAuditLog godoc
// @Summary      Get credit audit log
// @Description  List balance changes for the authenticated user, newest first
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}  entity.AuditEntry
// @Router       /wallet/audit [get]
func (h *WalletHandler) GetAuditLog(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.ledgerUseCase.GetAuditLog(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to get audit log for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

type SpendCreditsRequest struct {
	Amount int    `json:"amount" binding:"required,min=1"`
	Reason string `json:"reason" binding:"required"`
	RefID  string `json:"ref_id"`
}

// SpendCredits godoc
// @Summary      Spend credits
// @Description  Debit the authenticated user's balance and return a capability token
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SpendCreditsRequest true "Spend request"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      402  {object}  map[string]string
// @Router       /credits/spend [post]
func (h *WalletHandler) SpendCredits(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SpendCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.ledgerUseCase.Spend(userID, req.Amount, entity.AuditReason(req.Reason), req.RefID)
	if err != nil {
		h.logger.Error("Failed to spend credits for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"auth_token": token,
	})
}
