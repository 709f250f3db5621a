package http

import (
	"net/http"
	"strconv"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	storeUseCase usecase.StoreUseCase
	logger       *logger.Logger
}

func NewStoreHandler(storeUseCase usecase.StoreUseCase, logger *logger.Logger) *StoreHandler {
	return &StoreHandler{
		storeUseCase: storeUseCase,
		logger:       logger,
	}
}

// ListWallpapers godoc
// @Summary      List catalog wallpapers
// @Tags         wallpapers
// @Accept       json
// @Produce      json
// @Param        limit    query int    false "Page size"
// @Param        offset   query int    false "Page offset"
// @Param        category query string false "Category filter"
// @Success      200  {array}  entity.Wallpaper
// @Router       /wallpapers [get]
func (h *StoreHandler) ListWallpapers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	category := c.Query("category")

	wallpapers, err := h.storeUseCase.ListWallpapers(limit, offset, category)
	if err != nil {
		h.logger.Error("Failed to list wallpapers: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wallpapers)
}

// GetWallpaper godoc
// @Summary      Get a catalog wallpaper
// @Tags         wallpapers
// @Accept       json
// @Produce      json
// @Param        id path string true "Wallpaper ID"
// @Success      200  {object}  entity.Wallpaper
// @Failure      404  {object}  map[string]string
// @Router       /wallpapers/{id} [get]
func (h *StoreHandler) GetWallpaper(c *gin.Context) {
	wallpaper, err := h.storeUseCase.GetWallpaper(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wallpaper)
}

// PurchaseWallpaper godoc
// @Summary      Purchase a wallpaper
// @Description  Charge the wallpaper price and grant ownership; owned items return immediately without a charge
// @Tags         wallpapers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Wallpaper ID"
// @Success      200  {object}  map[string]bool
// @Failure      402  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /wallpapers/{id}/purchase [post]
func (h *StoreHandler) PurchaseWallpaper(c *gin.Context) {
	userID := c.GetString("user_id")

	owned, err := h.storeUseCase.PurchaseWallpaper(userID, c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to purchase wallpaper for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"owned": owned})
}

// UnlockGenerated godoc
// @Summary      Unlock a finished generation
// @Description  Grant ownership of a succeeded generation; already paid at request time, so free and idempotent
// @Tags         generations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Generation ID"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /generations/{id}/unlock [post]
func (h *StoreHandler) UnlockGenerated(c *gin.Context) {
	userID := c.GetString("user_id")

	owned, err := h.storeUseCase.UnlockGenerated(userID, c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to unlock generation for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"owned": owned})
}
