package http

import (
	"net/http"
	"strconv"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GenerationHandler struct {
	genUseCase usecase.GenerationUseCase
	logger     *logger.Logger
}

func NewGenerationHandler(genUseCase usecase.GenerationUseCase, logger *logger.Logger) *GenerationHandler {
	return &GenerationHandler{
		genUseCase: genUseCase,
		logger:     logger,
	}
}

type RequestGenerationRequest struct {
	Prompt      string  `json:"prompt" binding:"required"`
	Aspect      string  `json:"aspect" binding:"required"`
	StylePreset string  `json:"style_preset"`
	Chromatic   float64 `json:"chromatic"`
}

// RequestGeneration godoc
// @Summary      Request an AI generation
// @Description  Charge credits and enqueue a generation job; poll its status afterwards
// @Tags         generations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RequestGenerationRequest true "Generation request"
// @Success      201  {object}  entity.Generation
// @Failure      400  {object}  map[string]string
// @Failure      402  {object}  map[string]string
// @Router       /generations [post]
func (h *GenerationHandler) RequestGeneration(c *gin.Context) {
	userID := c.GetString("user_id")

	var req RequestGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen, err := h.genUseCase.RequestGeneration(userID, req.Prompt, req.Aspect, req.StylePreset, req.Chromatic)
	if err != nil {
		h.logger.Error("Failed to request generation for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gen)
}

// GetGeneration godoc
// @Summary      Get a generation
// @Description  Get one of the caller's generation jobs, including its status
// @Tags         generations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Generation ID"
// @Success      200  {object}  entity.Generation
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /generations/{id} [get]
func (h *GenerationHandler) GetGeneration(c *gin.Context) {
	userID := c.GetString("user_id")
	genID := c.Param("id")

	gen, err := h.genUseCase.GetGeneration(genID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gen)
}

// ListGenerations godoc
// @Summary      List generations
// @Description  List the caller's generation jobs, newest first
// @Tags         generations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}  entity.Generation
// @Router       /generations [get]
func (h *GenerationHandler) ListGenerations(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	gens, err := h.genUseCase.ListGenerations(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list generations for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gens)
}
