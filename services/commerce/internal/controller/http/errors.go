package http

import (
	"errors"
	"net/http"

	"wallpaperverse/services/commerce/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps the sentinel error taxonomy to HTTP status codes.
// Anything unrecognized is reported as a generic internal error; the
// caller logs the specific cause server-side.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInsufficientCredits):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": entity.ErrInsufficientCredits.Error()})
	case errors.Is(err, entity.ErrAccountNotFound), errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": entity.ErrPermissionDenied.Error()})
	case errors.Is(err, entity.ErrNotCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": entity.ErrNotCompleted.Error()})
	case errors.Is(err, entity.ErrReceiptInvalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": entity.ErrReceiptInvalid.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
