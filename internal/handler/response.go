package handler

import (
	"net/http"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/config"
	"gamehub/backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// respondError maps a domain error to its HTTP status. Unexpected errors
// become 500; their message is suppressed in production builds.
func respondError(c *gin.Context, err error) {
	status := apperror.Status(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal error", "path", c.FullPath(), "error", err)
		if config.AppConfig.IsProduction() {
			c.JSON(status, gin.H{"error": "Internal server error"})
			return
		}
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
