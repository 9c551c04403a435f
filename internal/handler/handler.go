// Package handler implements the REST endpoints. Every error response has
// the shape {"error": "..."}; diagnostic detail stays in the logs.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorResponse writes the uniform error body.
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// storageError reports a storage-layer failure as a retryable 503. The
// underlying error is logged, never sent to the caller.
func storageError(c *gin.Context, operation string, err error) {
	slog.Error("Storage operation failed", "operation", operation, "error", err)
	errorResponse(c, http.StatusServiceUnavailable, "service unavailable")
}

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
}
