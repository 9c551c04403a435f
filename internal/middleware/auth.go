// Package middleware provides the HTTP middleware chain: bearer-token
// authentication, request logging and prometheus metrics.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/auth"
)

// userIDKey is the gin context key for the authenticated user ID.
const userIDKey = "user_id"

// UserID extracts the authenticated user ID from the request context.
// Returns empty string if the request was not authenticated.
func UserID(c *gin.Context) string {
	userID, _ := c.Get(userIDKey)
	id, _ := userID.(string)
	return id
}

// RequireAuth returns a middleware that validates JWT bearer tokens.
// Every failure (missing header, malformed header, bad signature, expired
// token) is collapsed to a 401 with a uniform body; the specific reason is
// only logged. Handlers downstream read the owner identity exclusively via
// UserID, so a caller can never supply an owner ID of their own.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "malformed authorization header")
			return
		}

		userID, err := jwtManager.Validate(parts[1])
		if err != nil {
			slog.Debug("Token validation failed", "error", err)
			unauthorized(c, "token rejected")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, reason string) {
	slog.Debug("Unauthorized request", "path", c.Request.URL.Path, "reason", reason)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
}
