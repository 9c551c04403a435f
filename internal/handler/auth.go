package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/auth"
	"expensetracker/internal/storage"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account and returns a token plus the public
// user view. Duplicate conflicts come back as 400 with a distinct message
// per field.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, err := h.authenticator.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateUsername):
			errorResponse(c, http.StatusBadRequest, "Username is already taken")
		case errors.Is(err, storage.ErrDuplicateEmail):
			errorResponse(c, http.StatusBadRequest, "Email is already registered")
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrMissingField):
			errorResponse(c, http.StatusBadRequest, err.Error())
		default:
			slog.Error("Registration failed", "username", req.Username, "error", err)
			errorResponse(c, http.StatusServiceUnavailable, "registration failed, please try again")
		}
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		errorResponse(c, http.StatusInternalServerError, "registration failed, please try again")
		return
	}

	slog.Info("User registered", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// Login authenticates a user and returns a token plus the public user view.
// Unknown username and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.authenticator.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Warn("Login failed", "username", req.Username)
			errorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		storageError(c, "login", err)
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		errorResponse(c, http.StatusInternalServerError, "login failed, please try again")
		return
	}

	slog.Info("User logged in", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}
