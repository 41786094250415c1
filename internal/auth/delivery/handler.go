package delivery

import (
	"errors"
	"net/http"

	authdto "petcare-backend/internal/auth/dto"
	"petcare-backend/internal/auth/usecase"
	"petcare-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles account and authentication HTTP requests
type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	loginLimiter ratelimit.Limiter
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, loginLimiter ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		loginLimiter: loginLimiter,
	}
}

// Register creates a new account
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all required fields"})
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrInvalidBirthday):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login checks credentials and returns a signed token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	if !h.loginLimiter.Allow(c.Request.Context(), req.Email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts, try again later"})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the profile of the authenticated user
// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	user, err := h.authUsecase.GetProfile(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers returns every account, admin only
// GET /users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	users, err := h.authUsecase.ListUsers(userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAdminOnly):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			// Token for an account that no longer exists.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		}
		return
	}

	c.JSON(http.StatusOK, users)
}
