package handlers

import (
	"errors"
	"net/http"

	"astrodesk/models"
	"astrodesk/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes admin authentication endpoints.
type AuthHandler struct {
	Service admin.AdminService
	Logger  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc admin.AdminService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, Logger: logger}
}

// LoginHandler issues a bearer token for valid admin credentials.
// POST /api/auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input models.AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.Logger.Error("Admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": input.Username})
}

// MeHandler echoes the authenticated admin identity.
// GET /api/auth/me
func (h *AuthHandler) MeHandler(c *gin.Context) {
	username, _ := c.Get("adminUser")
	c.JSON(http.StatusOK, gin.H{"username": username})
}

// InitAdminHandler idempotently seeds the default admin account.
// POST /api/init-admin
func (h *AuthHandler) InitAdminHandler(c *gin.Context) {
	created, err := h.Service.Seed(c.Request.Context())
	if err != nil {
		h.Logger.Error("Admin seed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize admin"})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Admin already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin created", "username": "admin"})
}
