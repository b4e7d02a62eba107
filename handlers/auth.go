package handlers

import (
	"errors"
	"net/http"

	"carrental/models"
	"carrental/services/user"
	"carrental/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login and the password-reset flow.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var input models.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	usr, token, err := h.Service.Signup(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Signup successful",
		"user":    usr,
		"token":   token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	_, token, err := h.Service.Login(input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid credentials", "")
			return
		}
		utils.GetLogger().Error("login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "error in login", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless; the client
// drops its copy and the auth cache entry ages out.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
}

// GetProfile handles GET /api/auth/get-profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	usr, bookings, err := h.Service.GetProfile(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"user":     usr,
		"bookings": bookings,
	})
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.ForgotPassword(input.Email); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If the email exists, a reset link has been sent",
	})
}

// ResetPassword handles POST /api/auth/reset-password/:token.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.ResetPassword(c.Param("token"), input.Password); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful"})
}
