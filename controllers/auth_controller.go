package controllers

import (
	"errors"
	"net/http"

	"github.com/defenstration/diet-tracker-app/logger"
	"github.com/defenstration/diet-tracker-app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type MagicLinkInput struct {
	Email      string `json:"email" binding:"required,email"`
	RedirectTo string `json:"redirect_to"`
}

// POST /auth/magic-link
func (ac *AuthController) RequestMagicLink(c *gin.Context) {
	var input MagicLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ac.auth.SendMagicLink(input.Email, input.RedirectTo); err != nil {
		logger.L().Error("magic link send failed", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send sign-in link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check your email for the sign-in link"})
}

type VerifyInput struct {
	Token      string `json:"token" binding:"required"`
	RedirectTo string `json:"redirect_to"`
}

// POST /auth/verify
func (ac *AuthController) VerifyMagicLink(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := ac.auth.VerifyMagicLink(input.Token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired sign-in link"})
			return
		}
		logger.L().Error("magic link verify failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete sign-in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"email":       user.Email,
		"redirect_to": input.RedirectTo,
	})
}
