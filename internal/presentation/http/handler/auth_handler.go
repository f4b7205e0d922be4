package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/billing-api/internal/application/service"
	"github.com/sangkips/billing-api/internal/presentation/http/dto/request"
	"github.com/sangkips/billing-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles operator login
// @Summary Login
// @Description Authenticate the till operator and return tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tokens, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"operator":      req.Username,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"token_type":    tokens.TokenType,
	})
}

// RefreshToken handles token refresh
// @Summary Refresh Token
// @Description Refresh access token using refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", gin.H{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"token_type":    tokens.TokenType,
	})
}

// Logout handles operator logout
// @Summary Logout
// @Description Logout operator (client should discard tokens)
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// JWT is stateless, so we just return success
	// Client should discard the tokens
	response.OK(c, "Logged out successfully", nil)
}
