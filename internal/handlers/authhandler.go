package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yash-4120/applyflow/internal/auth"
)

// AuthHandler delegates login and signup to the hosted identity provider.
type AuthHandler struct {
	Provider *auth.ProviderClient
}

func NewAuthHandler(p *auth.ProviderClient) *AuthHandler {
	return &AuthHandler{Provider: p}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// Login is POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errBadRequest, "Email and password are required")
		return
	}

	session, err := h.Provider.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		zap.L().Warn("login failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{"session": session}, "Logged in successfully")
}

// Signup is POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errBadRequest, "Email and password are required")
		return
	}

	session, err := h.Provider.SignUp(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		zap.L().Warn("signup failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, http.StatusBadRequest, errValidation, err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{"session": session}, "Signed up successfully")
}

// Logout is POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	}
	if token == "" {
		respondError(c, http.StatusBadRequest, errBadRequest, "Access token is required")
		return
	}

	if err := h.Provider.SignOut(c.Request.Context(), token); err != nil {
		respondError(c, http.StatusInternalServerError, errInternal, err.Error())
		return
	}
	respondOK(c, http.StatusOK, nil, "Logged out successfully")
}

// OAuth is GET /auth/oauth/:provider. It redirects the browser to the
// identity provider's authorize screen.
func (h *AuthHandler) OAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		respondError(c, http.StatusBadRequest, errBadRequest, "OAuth provider is required")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, h.Provider.OAuthURL(provider))
}
