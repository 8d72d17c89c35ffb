package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tastebud/internal/auth/usecase"
)

// AuthHandler exposes the session lifecycle: establishing the active identity
// from a token and tearing it down again.
type AuthHandler struct {
	identityUsecase usecase.IdentityUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(identityUsecase usecase.IdentityUsecase) *AuthHandler {
	return &AuthHandler{identityUsecase: identityUsecase}
}

// SessionRequest is the request body for establishing a session
type SessionRequest struct {
	Token string `json:"token" binding:"required"`
}

// CreateSession makes the token's user the active identity
// POST /api/auth/session
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	user, err := h.identityUsecase.SignIn(c.Request.Context(), req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteSession clears the active identity
// DELETE /api/auth/session
func (h *AuthHandler) DeleteSession(c *gin.Context) {
	h.identityUsecase.SignOut()
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// Me returns the active identity
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.identityUsecase.Current()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, user)
}
