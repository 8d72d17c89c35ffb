package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tastebud/internal/auth/usecase"
)

// AuthMiddleware resolves the Bearer token on a request to a user and stores
// the user id in the context for downstream handlers.
func AuthMiddleware(identityUsecase usecase.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		user, err := identityUsecase.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
