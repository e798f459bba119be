package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pagetalk/comment-api/internal/auth"
	"github.com/pagetalk/comment-api/internal/rest/response"
)

// AuthMiddleware verifies the bearer token and puts the user id on the
// context under "user_id" for the handlers.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err("No authentication token provided"))
			return
		}

		claims, err := auth.VerifyToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err(err.Error()))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

func extractBearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
