package middleware

import (
	"net/http"

	"github.com/Brysonmah/elitetips-2025/internal/domain/access"

	"github.com/gin-gonic/gin"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			c.Abort()
			return
		}

		if !access.IsAdmin(email) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to access this page"})
			c.Abort()
			return
		}

		c.Next()
	}
}
