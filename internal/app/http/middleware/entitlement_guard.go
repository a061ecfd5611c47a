package middleware

import (
	"net/http"

	"github.com/Brysonmah/elitetips-2025/database"
	"github.com/Brysonmah/elitetips-2025/internal/domain/access"
	"github.com/Brysonmah/elitetips-2025/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// RequirePaid gates premium content behind a current receipt. Admins pass
// unconditionally, paid or not.
func RequirePaid() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if access.IsAdmin(email) {
			c.Next()
			return
		}

		paid, err := billing.HasPaid(database.DB, email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to check subscription",
			})
			return
		}
		if !paid {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Subscribe to unlock today's expert predictions",
			})
			return
		}

		c.Next()
	}
}
