package billing

import (
	"net/http"

	"github.com/Brysonmah/elitetips-2025/database"
	"github.com/Brysonmah/elitetips-2025/internal/domain/access"
	"github.com/Brysonmah/elitetips-2025/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// Entitlement derives "may this email view predictions" at request time from
// receipt existence. Nothing is cached, so a fresh signup simply reads as
// unpaid until a capture lands.
func Entitlement(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	paid, err := billing.HasPaid(database.DB, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":    email,
		"has_paid": paid,
		"is_admin": access.IsAdmin(email),
	})
}
