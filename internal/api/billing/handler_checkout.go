package billing

import (
	"net/http"

	"github.com/Brysonmah/elitetips-2025/config"
	"github.com/Brysonmah/elitetips-2025/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// ListTiers is public: the subscribe tab renders from it before login.
func ListTiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currency": billing.Currency,
		"tiers":    billing.Tiers,
	})
}

// CreateCheckout starts a Paystack transaction for the logged-in email at
// one of the fixed tiers. The client opens the returned authorization URL
// (or the inline widget via the access code) and comes back through
// /payments/verify.
func CreateCheckout(c *gin.Context) {
	var body struct {
		AmountKES int64 `json:"amount_kes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid amount_kes"})
		return
	}

	if !billing.ValidTier(body.AmountKES) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subscription tier"})
		return
	}

	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	auth, err := getGateway().Initialize(c.Request.Context(), email, billing.ToMinorUnits(body.AmountKES), billing.Currency)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start payment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authorization_url": auth.AuthorizationURL,
		"access_code":       auth.AccessCode,
		"reference":         auth.Reference,
		"public_key":        config.PAYSTACK_PUBLIC_KEY,
	})
}
