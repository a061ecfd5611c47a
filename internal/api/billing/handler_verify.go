package billing

import (
	"net/http"

	"github.com/Brysonmah/elitetips-2025/database"
	"github.com/Brysonmah/elitetips-2025/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// VerifyPayment is the success half of the widget handshake: the client
// reports a reference, we ask Paystack whether it actually captured, and
// only then is the receipt written. A closed or failed widget writes
// nothing.
func VerifyPayment(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing reference"})
		return
	}

	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	tx, err := getGateway().Verify(c.Request.Context(), reference)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to verify payment", "details": err.Error()})
		return
	}

	if !tx.Succeeded() {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment not completed", "status": tx.Status})
		return
	}
	if tx.Currency != billing.Currency {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unexpected payment currency"})
		return
	}

	// The charge must belong to the session asking about it. The webhook
	// keys receipts by the charge's customer email; crediting a different
	// session here would entitle the wrong account and turn the payer's
	// webhook write into a dedup no-op.
	if tx.Customer.Email != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Payment belongs to a different account"})
		return
	}

	// Amount comes back in minor units.
	amountKES := tx.Amount / 100
	if err := billing.RecordCapture(database.DB, email, tx.Reference, amountKES, tx.PaidTime()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Payment successful!",
		"has_paid":   true,
		"reference":  tx.Reference,
		"amount_kes": amountKES,
	})
}
