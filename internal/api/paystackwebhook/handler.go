package paystackwebhook

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Brysonmah/elitetips-2025/config"
	"github.com/Brysonmah/elitetips-2025/database"
	"github.com/Brysonmah/elitetips-2025/internal/domain/billing"
	"github.com/Brysonmah/elitetips-2025/internal/infra/paystack"

	"github.com/gin-gonic/gin"
)

type event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type chargeData struct {
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at"`
	Customer  struct {
		Email string `json:"email"`
	} `json:"customer"`
}

// PaystackWebhook handles server-to-server capture notifications. It shares
// the receipt write path with the verify callback, so whichever arrives
// first wins and the other is a no-op.
func PaystackWebhook(c *gin.Context) {
	secret := config.PAYSTACK_SECRET_KEY
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PAYSTACK_SECRET_KEY not configured"})
		return
	}

	// MaxBytesReader trips land here, so an unreadable or oversized body is
	// the sender's fault.
	payload, err := readWebhookBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request body"})
		return
	}

	if !paystack.ValidSignature(payload, c.GetHeader("x-paystack-signature"), secret) {
		fmt.Println("❌ Paystack signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	var ev event
	if err := json.Unmarshal(payload, &ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse event"})
		return
	}

	switch ev.Event {
	case "charge.success":
		var charge chargeData
		if err := json.Unmarshal(ev.Data, &charge); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse charge"})
			return
		}
		if err := handleChargeSuccess(&charge); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})

	default:
		// Acknowledge unknown events to avoid retries
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	}
}

func handleChargeSuccess(charge *chargeData) error {
	if charge.Customer.Email == "" || charge.Reference == "" {
		return fmt.Errorf("charge missing customer email or reference")
	}
	if charge.Currency != billing.Currency {
		// Not a tier payment from this app; ack without writing.
		return nil
	}

	paidAt := paystack.ParsePaidAt(charge.PaidAt)
	amountKES := charge.Amount / 100

	if err := billing.RecordCapture(database.DB, charge.Customer.Email, charge.Reference, amountKES, paidAt); err != nil {
		return fmt.Errorf("failed to record capture: %w", err)
	}
	return nil
}

func readWebhookBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
