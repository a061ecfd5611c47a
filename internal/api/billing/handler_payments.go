package billing

import (
	"net/http"

	"github.com/Brysonmah/elitetips-2025/database"
	"github.com/Brysonmah/elitetips-2025/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// GetPaymentHistory lists every capture, newest first, from the append-only
// event log.
func GetPaymentHistory(c *gin.Context) {
	var events []billing.PaymentEvent
	if err := database.DB.Order("paid_at DESC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": events})
}

// GetReceipts lists the current one-row-per-email entitlement records.
func GetReceipts(c *gin.Context) {
	var receipts []billing.Receipt
	if err := database.DB.Order("paid_at DESC").Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load receipts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipts": receipts})
}
