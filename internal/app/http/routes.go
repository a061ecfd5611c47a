package routes

import (
	authapi "github.com/Brysonmah/elitetips-2025/internal/api/auth"
	billingapi "github.com/Brysonmah/elitetips-2025/internal/api/billing"
	"github.com/Brysonmah/elitetips-2025/internal/api/paystackwebhook"
	predictionsapi "github.com/Brysonmah/elitetips-2025/internal/api/predictions"
	"github.com/Brysonmah/elitetips-2025/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Webhook takes the raw body; it must not go through the sanitizer.
	r.POST("/webhook/paystack", paystackwebhook.PaystackWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/tiers", billingapi.ListTiers)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/entitlement", billingapi.Entitlement)
	auth.POST("/checkout", billingapi.CreateCheckout)
	auth.GET("/payments/verify", billingapi.VerifyPayment)

	// Paid subscribers (admins pass regardless)
	paid := auth.Group("/")
	paid.Use(middleware.RequirePaid())
	paid.GET("/predictions", predictionsapi.List)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin(), middleware.SanitizeAndCleanInputMiddleware())
	admin.POST("/predictions", predictionsapi.Create)
	admin.PUT("/predictions/:id", predictionsapi.Update)
	admin.DELETE("/predictions/:id", predictionsapi.Delete)
	admin.GET("/payments", billingapi.GetPaymentHistory)
	admin.GET("/receipts", billingapi.GetReceipts)
}
