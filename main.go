package main

import (
	"time"

	"github.com/Brysonmah/elitetips-2025/config"
	"github.com/Brysonmah/elitetips-2025/database"
	billingapi "github.com/Brysonmah/elitetips-2025/internal/api/billing"
	routes "github.com/Brysonmah/elitetips-2025/internal/app/http"
	"github.com/Brysonmah/elitetips-2025/internal/domain/access"
	"github.com/Brysonmah/elitetips-2025/internal/infra/paystack"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	access.Load(config.ADMIN_EMAILS)
	database.InitDB()
	billingapi.Init(paystack.New(config.PAYSTACK_SECRET_KEY))

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
