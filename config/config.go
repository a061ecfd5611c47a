package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	PAYSTACK_SECRET_KEY string
	PAYSTACK_PUBLIC_KEY string

	// Comma-separated admin allow-list. Matching is exact, so entries must
	// be spelled the way those users log in.
	ADMIN_EMAILS string

	CORS_ORIGIN string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	PAYSTACK_SECRET_KEY = mustEnv("PAYSTACK_SECRET_KEY")
	PAYSTACK_PUBLIC_KEY = mustEnv("PAYSTACK_PUBLIC_KEY")

	ADMIN_EMAILS = mustEnv("ADMIN_EMAILS")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
