package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// SMTP Configuration (Gmail app password)
	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string
	// Business inbox that receives form notifications
	CompanyEmail string
	// Rate Limiting Configuration
	RateLimitWindowMinutes int
	RateLimitMax           int
	// Directory holding the built front-end bundle (served in release mode)
	StaticDir string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "3000"),
		// Strip trailing slash so CORS origin matching is exact
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:8081"), "/"),
		// SMTP Configuration
		SMTPHost:  getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnv("SMTP_PORT", "587"),
		EmailUser: getEnv("EMAIL_USER", ""),
		EmailPass: getEnv("EMAIL_PASS", ""),
		// Business inbox
		CompanyEmail: getEnv("COMPANY_EMAIL", "vallabhforex@gmail.com"),
		// Rate Limiting Configuration (100 requests per 15 minutes per IP)
		RateLimitWindowMinutes: getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15),
		RateLimitMax:           getEnvInt("RATE_LIMIT_MAX", 100),
		StaticDir:              getEnv("STATIC_DIR", "./dist"),
	}

	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASS not configured. Form submissions will fail to send.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
