package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort string
	BaseURL string

	MidtransServerKey       string
	MidtransClientKey       string
	MidtransIsProduction    bool
	MidtransVerifySignature bool

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string
	AdminEmail   string

	DiscordWebhookURL string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := &Config{
		AppPort: getEnv("PORT", "8080"),
		BaseURL: getEnv("BASE_URL", "http://localhost:8080"),

		MidtransServerKey:       getEnv("MIDTRANS_SERVER_KEY", ""),
		MidtransClientKey:       getEnv("MIDTRANS_CLIENT_KEY", ""),
		MidtransIsProduction:    getEnv("MIDTRANS_ENVIRONMENT", "") == "production",
		MidtransVerifySignature: getEnv("MIDTRANS_VERIFY_SIGNATURE", "false") == "true",

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "465"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		EmailFrom:    getEnv("EMAIL_FROM", ""),
		AdminEmail:   getEnv("ADMIN_EMAIL", ""),

		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),
	}

	// The admin notification and the default sender both fall back to the
	// SMTP account, mirroring how the mailbox is actually operated.
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.SMTPUser
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.SMTPUser
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
