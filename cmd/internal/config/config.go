package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the wiring in main needs. Business logic
// receives values from here through constructors, never from the
// environment directly.
type Config struct {
	Port         string
	DatabasePath string

	// AdminToken is the shared secret behind the x-admin-token header.
	AdminToken   string
	SessionTTL   time.Duration

	RedisAddr string

	// MailProvider selects the outbound mail transport: log, noop or a
	// webhook URL. MailFrom is the sender shown on confirmations.
	MailProvider     string
	MailWebhookToken string
	MailFrom         string
	SalonName        string
}

func Load() Config {
	return Config{
		Port:             readString("PORT", "5000"),
		DatabasePath:     readString("DATABASE_PATH", "./database.db"),
		AdminToken:       os.Getenv("ADMIN_TOKEN"),
		SessionTTL:       readDurationMinutes("ADMIN_SESSION_TTL_MINUTES", 720),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		MailProvider:     readString("MAIL_PROVIDER", "log"),
		MailWebhookToken: os.Getenv("MAIL_WEBHOOK_TOKEN"),
		MailFrom:         readString("MAIL_FROM", "checkin@greatlooks.example"),
		SalonName:        readString("SALON_NAME", "Great Looks"),
	}
}

func readString(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func readDurationMinutes(key string, fallback int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallback) * time.Minute
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return time.Duration(fallback) * time.Minute
	}
	return time.Duration(value) * time.Minute
}
