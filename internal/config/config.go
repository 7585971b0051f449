package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	SMTPFrom     string
	AllowOrigins string
	AppEnv       string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	mongoURI, exists := os.LookupEnv("MONGO_URI")
	if !exists || mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	smtpUser := getEnv("SMTP_USER", "")

	return &Config{
		Port:         getEnv("PORT", "5000"),
		MongoURI:     mongoURI,
		MongoDB:      getEnv("MONGO_DB", "mindly"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", ""),
		SMTPUser:     smtpUser,
		SMTPPass:     getEnv("SMTP_PASS", ""),
		SMTPFrom:     getEnv("SMTP_FROM", smtpUser),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),
		AppEnv:       normalizeEnv(getEnv("APP_ENV", "production")),
	}, nil
}

// EmailEnabled reports whether the SMTP settings are complete enough to send.
func (c *Config) EmailEnabled() bool {
	return c != nil && c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPFrom != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
