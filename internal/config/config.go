package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken            string
	BotName             string
	ReportProviderURL   string
	NotificationsChatID int64
	NotificationsTopic  int
	HTTPPort            string
	LogLevel            string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		BotName:           os.Getenv("BOT_NAME"),
		ReportProviderURL: os.Getenv("REPORT_PROVIDER_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotName == "" {
		return nil, fmt.Errorf("BOT_NAME is required")
	}
	if cfg.ReportProviderURL == "" {
		return nil, fmt.Errorf("REPORT_PROVIDER_URL is required")
	}

	chatID, err := strconv.ParseInt(os.Getenv("NOTIFICATIONS_CHAT_ID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("NOTIFICATIONS_CHAT_ID is required and must be an integer: %w", err)
	}
	cfg.NotificationsChatID = chatID

	if topic := os.Getenv("NOTIFICATIONS_TOPIC_ID"); topic != "" {
		topicID, err := strconv.Atoi(topic)
		if err != nil {
			return nil, fmt.Errorf("NOTIFICATIONS_TOPIC_ID must be an integer: %w", err)
		}
		cfg.NotificationsTopic = topicID
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
