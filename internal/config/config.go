package config

import "os"

type Config struct {
	SlackBotToken  string
	SlackChannelID string
	DatabasePath   string
	NotifyTime     string // HH:MM, local time
	IconPath       string
	LogLevel       string
}

func Load() *Config {
	return &Config{
		SlackBotToken:  getEnv("SLACK_BOT_TOKEN", ""),
		SlackChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		DatabasePath:   getEnv("DATABASE_PATH", "./annonce.db"),
		NotifyTime:     getEnv("NOTIFY_TIME", "09:00"),
		IconPath:       getEnv("ICON_PATH", "/tmp/lola.png"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
