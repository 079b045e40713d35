package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is populated from environment variables, with an optional .env file.
// Real environment variables take precedence over the file.
type Config struct {
	Token      string // TELEGRAM_BOT_TOKEN, required
	AdminID    int64  // ADMIN_ID (legacy: ADMIN_ID_SECRET), required
	XAIAPIKey  string // XAI_API_KEY (legacy: AI_API_KEY), empty disables AI
	DBPath     string
	ReportPath string
}

func Load() (*Config, error) {
	// Missing .env is fine in deployments that inject real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		Token:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		XAIAPIKey:  strings.TrimSpace(firstEnv("XAI_API_KEY", "AI_API_KEY")),
		DBPath:     getEnv("LEADBOT_DB", "./leadbot.db"),
		ReportPath: getEnv("LEADBOT_REPORT", "./statistic.txt"),
	}

	if cfg.Token == "" {
		return nil, errors.New(
			"не задан токен бота (ключ TELEGRAM_BOT_TOKEN в .env или окружении)")
	}

	id, _ := strconv.ParseInt(firstEnv("ADMIN_ID", "ADMIN_ID_SECRET"), 10, 64)
	if id == 0 {
		return nil, errors.New(
			"не задан ID администратора (числовой Telegram ID, ключ ADMIN_ID или ADMIN_ID_SECRET)")
	}
	cfg.AdminID = id

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
