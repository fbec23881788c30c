// Package config reads service configuration from environment variables.
//
// Values are optional unless a command needs them: the serve command works
// with defaults alone, while the bot and announce commands validate the
// Telegram settings they require. A .env file, when present, is loaded by
// main before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hfigen/khl-miniapp/internal/stats"
)

// Config holds all configuration for the stats service and bot
type Config struct {
	// HTTP server settings
	ListenAddr  string
	WebDir      string
	CORSOrigins []string

	// Telegram settings
	TelegramToken  string
	TelegramChatID string
	WebAppURL      string

	// Stats source settings
	DefaultSeason int // 0 means follow the calendar
	CacheSize     int
	FetchTimeout  time.Duration
	SearchLimit   int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// HTTP server configuration
	config.ListenAddr = getEnvWithDefault("LISTEN_ADDR", ":8000")
	config.WebDir = getEnvWithDefault("WEB_DIR", "web")
	config.CORSOrigins = splitList(getEnvWithDefault("CORS_ORIGINS", "*"))

	// Telegram configuration
	config.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	config.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")
	config.WebAppURL = os.Getenv("WEB_APP_URL")

	// Stats source configuration
	if seasonStr := os.Getenv("DEFAULT_SEASON"); seasonStr != "" {
		year, err := stats.ParseSeason(seasonStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_SEASON value: %v", err)
		}
		config.DefaultSeason = year
	}

	cacheSize, err := strconv.Atoi(getEnvWithDefault("CACHE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE value: %v", err)
	}
	config.CacheSize = cacheSize

	fetchTimeout, err := strconv.Atoi(getEnvWithDefault("FETCH_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT_SECONDS value: %v", err)
	}
	config.FetchTimeout = time.Duration(fetchTimeout) * time.Second

	searchLimit, err := strconv.Atoi(getEnvWithDefault("SEARCH_LIMIT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_LIMIT value: %v", err)
	}
	config.SearchLimit = searchLimit

	// Logging
	config.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	return config, nil
}

// Season returns the season the service should show by default: the pinned
// DEFAULT_SEASON when set, otherwise the season currently in progress.
func (c *Config) Season() int {
	if c.DefaultSeason != 0 {
		return c.DefaultSeason
	}
	return stats.CurrentSeason()
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated list, dropping empty entries
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
