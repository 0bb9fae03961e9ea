package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Feed
	FeedURL  string // websocket URL of the bar feed
	Symbol   string // initially subscribed symbol
	Interval string // initially subscribed interval, e.g. "1m"

	// Infrastructure
	RedisAddr     string
	RedisPassword string
	SQLitePath    string
	MetricsAddr   string

	// Engine
	MaxCandles    int    // confirmed-candle cap, 0 = unbounded
	DefaultPreset string // registry preset applied at startup, "" = none

	LogLevel string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		FeedURL:  getEnv("FEED_URL", "ws://localhost:8090/stream"),
		Symbol:   getEnv("SYMBOL", "BTCUSDT"),
		Interval: getEnv("INTERVAL", "1m"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "data/candles.db"),
		MetricsAddr:   getEnv("METRICS_ADDR", ":9090"),

		MaxCandles:    getEnvInt("MAX_CANDLES", 0),
		DefaultPreset: getEnv("DEFAULT_PRESET", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// IntervalSeconds parses the configured interval ("30s", "1m", "5m", "1h",
// "1d") into seconds. Unknown formats fall back to 60.
func (c *Config) IntervalSeconds() int {
	return ParseIntervalSeconds(c.Interval)
}

// ParseIntervalSeconds converts an interval token into seconds.
func ParseIntervalSeconds(interval string) int {
	s := strings.TrimSpace(strings.ToLower(interval))
	if s == "" {
		return 60
	}
	unit := s[len(s)-1]
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		log.Printf("[config] invalid interval %q, defaulting to 1m", interval)
		return 60
	}
	switch unit {
	case 's':
		return n
	case 'm':
		return n * 60
	case 'h':
		return n * 3600
	case 'd':
		return n * 86400
	default:
		log.Printf("[config] unknown interval unit in %q, defaulting to 1m", interval)
		return 60
	}
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid int for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
