// Package config reads process settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	RedisURL       string
	RedisPassword  string
	EventsChannel  string
	JWTSecret      string
	TokenTTL       time.Duration
	RateLimit      float64
	RateBurst      int
	PublicURL      string
	LogLevel       slog.Level
	RequestTimeout time.Duration
}

// Load reads .env (a missing file is fine) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:          get("PORT", ":8080"),
		MongoURI:      get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       get("MONGO_DB", "mongochef"),
		RedisURL:      get("REDIS_URL", ""),
		RedisPassword: getenv("REDIS_PASSWORD"),
		EventsChannel: get("EVENTS_CHANNEL", "mongochef-events"),
		JWTSecret:     get("JWT_SECRET", ""),
		PublicURL:     get("PUBLIC_URL", "http://localhost:8080"),
	}
	if cfg.Port[0] != ':' && !strings.Contains(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set; tokens will not survive a restart")
		cfg.JWTSecret = uuid.NewString()
	}

	var err error
	if cfg.TokenTTL, err = parseDuration("TOKEN_TTL", get("TOKEN_TTL", "24h")); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = parseDuration("REQUEST_TIMEOUT", get("REQUEST_TIMEOUT", "5s")); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = strconv.ParseFloat(get("RATE_LIMIT", "5"), 64); err != nil || cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q", getenv("RATE_LIMIT"))
	}
	if cfg.RateBurst, err = strconv.Atoi(get("RATE_BURST", "10")); err != nil || cfg.RateBurst <= 0 {
		return nil, fmt.Errorf("invalid RATE_BURST %q", getenv("RATE_BURST"))
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func parseDuration(key, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

// EventsEnabled reports whether a Redis server is configured.
func (c *Config) EventsEnabled() bool {
	return c.RedisURL != ""
}
