package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Upstream panchang source
	PanchangBaseURL string
	GeonameID       string
	FetchTimeout    time.Duration

	// Request limits
	MaxRangeDays int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		PanchangBaseURL: envOr("PANCHANG_BASE_URL", "https://www.drikpanchang.com"),
		GeonameID:       envOr("GEONAME_ID", "1261481"), // New Delhi, India
		FetchTimeout:    envDuration("FETCH_TIMEOUT", 10*time.Second),

		MaxRangeDays: envInt("MAX_RANGE_DAYS", 31),
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if cfg.MaxRangeDays <= 0 {
		cfg.MaxRangeDays = 31
	}

	return cfg
}

func (c Config) Validate() error {
	if c.PanchangBaseURL == "" {
		return fmt.Errorf("PANCHANG_BASE_URL is required")
	}
	if _, err := url.ParseRequestURI(c.PanchangBaseURL); err != nil {
		return fmt.Errorf("PANCHANG_BASE_URL is not a valid URL: %w", err)
	}
	if c.GeonameID == "" {
		return fmt.Errorf("GEONAME_ID is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
