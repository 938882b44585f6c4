package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Word MCP service
	WordMCPURL string

	// Auth
	APIKey string

	// Conversion
	StyleFile      string // accepted and threaded through; dispatch does not use it yet
	ConvertTimeout time.Duration
	DefaultAuthor  string

	// Upload limits (docx outline inspection)
	MaxUploadBytes int64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		WordMCPURL: envOr("WORDMCP_URL", "http://wordmcp:8000/mcp"),

		APIKey: os.Getenv("WORDBRIDGE_API_KEY"),

		StyleFile:      os.Getenv("STYLE_FILE"),
		ConvertTimeout: envDuration("CONVERT_TIMEOUT", 2*time.Minute),
		DefaultAuthor:  envOr("DEFAULT_AUTHOR", "wordbridge"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 26214400), // 25MB
	}

	if cfg.ConvertTimeout <= 0 {
		cfg.ConvertTimeout = 2 * time.Minute
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 26214400
	}

	return cfg
}

func (c Config) Validate() error {
	if c.WordMCPURL == "" {
		return fmt.Errorf("WORDMCP_URL is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("WORDBRIDGE_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
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
