package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the CLI. A .env file in the working
// directory is loaded first; real environment variables win over it.
const (
	envAPIBaseURL   = "CAMPUSMARKET_API_URL"
	envDatabasePath = "CAMPUSMARKET_DB"
	envMaxImages    = "CAMPUSMARKET_MAX_IMAGES"
	envMaxImageMB   = "CAMPUSMARKET_MAX_IMAGE_MB"
)

func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envMaxImages); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxImages = n
		}
	}
	if v := os.Getenv(envMaxImageMB); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxImageSize = n << 20
		}
	}
}
