package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Storage configuration
	DBPath     string
	UploadsDir string
}

// Load loads configuration from a .env file (if present) and environment
// variables.
func Load() (*Config, error) {
	// Best effort; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "3001"),
		Debug:      getEnvAsBool("DEBUG", false),
		DBPath:     getEnv("DB_PATH", "data/db.json"),
		UploadsDir: getEnv("UPLOADS_DIR", "public/uploads"),
	}

	// The uploads directory is served statically and written by the avatar
	// endpoint; make sure it exists up front.
	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.EqualFold(value, "true")
}
