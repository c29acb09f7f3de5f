// Package config loads the application configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port  string // Port the HTTP server listens on
	DBDSN string // Path to the SQLite database file
}

// Load reads the configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:  getEnv("PORT", "8080"),
		DBDSN: getEnv("DB_DSN", "data/expenses.db"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
