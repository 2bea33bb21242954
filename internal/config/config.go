package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultPort is used when PORT is not set in the environment
const DefaultPort = "8000"

// Config holds runtime configuration read from the environment
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	// Kept as a string: it is only ever used as a listen target.
	Port string
}

// Load reads configuration from a .env file (when present) and the
// environment. A missing .env file is not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port: getEnv("PORT", DefaultPort),
	}
}

// getEnv returns the value of the environment variable or the fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
