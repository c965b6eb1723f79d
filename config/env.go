package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env when present; a missing file is fine since the
// environment may be set by the shell or the deployment instead.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file.")
	}
}

// GetEnv reads an environment variable with a fallback default.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
