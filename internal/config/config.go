package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	// SeedFile points at a YAML catalog loaded at startup.
	// Empty means the embedded default catalog is used.
	SeedFile string
	// RejectDuplicateRegistration refuses to register a student into a
	// course already present in their registration list.
	RejectDuplicateRegistration bool
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		LogLevel:                    getEnv("LOG_LEVEL", "warn"),
		LogFormat:                   getEnv("LOG_FORMAT", "auto"),
		SeedFile:                    getEnv("SEED_FILE", ""),
		RejectDuplicateRegistration: getEnvBool("REJECT_DUPLICATE_REGISTRATION", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
