package config

import (
	"os"
	"strings"
)

// Config holds all configuration values
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	HTTP     HTTPConfig
	Display  DisplayConfig
}

// AppConfig holds process-wide settings
type AppConfig struct {
	Env string
}

// DatabaseConfig holds store configuration
type DatabaseConfig struct {
	Path     string
	LogLevel string // silent | error | warn | info
}

// HTTPConfig holds the local form server configuration
type HTTPConfig struct {
	Addr string
}

// DisplayConfig controls how amounts are rendered
type DisplayConfig struct {
	Locale   string
	Currency string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("REGISTRY_ENV", "production"),
		},
		Database: DatabaseConfig{
			Path:     getEnv("REGISTRY_DB_PATH", "szerzodesek.db"),
			LogLevel: getEnvOneOf("REGISTRY_DB_LOG_LEVEL", "silent", "silent", "error", "warn", "info"),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("REGISTRY_HTTP_ADDR", "127.0.0.1:8080"),
		},
		Display: DisplayConfig{
			Locale:   getEnv("REGISTRY_LOCALE", "en"),
			Currency: getEnv("REGISTRY_CURRENCY", "Ft"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOneOf(key, defaultValue string, allowed ...string) string {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return defaultValue
}
