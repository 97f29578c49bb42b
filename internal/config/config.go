package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Quotes   QuotesConfig
	Security SecurityConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// QuotesConfig holds market-data refresh configuration.
// RefreshSchedule is a cron expression; empty disables the scheduler.
type QuotesConfig struct {
	RefreshSchedule string
}

// SecurityConfig holds secrets used by the application.
// FernetKey encrypts stored provider credentials at rest; APIKey guards
// internal-only endpoints when set.
type SecurityConfig struct {
	FernetKey string
	APIKey    string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio_performance.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost"),
				",",
			),
		},
		Quotes: QuotesConfig{
			// Weekday evenings after US market close, server-local time.
			RefreshSchedule: getEnv("QUOTE_REFRESH_SCHEDULE", "0 23 * * MON-FRI"),
		},
		Security: SecurityConfig{
			FernetKey: os.Getenv("SETTINGS_FERNET_KEY"),
			APIKey:    os.Getenv("INTERNAL_API_KEY"),
		},
	}

	if config.Security.FernetKey == "" {
		return nil, fmt.Errorf("SETTINGS_FERNET_KEY is required")
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
