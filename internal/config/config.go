// Package config centralises configuration parsing for the carbontrack
// API.
package config

import (
	"errors"
	"os"
	"time"
)

// Config captures runtime configuration values read from the process
// environment.
type Config struct {
	Port string

	ClimatiqAPIKey  string
	ClimatiqBaseURL string
	ProviderTimeout time.Duration

	RedisURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load reads environment variables into Config, applying defaults for
// local development.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		ClimatiqAPIKey:  os.Getenv("CLIMATIQ_API_KEY"),
		ClimatiqBaseURL: getEnv("CLIMATIQ_API_URL", "https://api.climatiq.io"),
		ProviderTimeout: getDurationEnv("PROVIDER_TIMEOUT", 10*time.Second),
		RedisURL:        os.Getenv("REDIS_URL"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
	}
}

// Validate fails fast on settings without which the service would run
// with a permanently broken provider path or no persistence.
func (c Config) Validate() error {
	if c.ClimatiqAPIKey == "" {
		return errors.New("CLIMATIQ_API_KEY is required")
	}
	if c.DBUser == "" {
		return errors.New("DB_USER is required")
	}
	if c.DBName == "" {
		return errors.New("DB_NAME is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
