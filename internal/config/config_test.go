package config_test

import (
	"carbontrack/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("CLIMATIQ_API_KEY", "key")
	t.Setenv("DB_USER", "carbontrack")
	t.Setenv("DB_NAME", "carbontrack")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.climatiq.io", cfg.ClimatiqBaseURL)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.NoError(t, cfg.Validate())
}

func TestValidateRequiresProviderKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLIMATIQ_API_KEY", "")

	err := config.Load().Validate()

	assert.ErrorContains(t, err, "CLIMATIQ_API_KEY")
}

func TestValidateRequiresDatabaseSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_NAME", "")

	err := config.Load().Validate()

	assert.ErrorContains(t, err, "DB_NAME")
}

func TestProviderTimeoutOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PROVIDER_TIMEOUT", "5s")

	assert.Equal(t, 5*time.Second, config.Load().ProviderTimeout)
}
