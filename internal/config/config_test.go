package config_test

import (
	"testing"

	"dota-dashboard/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENDOTA_BASE_URL", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.Load(zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "https://api.opendota.com/api", cfg.OpenDotaBaseURL)
	assert.Equal(t, "dashboard.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("OPENDOTA_BASE_URL", "http://localhost:9001/api")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load(zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9001/api", cfg.OpenDotaBaseURL)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}
