package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.opendota.com/api"

type Config struct {
	OpenDotaBaseURL string
	DBPath          string
	LogLevel        string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		OpenDotaBaseURL: getEnv("OPENDOTA_BASE_URL", defaultBaseURL),
		DBPath:          getEnv("DB_PATH", "dashboard.db"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	logger.Info().
		Str("opendota_base_url", cfg.OpenDotaBaseURL).
		Str("db_path", cfg.DBPath).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
