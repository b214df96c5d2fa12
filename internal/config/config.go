package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	DBPath     string
	ServerPort string
	LogLevel   string

	// Data Dragon
	DDragonBaseURL string
	DDragonVersion string // empty means "resolve latest at startup"
	DDragonLocale  string

	RedisURL string

	// RefreshTTL bounds how stale the mirrored champion data may get before
	// a request triggers a re-fetch from Data Dragon.
	RefreshTTL time.Duration
	CacheTTL   time.Duration

	// AllowTextFallback is the default for inferring CC threats from ability
	// text when a champion has no curated entry. Callers can override it per
	// request.
	AllowTextFallback bool
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:            getEnv("DB_PATH", "league.db"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DDragonBaseURL:    getEnv("DDRAGON_BASE_URL", "https://ddragon.leagueoflegends.com"),
		DDragonVersion:    getEnv("DDRAGON_VERSION", ""),
		DDragonLocale:     getEnv("DDRAGON_LOCALE", "en_US"),
		RedisURL:          getEnv("REDIS_URL", ""),
		RefreshTTL:        24 * time.Hour,
		CacheTTL:          1 * time.Hour,
		AllowTextFallback: getEnv("ALLOW_TEXT_FALLBACK", "true") == "true",
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("ddragon_base_url", cfg.DDragonBaseURL).
		Str("ddragon_locale", cfg.DDragonLocale).
		Dur("refresh_ttl", cfg.RefreshTTL).
		Bool("allow_text_fallback", cfg.AllowTextFallback).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
