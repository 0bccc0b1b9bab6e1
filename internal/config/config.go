package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string   `env:"PORT" envDefault:"3000"`
	DatabaseURL string   `env:"DATABASE_URL"`
	Database    Database `envPrefix:"DB_"`
	JWT         JWT      `envPrefix:"JWT_"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	Log         Log      `envPrefix:"LOG_"`
	Admin       Admin    `envPrefix:"ADMIN_"`
}

// Database tunes the connection pool.
type Database struct {
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int `env:"MAX_IDLE_CONNS" envDefault:"5"`
}

// JWT configures access token signing.
type JWT struct {
	Secret    string        `env:"SECRET"`
	Issuer    string        `env:"ISSUER" envDefault:"damayanti-api"`
	ExpiresIn time.Duration `env:"EXPIRES_IN" envDefault:"24h"`
}

type Log struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// Admin seeds the first administrator when both email and password are set.
type Admin struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
	FullName string `env:"FULL_NAME" envDefault:"Administrator"`
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Port = fallback(cfg.Port, "3000")
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.JWT.Secret = strings.TrimSpace(cfg.JWT.Secret)
	cfg.JWT.Issuer = fallback(cfg.JWT.Issuer, "damayanti-api")
	cfg.CORSOrigins = normalizeOrigins(cfg.CORSOrigins)

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWT.Secret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.JWT.ExpiresIn <= 0 {
		return Config{}, errors.New("JWT_EXPIRES_IN must be positive")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func normalizeOrigins(origins []string) []string {
	var out []string
	for _, origin := range origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
