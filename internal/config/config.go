package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr      = ":8080"
	defaultDSN       = "sportrent.db"
	defaultJWTSecret = "change-me-jwt-secret"
	defaultJWTTTL    = "24h"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
}

// Load reads configuration from the environment (a .env file is honoured
// when present) and validates it. In prod-like environments the JWT secret
// must not be the development default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		Addr:        strings.TrimSpace(getEnv("ADDR", defaultAddr)),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDSN)),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if isProdLike(cfg.AppEnv) && (cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
