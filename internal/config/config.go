package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultJWTSecret  = "dev-secret-change-in-production"
	defaultPassphrase = "dev-passphrase-change-in-production"
)

var ErrInsecureDefaults = errors.New("insecure default secret in production")

type Config struct {
	Port               string
	Env                string
	DatabaseDSN        string
	JWTSecret          string
	JWTExpiry          time.Duration
	OperatorPassphrase string
	RateLimitRPS       float64
	RateLimitBurst     int
	SeedDemoData       bool
}

// Load reads the configuration from the environment. Production refuses to
// start with the development secrets.
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/fortipass?parseTime=true"),
		JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),
		OperatorPassphrase: getEnv("OPERATOR_PASSPHRASE", defaultPassphrase),
	}

	var err error
	if cfg.JWTExpiry, err = time.ParseDuration(getEnv("JWT_EXPIRY", "24h")); err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRY: %w", err)
	}
	if cfg.JWTExpiry <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRY must be positive, got %s", cfg.JWTExpiry)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return Config{}, errors.New("rate limit must allow at least one request")
	}
	if cfg.SeedDemoData, err = strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false")); err != nil {
		return Config{}, fmt.Errorf("SEED_DEMO_DATA: %w", err)
	}

	if cfg.Env == "production" {
		if cfg.JWTSecret == defaultJWTSecret {
			return Config{}, fmt.Errorf("%w: JWT_SECRET must be set", ErrInsecureDefaults)
		}
		if cfg.OperatorPassphrase == defaultPassphrase {
			return Config{}, fmt.Errorf("%w: OPERATOR_PASSPHRASE must be set", ErrInsecureDefaults)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
