package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr      = ":8080"
	defaultDSN       = "estatecrm.db"
	defaultJWTSecret = "change-me-jwt-secret"
	defaultJWTTTL    = "24h"
)

type RuntimeConfig struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
}

func LoadRuntimeConfig() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("HTTP_ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDSN)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
