package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "sellerdesk.db"
	defaultJWTTTL        = "24h"
	defaultUploadLinkTTL = "168h" // 7 days
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	UploadLinkTTL time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        envOrDefault("PORT", defaultPort),
		DatabaseURL: envOrDefault("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	jwtTTL, err := time.ParseDuration(envOrDefault("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = jwtTTL

	linkTTL, err := time.ParseDuration(envOrDefault("UPLOAD_LINK_TTL", defaultUploadLinkTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_LINK_TTL: %w", err)
	}
	cfg.UploadLinkTTL = linkTTL

	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
