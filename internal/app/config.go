package app

import (
	"errors"
	"os"
	"time"
)

const defaultTokenTTL = 24 * time.Hour

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	Port        string
}

// LoadConfig reads configuration from the environment. DATABASE_URL and
// JWT_SECRET are mandatory; everything else has a default.
func LoadConfig() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      defaultTokenTTL,
		Port:        os.Getenv("PORT"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if raw := os.Getenv("JWT_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errors.New("JWT_TTL is not a valid duration: " + raw)
		}
		cfg.JWTTTL = ttl
	}

	return cfg, nil
}
