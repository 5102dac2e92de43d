package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// insecureDefaultSecret keeps local demos working without any setup. Load
// refuses to start with it when APP_ENV=production.
const insecureDefaultSecret = "your-secret-key-change-in-production"

type Config struct {
	Port        string
	Environment string
	JWTSecret   string
	TokenTTL    time.Duration
	DatabaseURL string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	environment := os.Getenv("APP_ENV")
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		if environment == "production" {
			log.Fatal("JWT_SECRET_KEY must be set when APP_ENV=production")
		}
		log.Printf("JWT_SECRET_KEY not set, falling back to the insecure default; tokens are forgeable")
		secret = insecureDefaultSecret
	}

	return Config{
		Port:        port,
		Environment: environment,
		JWTSecret:   secret,
		TokenTTL:    time.Duration(readInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		DatabaseURL: os.Getenv("DB_DSN"),
	}
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
