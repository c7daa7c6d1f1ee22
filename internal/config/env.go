package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first, without overriding variables
// already set by the shell.
//
// Recognized variables:
//
//	DATABASE_DSN, STORE_BACKEND, ADMIN_EMAIL, ADMIN_PASSWORD,
//	SECRET_KEY, SESSION_TOKEN_VALIDITY_MIN, LOG_LEVEL
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setString(&cfg.DatabaseDSN, "DATABASE_DSN")
	setString(&cfg.StoreBackend, "STORE_BACKEND")
	setString(&cfg.AdminEmail, "ADMIN_EMAIL")
	setString(&cfg.AdminPassword, "ADMIN_PASSWORD")
	setString(&cfg.SecretKey, "SECRET_KEY")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if v, ok := os.LookupEnv("SESSION_TOKEN_VALIDITY_MIN"); ok {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.SessionTokenValidity = time.Duration(minutes) * time.Minute
		}
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
