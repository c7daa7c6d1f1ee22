package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jruiz-dev/trendyshop/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in minutes so config files stay plain numbers.
type jsonConfig struct {
	DatabaseDSN             string `json:"database_dsn"`
	StoreBackend            string `json:"store_backend"`
	AdminEmail              string `json:"admin_email"`
	AdminPassword           string `json:"admin_password"`
	SecretKey               string `json:"secret_key"`
	SessionTokenValidityMin int    `json:"session_token_validity_min"`
	LogLevel                string `json:"log_level"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c / -config flags; when absent nothing is loaded.
// Empty fields in the file leave the current value untouched.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.StoreBackend != "" {
		cfg.StoreBackend = jc.StoreBackend
	}
	if jc.AdminEmail != "" {
		cfg.AdminEmail = jc.AdminEmail
	}
	if jc.AdminPassword != "" {
		cfg.AdminPassword = jc.AdminPassword
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.SessionTokenValidityMin > 0 {
		cfg.SessionTokenValidity = time.Duration(jc.SessionTokenValidityMin) * time.Minute
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
