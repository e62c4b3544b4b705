package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

// Config holds all configurable server parameters.
type Config struct {
	// InitialDeal is the number of cards dealt to a fresh board before the
	// top-up loop runs.
	InitialDeal int `json:"initial_deal"`

	// RoomCodeLength is the number of characters in generated room codes.
	RoomCodeLength int `json:"room_code_length"`

	MaxNameLength int `json:"max_name_length"`
	WSPort        int `json:"ws_port"`

	// DatabaseURL enables claim-history persistence when non-empty.
	// Usually supplied via the DATABASE_URL environment variable.
	DatabaseURL string `json:"database_url"`

	// MetricsEnabled controls whether /metrics is served.
	MetricsEnabled bool `json:"metrics_enabled"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		InitialDeal:    12,
		RoomCodeLength: 6,
		MaxNameLength:  24,
		WSPort:         8080,
		MetricsEnabled: true,
	}
}

// Load reads configuration from an optional config.json file,
// then applies environment variable overrides. Fields not set
// in either source retain their default values.
func Load() *Config {
	cfg := Defaults()

	if f, err := os.Open("config.json"); err == nil {
		defer f.Close()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			log.Printf("Warning: failed to parse config.json: %v", err)
		}
	}

	overrideInt(&cfg.InitialDeal, "INITIAL_DEAL")
	overrideInt(&cfg.RoomCodeLength, "ROOM_CODE_LENGTH")
	overrideInt(&cfg.MaxNameLength, "MAX_NAME_LENGTH")
	overrideInt(&cfg.WSPort, "WS_PORT")
	overrideString(&cfg.DatabaseURL, "DATABASE_URL")
	overrideBool(&cfg.MetricsEnabled, "METRICS_ENABLED")

	return cfg
}

func overrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*field = n
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}

func overrideString(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func overrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*field = b
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}
