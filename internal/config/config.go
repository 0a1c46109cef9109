// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	SourceMock     = "mock"
	SourcePostgres = "postgres"
)

type Config struct {
	Port            string        `validate:"required,numeric"`
	DataSource      string        `validate:"oneof=mock postgres"`
	DatabaseURL     string        `validate:"required_if=DataSource postgres"`
	MockSeed        uint64        `validate:"-"`
	MarathonCount   int           `validate:"gte=0"`
	GymCount        int           `validate:"gte=0"`
	GymBuddyCount   int           `validate:"gte=0"`
	DefaultRadiusKm float64       `validate:"gt=0"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	LogFormat       string        `validate:"oneof=json console"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads a .env file if one exists. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        Get("PORT", "3000"),
		DataSource:  strings.ToLower(Get("DATA_SOURCE", SourceMock)),
		DatabaseURL: Get("DATABASE_URL", ""),
		LogLevel:    strings.ToLower(Get("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(Get("LOG_FORMAT", "json")),
	}

	var err error
	if cfg.MockSeed, err = strconv.ParseUint(Get("MOCK_SEED", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("load config: MOCK_SEED: %w", err)
	}
	if cfg.MarathonCount, err = strconv.Atoi(Get("MARATHON_COUNT", "20")); err != nil {
		return nil, fmt.Errorf("load config: MARATHON_COUNT: %w", err)
	}
	if cfg.GymCount, err = strconv.Atoi(Get("GYM_COUNT", "30")); err != nil {
		return nil, fmt.Errorf("load config: GYM_COUNT: %w", err)
	}
	if cfg.GymBuddyCount, err = strconv.Atoi(Get("GYM_BUDDY_COUNT", "50")); err != nil {
		return nil, fmt.Errorf("load config: GYM_BUDDY_COUNT: %w", err)
	}
	if cfg.DefaultRadiusKm, err = strconv.ParseFloat(Get("DEFAULT_RADIUS_KM", "10"), 64); err != nil {
		return nil, fmt.Errorf("load config: DEFAULT_RADIUS_KM: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(Get("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("load config: SHUTDOWN_TIMEOUT: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
