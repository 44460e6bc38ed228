package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTPPort    string `mapstructure:"HTTP_PORT"`
	DBDriver    string `mapstructure:"DB_DRIVER"`
	DatabaseDSN string `mapstructure:"DATABASE_DSN"`
	DBDebug     bool   `mapstructure:"DB_DEBUG"`
	SeedOnStart bool   `mapstructure:"SEED_ON_START"` // insert sample rows into an empty store at startup
	CORSOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var defaults = map[string]any{
	"HTTP_PORT":            "5000",
	"DB_DRIVER":            DriverSQLite,
	"DATABASE_DSN":         "warehouse.db?_foreign_keys=on",
	"DB_DEBUG":             false,
	"SEED_ON_START":        true,
	"CORS_ALLOWED_ORIGINS": "*",
}

// Load reads configuration from the environment, after loading .env if present.
// Precedence: process env > .env > defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, def := range defaults {
		v.SetDefault(key, def)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config could not be decoded: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if cfg.DBDriver != DriverSQLite && cfg.DBDriver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.DBDriver, DriverSQLite, DriverPostgres)
	}
	if strings.TrimSpace(cfg.DatabaseDSN) == "" {
		return nil, fmt.Errorf("DATABASE_DSN is empty")
	}

	if cfg.CORSOrigins == "*" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is '*', every origin may read /api.")
	}
	log.Printf("[config] HTTP_PORT=%s DB_DRIVER=%s SEED_ON_START=%t", cfg.HTTPPort, cfg.DBDriver, cfg.SeedOnStart)

	return cfg, nil
}
