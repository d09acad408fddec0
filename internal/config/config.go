// Package config provides environment driven defaults for the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goseismic/internal/units"
	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvUnit      = "GOSEISMIC_UNIT"
	EnvOutputDir = "GOSEISMIC_OUTPUT_DIR"
)

// Config holds defaults applied when flags are not given.
type Config struct {
	Unit      string // Result unit symbol (kN, Ton, kg)
	OutputDir string // Directory for relative export paths
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment take precedence over .env values.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		Unit:      getenv(EnvUnit, "kN"),
		OutputDir: getenv(EnvOutputDir, "."),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if _, err := units.Parse(c.Unit); err != nil {
		return fmt.Errorf("config error: %s: %w", EnvUnit, err)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config error: %s must not be empty", EnvOutputDir)
	}
	return nil
}

// DefaultUnit returns the configured result unit.
func (c *Config) DefaultUnit() units.Unit {
	u, err := units.Parse(c.Unit)
	if err != nil {
		return units.KiloNewton
	}
	return u
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
