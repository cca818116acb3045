// Package config loads library settings from ALGEBRA_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. ALGEBRA_REAL_EPSILON.
const Prefix = "ALGEBRA"

var (
	// ErrBadEpsilon reports a non-positive real tolerance.
	ErrBadEpsilon = errors.New("config: real epsilon must be > 0")

	// ErrBadCayleyOrder reports a non-positive Cayley table limit.
	ErrBadCayleyOrder = errors.New("config: max cayley order must be > 0")
)

// Config holds all library configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`

	// RealEpsilon is the tolerance of the float-backed real field.
	RealEpsilon float64 `envconfig:"REAL_EPSILON" default:"1e-12"`

	// MaxCayleyOrder bounds the structures tabulated by CayleyTable.
	MaxCayleyOrder int `envconfig:"MAX_CAYLEY_ORDER" default:"256"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns Default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:       "info",
		RealEpsilon:    1e-12,
		MaxCayleyOrder: 256,
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.RealEpsilon <= 0 {
		return fmt.Errorf("config: %g: %w", c.RealEpsilon, ErrBadEpsilon)
	}
	if c.MaxCayleyOrder <= 0 {
		return fmt.Errorf("config: %d: %w", c.MaxCayleyOrder, ErrBadCayleyOrder)
	}
	return nil
}
