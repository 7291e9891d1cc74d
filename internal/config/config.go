// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"sync"

	"capability-dispatch/internal/errors"
	"capability-dispatch/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Demo contains demo harness defaults
	Demo DemoConfig `json:"demo"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DemoConfig contains demo harness settings
type DemoConfig struct {
	// BasePrice is the list price used by the pricing demo
	BasePrice string `json:"base_price"`

	// CurrencySymbol prefixes printed amounts
	CurrencySymbol string `json:"currency_symbol"`

	// FanOutPolicy is the default broadcast failure policy
	// (fail-fast, best-effort)
	FanOutPolicy string `json:"fan_out_policy"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// ShowDetails shows per-provider detail lines
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1",
		Demo: DemoConfig{
			BasePrice:      "100.00",
			CurrencySymbol: "$",
			FanOutPolicy:   "fail-fast",
		},
		Output: OutputConfig{
			ShowDetails: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to read config file %s", path)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to parse config file %s", path)
	}

	return cfg, nil
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the current configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the current configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
