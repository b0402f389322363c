// Package config defines the application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/grocerly/inventory/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Log   LogConfig   `koanf:"log"`
	Store StoreConfig `koanf:"store"`
	Seed  SeedConfig  `koanf:"seed"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type StoreConfig struct {
	// LowStockThreshold is applied to products created through the console
	// when the user accepts the default.
	LowStockThreshold int `koanf:"low_stock_threshold"`
}

type SeedConfig struct {
	// File is an optional YAML file of suppliers and products loaded into
	// the store at startup.
	File string `koanf:"file"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Store Configuration ---\n")
	b.WriteString(fmt.Sprintf("  store.low_stock_threshold: %d\n", c.Store.LowStockThreshold))

	b.WriteString("\n--- Startup Data ---\n")
	if c.Seed.File == "" {
		b.WriteString("  seed.file: <none>\n")
	} else {
		b.WriteString(fmt.Sprintf("  seed.file: %s\n", c.Seed.File))
	}

	b.WriteString("\n--- Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))

	return b.String()
}

// Validate checks the configuration values and fills defaults.
func (c *Config) Validate() error {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Store.LowStockThreshold == 0 {
		c.Store.LowStockThreshold = 5
	}
	if c.Store.LowStockThreshold < 0 {
		return fmt.Errorf("store.low_stock_threshold cannot be negative")
	}
	return nil
}
