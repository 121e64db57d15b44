// Package config defines the configuration of the catalog application.
package config

import (
	"strings"

	"github.com/avdeenko/catalog/pkg/config"
	"github.com/avdeenko/catalog/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Log   config.LogConfig   `koanf:"log"`
	Store config.StoreConfig `koanf:"store"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"store.seed": true,
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.Log.String())
	b.WriteString(c.Store.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return nil
}
