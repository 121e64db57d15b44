package config

import (
	"fmt"
	"strings"
)

// StoreConfig controls how the catalog store is initialized.
type StoreConfig struct {
	// Seed populates the store with the sample product set before the
	// session commands run.
	Seed bool `koanf:"seed"`
}

// String returns a string representation of the store configuration.
func (c *StoreConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  seed: %t\n", c.Seed))
	return b.String()
}

func (c *StoreConfig) Validate() error {
	return nil
}
