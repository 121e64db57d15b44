// Package app contains the application setup for the catalog session.
package app

import (
	"log/slog"

	"github.com/avdeenko/catalog/internal/catalog"
	"github.com/avdeenko/catalog/internal/config"
	"github.com/avdeenko/catalog/internal/session"
)

type Dependencies struct {
	Store  catalog.Store
	Runner *session.Runner
	Logger *slog.Logger
}

// SetupDependencies wires the store and the session runner.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	store := catalog.NewMemoryStore()
	runner := session.NewRunner(store, cfg.Store.Seed, logger)

	return &Dependencies{
		Store:  store,
		Runner: runner,
		Logger: logger,
	}
}
