// Package main runs the canned catalog session against an in-memory store.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avdeenko/catalog/internal/app"
	"github.com/avdeenko/catalog/internal/config"
	"github.com/avdeenko/catalog/pkg/bootstrap"
	"github.com/avdeenko/catalog/pkg/config/configloader"
	"github.com/spf13/pflag"
)

const serviceName = "catalog"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run loads the configuration, sets up the store and executes the session.
func run(ctx context.Context) error {
	configFile := pflag.StringP("config", "c", "config.yaml", "path to the configuration file")
	pflag.Parse()

	cfg, cfgErr := configloader.Load[*config.Config](serviceName, *configFile, config.Defaults())
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	deps := app.SetupDependencies(cfg, logger)

	if err := deps.Runner.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}
