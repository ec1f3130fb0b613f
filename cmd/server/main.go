// Package main implements the entry point for the saju API server, which
// calculates four-pillar birth charts, five-element profiles and star
// readings over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/saju-api/internal/config"
	"github.com/phrazzld/saju-api/internal/platform/logger"
)

// main is the entry point for the saju-api server.
// It loads configuration, sets up logging, wires the services and runs the
// HTTP server until SIGINT or SIGTERM.
func main() {
	cfg, log, err := initializeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(cfg, log)
	if err != nil {
		log.Error("Failed to create application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up the logger.
// Returns the loaded config, the logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat)

	return cfg, log, nil
}

// loadConfig reads the file named by SAJU_CONFIG_FILE when it is set and
// falls back to the default sources otherwise.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv(config.FileEnv); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}
