package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/phrazzld/saju-api/internal/config"
	"github.com/phrazzld/saju-api/internal/domain/elements"
	"github.com/phrazzld/saju-api/internal/domain/pillars"
	"github.com/phrazzld/saju-api/internal/domain/stars"
	"github.com/phrazzld/saju-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Service interfaces
	readingService service.ReadingService
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.readingService, err = service.NewReadingService(
		pillars.NewDefaultService(),
		elements.NewDefaultService(),
		stars.NewDefaultService(),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reading service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"star_rules", len(stars.RuleNames()))
	return app, nil
}

// Run starts the application server and blocks until ctx is canceled or
// the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", app.config.Server.Port, err)
	}

	if err := app.serve(ctx, ln, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
