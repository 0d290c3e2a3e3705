package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/roman-api/internal/config"
	"github.com/phrazzld/roman-api/internal/platform/metrics"
)

// application holds all the shared application dependencies.
// Nothing in it changes after construction, so handlers share it freely.
type application struct {
	config *config.Config
	logger *slog.Logger

	// nil when metrics are disabled
	metrics *metrics.Metrics
}

// newApplication wires the application's dependencies from cfg.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Metrics.Enabled {
		m, err := metrics.New()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
		app.metrics = m
	}

	return app, nil
}
