package app

import (
	"context"
	"fmt"
	"net/http"

	"aiatlas/internal/scheduler"
	"aiatlas/pkg/ai"
	"aiatlas/pkg/config"
	"aiatlas/pkg/logger"
	"aiatlas/pkg/news"
	"aiatlas/pkg/store"
)

// App encapsulates the server components and lifecycle.
type App struct {
	cfg       *config.Config
	addr      string
	dbPath    string
	sources   string
	version   string
	collector *news.Collector

	srv *http.Server
}

// New initializes resources that do not require a running context: logger,
// store and the collector. Call Run to start the scheduler and HTTP server.
func New(cfg *config.Config, addr, dbPath, sources, version string) (*App, error) {
	logger.InitWithLevel(cfg.Logging.Level)

	if err := store.Open(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", dbPath, err)
	}

	enricher := ai.New(cfg.AI.APIKey, cfg.AI.Model)
	if enricher == nil {
		logger.Info("enrichment_disabled")
	}
	collector := news.NewCollector(news.NewRSSFetcher(), enricher)

	return &App{
		cfg:       cfg,
		addr:      addr,
		dbPath:    dbPath,
		sources:   sources,
		version:   version,
		collector: collector,
	}, nil
}

// Run starts the collection scheduler and the HTTP server and blocks until
// ctx is canceled or a fatal server error occurs.
func (a *App) Run(ctx context.Context) error {
	cancelSched, err := scheduler.Start(ctx, a.cfg.Collect.Cron, a.collector)
	if err != nil {
		return err
	}
	defer cancelSched()

	a.printBanner()

	errCh := a.startHTTP(ctx)

	select {
	case <-ctx.Done():
		return store.Close()
	case err := <-errCh:
		_ = store.Close()
		return err
	}
}
