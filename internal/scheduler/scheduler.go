// Package scheduler drives automatic news collection. A cron expression
// decides when collection runs; each tick is skipped unless the stored admin
// config has auto_update switched on.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"aiatlas/pkg/logger"
	"aiatlas/pkg/news"
	"aiatlas/pkg/store"
)

// Start validates the cron expression and starts the scheduler goroutine.
// An empty expression maps to a daily run at 06:00. Returns a cancel func.
func Start(ctx context.Context, cronExpr string, collector *news.Collector) (context.CancelFunc, error) {
	if cronExpr == "" {
		cronExpr = "0 6 * * *"
	}
	if !gronx.IsValid(cronExpr) {
		logger.Error("collect_invalid_cron", "cron", cronExpr)
		return nil, fmt.Errorf("invalid collect cron expression: %s", cronExpr)
	}

	logger.Info("collect_scheduler_started", "cron", cronExpr)
	ctx2, cancel := context.WithCancel(ctx)
	go run(ctx2, cronExpr, collector)
	return cancel, nil
}

// run computes the next tick with gronx and sleeps until it.
func run(ctx context.Context, cronExpr string, collector *news.Collector) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("collect_scheduler_stopping")
			return
		default:
		}

		now := time.Now().UTC()
		next, err := gronx.NextTickAfter(cronExpr, now, false)
		if err != nil {
			logger.Error("collect_nexttick_failed", "cron", cronExpr, "error", err)
			select {
			case <-time.After(30 * time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		select {
		case <-time.After(time.Until(next)):
			runOnce(ctx, collector)
		case <-ctx.Done():
			logger.Info("collect_scheduler_stopping")
			return
		}
	}
}

// runOnce triggers a collection pass when auto_update is on.
func runOnce(ctx context.Context, collector *news.Collector) {
	cfg, err := store.GetAdminConfig()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.Error("collect_config_read_failed", "error", err)
		return
	}
	if cfg.AutoUpdate != "on" {
		logger.Debug("collect_skipped_auto_update_off")
		return
	}
	items := collector.Collect(ctx)
	logger.Info("scheduled_collect_done", "items", len(items))
}
