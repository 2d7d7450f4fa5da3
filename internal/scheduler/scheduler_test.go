package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"aiatlas/pkg/models"
	"aiatlas/pkg/news"
	"aiatlas/pkg/store"
)

type emptyFetcher struct{}

func (emptyFetcher) Fetch(context.Context, news.Feed) ([]news.Item, error) {
	return nil, nil
}

func TestStartRejectsInvalidCron(t *testing.T) {
	_, err := Start(context.Background(), "not a cron", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid collect cron expression")
}

func TestStartDefaultsCron(t *testing.T) {
	cancel, err := Start(context.Background(), "", news.NewCollector(emptyFetcher{}, nil))
	require.NoError(t, err)
	cancel()
}

func TestRunOnceSkipsWhenAutoUpdateOff(t *testing.T) {
	require.NoError(t, store.Open(t.TempDir()))
	t.Cleanup(func() { _ = store.Close() })

	// no stored config: defaults count as off, so the nil collector is never used
	runOnce(context.Background(), nil)

	cfg := models.DefaultAdminConfig()
	cfg.AutoUpdate = "off"
	require.NoError(t, store.PutAdminConfig(cfg))
	runOnce(context.Background(), nil)
}

func TestRunOnceCollectsWhenAutoUpdateOn(t *testing.T) {
	require.NoError(t, store.Open(t.TempDir()))
	t.Cleanup(func() { _ = store.Close() })

	cfg := models.DefaultAdminConfig()
	cfg.AutoUpdate = "on"
	require.NoError(t, store.PutAdminConfig(cfg))

	// a collector over empty feeds completes without storing anything
	runOnce(context.Background(), news.NewCollector(emptyFetcher{}, nil))

	n, err := store.CountNews()
	require.NoError(t, err)
	require.Zero(t, n)
}
