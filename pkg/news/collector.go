// Package news implements the collection pipeline: fetch the configured
// feeds, extract a bounded number of items per feed, enrich each item via
// the text-generation service when configured, and persist the results.
// One bad feed never aborts a batch.
package news

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"aiatlas/pkg/ai"
	"aiatlas/pkg/logger"
	"aiatlas/pkg/models"
	"aiatlas/pkg/store"
	"aiatlas/pkg/telemetry"
)

const (
	maxItemsPerFeed = 3
	maxSummaryRunes = 500
	fetchTimeout    = 10 * time.Second
	enrichTimeout   = 30 * time.Second

	fallbackAnalysis = "AI 문명 관측소의 상세 분석이 준비 중입니다."
	fallbackComment  = "관측을 계속합니다."
)

// Item is one extracted feed entry before enrichment.
type Item struct {
	Title       string
	Link        string
	Description string
	Published   string
}

// Fetcher fetches and parses one feed into items.
type Fetcher interface {
	Fetch(ctx context.Context, feed Feed) ([]Item, error)
}

// RSSFetcher fetches feeds over HTTP using gofeed.
type RSSFetcher struct {
	parser *gofeed.Parser
}

func NewRSSFetcher() *RSSFetcher {
	return &RSSFetcher{parser: gofeed.NewParser()}
}

func (f *RSSFetcher) Fetch(ctx context.Context, feed Feed) ([]Item, error) {
	parsed, err := f.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		pub := ""
		if it.PublishedParsed != nil {
			pub = it.PublishedParsed.UTC().Format(time.RFC3339)
		} else if it.UpdatedParsed != nil {
			pub = it.UpdatedParsed.UTC().Format(time.RFC3339)
		}
		items = append(items, Item{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			Published:   pub,
		})
	}
	return items, nil
}

// Collector runs the news pipeline.
type Collector struct {
	fetcher  Fetcher
	enricher ai.Enricher // nil when no credential is configured
	limiter  *rate.Limiter
	now      func() time.Time
}

// NewCollector builds a collector. enricher may be nil; collection then
// always uses fallback enrichment.
func NewCollector(fetcher Fetcher, enricher ai.Enricher) *Collector {
	return &Collector{
		fetcher:  fetcher,
		enricher: enricher,
		// pace outbound fetches: one feed per second, small burst
		limiter: rate.NewLimiter(rate.Limit(1), 2),
		now:     time.Now,
	}
}

// Collect runs one collection pass over all configured feeds. Fetch and
// enrichment failures are recovered per feed/item; store failures are logged
// and the affected item is still included in the returned list.
func (c *Collector) Collect(ctx context.Context) []models.NewsItem {
	var out []models.NewsItem
	for _, feed := range Feeds() {
		if err := c.limiter.Wait(ctx); err != nil {
			logger.Warn("collect_canceled", "error", err)
			return out
		}
		items, err := c.collectFeed(ctx, feed)
		if err != nil {
			telemetry.FeedFailures.Inc()
			logger.Warn("feed_fetch_failed", "source", feed.Source, "url", feed.URL, "error", err)
			continue
		}
		telemetry.FeedsFetched.Inc()
		out = append(out, items...)
	}
	telemetry.ItemsCollected.Add(float64(len(out)))
	logger.Info("collect_finished", "items", len(out))
	return out
}

func (c *Collector) collectFeed(ctx context.Context, feed Feed) ([]models.NewsItem, error) {
	fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	items, err := c.fetcher.Fetch(fctx, feed)
	if err != nil {
		return nil, err
	}
	if len(items) > maxItemsPerFeed {
		items = items[:maxItemsPerFeed]
	}

	now := c.now().UTC()
	var out []models.NewsItem
	for _, it := range items {
		if it.Title == "" || it.Link == "" {
			continue
		}
		desc := truncate(it.Description, maxSummaryRunes)
		pub := it.Published
		if pub == "" {
			pub = now.Format(time.RFC3339)
		}

		item := models.NewsItem{
			ID:            "news_" + uuid.NewString(),
			Title:         it.Title,
			Source:        feed.Source,
			Category:      feed.Category,
			CategoryLabel: feed.CategoryLabel,
			URL:           it.Link,
			PublishedAt:   pub,
			Status:        models.StatusPublished,
			CreatedAt:     now.Format(time.RFC3339),
		}
		c.enrich(ctx, &item, it.Title, desc)

		// persist before moving to the next item; a store failure does not
		// remove the item from this run's result
		if err := store.PutNewsItem(item); err != nil {
			logger.Error("news_persist_failed", "id", item.ID, "error", err)
		}
		out = append(out, item)
	}
	return out, nil
}

// enrich fills the enrichment fields, falling back to deterministic text
// when no enricher is configured or the call fails.
func (c *Collector) enrich(ctx context.Context, item *models.NewsItem, title, desc string) {
	if c.enricher != nil {
		ectx, cancel := context.WithTimeout(ctx, enrichTimeout)
		defer cancel()
		e, err := c.enricher.Enrich(ectx, title, desc)
		if err == nil {
			item.Summary = e.Summary
			item.Analysis = e.Analysis
			item.Comment = e.Comment
			item.Perspective = e.Perspective
			return
		}
		logger.Warn("enrichment_failed", "title", title, "error", err)
	}
	telemetry.EnrichmentFallbacks.Inc()
	item.Summary = desc
	item.Analysis = fallbackAnalysis
	item.Comment = fallbackComment
	item.Perspective = ai.PerspectiveNeutral
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
