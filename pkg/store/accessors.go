package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"aiatlas/pkg/models"
)

// Key layout. Every entity carries a partition key equal to its logical id.
const (
	adminConfigKey = "config:ADMIN_CONFIG"
	eventPrefix    = "event:"
	newsPrefix     = "news:"
)

// GetAdminConfig returns the stored admin config, or ErrNotFound when it was
// never written.
func GetAdminConfig() (models.AdminConfig, error) {
	var cfg models.AdminConfig
	b, err := get(adminConfigKey)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid stored config: %w", err)
	}
	return cfg, nil
}

// GetAdminConfigRaw returns the stored config document verbatim so the API
// can echo fields it does not model, or ErrNotFound.
func GetAdminConfigRaw() ([]byte, error) {
	return get(adminConfigKey)
}

// PutAdminConfig overwrites the singleton config record wholesale.
func PutAdminConfig(cfg models.AdminConfig) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return set(adminConfigKey, b)
}

// GetEvent returns one timeline event by id, or ErrNotFound.
func GetEvent(id string) (models.TimelineEvent, error) {
	var ev models.TimelineEvent
	b, err := get(eventPrefix + id)
	if err != nil {
		return ev, err
	}
	if err := json.Unmarshal(b, &ev); err != nil {
		return ev, fmt.Errorf("invalid stored event: %w", err)
	}
	return ev, nil
}

// PutEvent stores an event under its id, overwriting any previous value.
func PutEvent(ev models.TimelineEvent) error {
	if ev.ID == "" {
		return fmt.Errorf("event id required")
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return set(eventPrefix+ev.ID, b)
}

// DeleteEvent removes an event by id. Missing ids are not an error.
func DeleteEvent(id string) error {
	return del(eventPrefix + id)
}

// ListEvents scans all events. When status is non-empty only events with an
// equal status field are returned. The result is sorted by date label,
// newest first.
func ListEvents(status string) ([]models.TimelineEvent, error) {
	raw, err := scanPrefix(eventPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]models.TimelineEvent, 0, len(raw))
	for _, b := range raw {
		var ev models.TimelineEvent
		if err := json.Unmarshal(b, &ev); err != nil {
			continue
		}
		if status != "" && ev.Status != status {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// PutNewsItem stores a news item under its id.
func PutNewsItem(item models.NewsItem) error {
	if item.ID == "" {
		return fmt.Errorf("news id required")
	}
	b, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal news item: %w", err)
	}
	return set(newsPrefix+item.ID, b)
}

// ListNews scans all news items, optionally filtered by status, sorted by
// publish date descending.
func ListNews(status string) ([]models.NewsItem, error) {
	raw, err := scanPrefix(newsPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]models.NewsItem, 0, len(raw))
	for _, b := range raw {
		var item models.NewsItem
		if err := json.Unmarshal(b, &item); err != nil {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt > out[j].PublishedAt })
	return out, nil
}

// CountEvents returns the number of stored events regardless of status.
func CountEvents() (int, error) {
	raw, err := scanPrefix(eventPrefix)
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}

// CountNews returns the number of stored news items.
func CountNews() (int, error) {
	raw, err := scanPrefix(newsPrefix)
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}
