package models

// NewsItem is one collected and (optionally) AI-enriched news entry. Items
// are created exclusively by the collector and never mutated afterwards.
type NewsItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Source        string `json:"source"`
	Category      string `json:"category"`       // feed category key, e.g. "industry"
	CategoryLabel string `json:"category_label"` // Korean display label, e.g. "산업"
	Summary       string `json:"summary"`
	Analysis      string `json:"analysis"`
	Comment       string `json:"comment"`
	Perspective   string `json:"perspective"` // 낙관 | 중립 | 신중
	URL           string `json:"url"`
	PublishedAt   string `json:"published_at"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at,omitempty"`
}
