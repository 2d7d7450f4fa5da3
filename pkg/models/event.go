package models

// TimelineEvent is an admin-curated point on the civilization timeline.
// Events are created with a server-generated id and deleted by id; they are
// never updated in place. Only status "published" is externally visible.
type TimelineEvent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`   // display label, e.g. "2022-11"
	Period   string `json:"period,omitempty"`
	Category string `json:"category"` // Civilization | Science | Industry | Governance (free text allowed)

	WhatChanged             string `json:"what_changed"`
	WhyItMatters            string `json:"why_it_matters"`
	WhatBecamePossible      string `json:"what_became_possible"`
	NextTransitionCondition string `json:"next_transition_condition,omitempty"`

	Status    string `json:"status"` // "draft" | "published"
	CreatedAt string `json:"created_at,omitempty"`
}

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)
