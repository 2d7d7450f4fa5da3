package models

// AdminConfig is the singleton site configuration, stored wholesale under a
// fixed sentinel key. Every update overwrites the full record.
type AdminConfig struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	AutoUpdate  string `json:"auto_update"`  // "on" | "off"
	ContentTone string `json:"content_tone"` // e.g. "analytical"
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// DefaultAdminConfig is returned when no config record has been stored yet.
func DefaultAdminConfig() AdminConfig {
	return AdminConfig{
		Title:       "AI Civilization Atlas",
		Subtitle:    "AI 문명 관측소",
		AutoUpdate:  "off",
		ContentTone: "analytical",
	}
}
