package api

import (
	"net/http"
	"time"

	"aiatlas/pkg/catalog"
	"aiatlas/pkg/store"
)

// handleGetStatus handles GET /status (admin): a live counts snapshot.
func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	eventCount, err := store.CountEvents()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	newsCount, err := store.CountNews()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"status": map[string]any{
			"events_count":        eventCount,
			"news_count":          newsCount,
			"roadmaps_count":      len(catalog.Roadmaps()),
			"irreversibles_count": len(catalog.Irreversibles()),
			"last_updated":        time.Now().UTC().Format(time.RFC3339),
		},
	})
}
