package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"aiatlas/pkg/auth"
	"aiatlas/pkg/logger"
	"aiatlas/pkg/models"
	"aiatlas/pkg/script"
	"aiatlas/pkg/store"
)

const newsLatestLimit = 8

// handleGetNewsLatest handles GET /news/latest: the newest published items,
// capped at newsLatestLimit.
func (s *Server) handleGetNewsLatest(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListNews(models.StatusPublished)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(items) > newsLatestLimit {
		items = items[:newsLatestLimit]
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "news": items})
}

// handleGetNews handles GET /news: every stored item regardless of status.
func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListNews("")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "news": items})
}

// handleCollectNews handles POST /news/collect. Accepted from an external
// cron runner presenting the configured collect token, or from an admin
// bearer. Without a configured token the header grants nothing.
func (s *Server) handleCollectNews(w http.ResponseWriter, r *http.Request) {
	scheduled := s.opts.CollectToken != "" &&
		subtle.ConstantTimeCompare([]byte(r.Header.Get("X-Collect-Token")), []byte(s.opts.CollectToken)) == 1
	if !scheduled && !auth.VerifyRequest(r, s.opts.AdminPassword) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if s.opts.Collector == nil {
		writeError(w, http.StatusInternalServerError, "collector not configured")
		return
	}
	logger.Info("collect_triggered", "scheduled", scheduled)
	items := s.opts.Collector.Collect(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"collected": len(items),
		"news":      items,
	})
}

// handleGetNewsScript handles GET /news/script: a narration script over the
// latest published items.
func (s *Server) handleGetNewsScript(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListNews(models.StatusPublished)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := script.Generate(items, time.Now())
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "script": out})
}
