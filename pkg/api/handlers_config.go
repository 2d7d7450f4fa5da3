package api

import (
	"errors"
	"net/http"
	"time"

	"aiatlas/pkg/models"
	"aiatlas/pkg/store"
)

// handleGetConfig handles GET /config (admin). A never-written config is not
// an error; the compiled defaults are returned instead.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	raw, err := store.GetAdminConfigRaw()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"config":  models.DefaultAdminConfig(),
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// echo the stored document as-is, with store numerics coerced
	doc, err := decodeDocument(raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "config": doc})
}

// handleUpdateConfig handles PUT /config (admin). The record is overwritten
// wholesale; absent body fields fall back to the defaults.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var body models.AdminConfig
	decodeBody(r, &body)

	def := models.DefaultAdminConfig()
	if body.Title == "" {
		body.Title = def.Title
	}
	if body.Subtitle == "" {
		body.Subtitle = def.Subtitle
	}
	if body.AutoUpdate == "" {
		body.AutoUpdate = def.AutoUpdate
	}
	if body.ContentTone == "" {
		body.ContentTone = def.ContentTone
	}
	body.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := store.PutAdminConfig(body); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "config": body})
}
