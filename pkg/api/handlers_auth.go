package api

import (
	"net/http"
	"time"

	"aiatlas/pkg/auth"
	"aiatlas/pkg/logger"
)

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "AI Civilization Atlas",
		"version":   s.opts.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleLogin handles POST /auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	decodeBody(r, &body)

	token, ok := auth.Login(body.Password, s.opts.AdminPassword)
	if !ok {
		logger.Warn("login_rejected")
		writeError(w, http.StatusUnauthorized, "Invalid password")
		return
	}
	logger.Info("login_accepted", "admin", s.opts.AdminID)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
	})
}
