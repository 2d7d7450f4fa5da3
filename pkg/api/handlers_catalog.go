package api

import (
	"net/http"

	"aiatlas/pkg/catalog"
)

// The catalog endpoints are pure reads over compiled tables; they have no
// failure modes and are byte-stable across calls within a process lifetime.

func (s *Server) handleGetRoadmaps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"roadmaps": catalog.Roadmaps(),
	})
}

func (s *Server) handleGetIrreversibles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"irreversibles": catalog.Irreversibles(),
	})
}

func (s *Server) handleGetOutlook(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"scenarios": catalog.Scenarios(),
		"epochs":    catalog.Epochs(),
	})
}

func (s *Server) handleGetGovernance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"governance_shift": catalog.GovernanceShift(),
	})
}
