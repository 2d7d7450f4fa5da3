package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"aiatlas/pkg/logger"
	"aiatlas/pkg/models"
	"aiatlas/pkg/store"
)

// sampleEvents is served on /events/public when the store is unavailable so
// the public timeline never renders empty because of a backend outage.
var sampleEvents = []models.TimelineEvent{
	{
		ID:                 "chatgpt_launch",
		Title:              "ChatGPT 출시",
		Date:               "2022-11",
		Category:           "Civilization",
		WhatChanged:        "대화형 AI가 대중에게 접근 가능해짐",
		WhyItMatters:       "AI와의 자연어 상호작용이 일상화되는 시작점",
		WhatBecamePossible: "비전문가도 AI를 도구로 활용 가능",
		Status:             models.StatusPublished,
	},
	{
		ID:                 "gpt4_release",
		Title:              "GPT-4 발표",
		Date:               "2023-03",
		Category:           "Science",
		WhatChanged:        "멀티모달 능력과 추론 능력의 비약적 향상",
		WhyItMatters:       "전문가 수준의 작업 수행이 가능해짐",
		WhatBecamePossible: "복잡한 분석, 코딩, 창작 작업의 AI 위임",
		Status:             models.StatusPublished,
	},
	{
		ID:                 "agent_era",
		Title:              "AI 에이전트 시대 개막",
		Date:               "2025-01",
		Category:           "Science",
		WhatChanged:        "AI가 도구에서 자율적 행위자로 전환",
		WhyItMatters:       "인간 감독 없이 복잡한 작업 수행",
		WhatBecamePossible: "24/7 자율 운영, 멀티스텝 작업 자동화",
		Status:             models.StatusPublished,
	},
}

// handleGetEventsPublic handles GET /events/public and GET /timeline. A
// store failure on this public path is a deliberate fallback branch, not an
// error: the static samples are served and the failure is logged.
func (s *Server) handleGetEventsPublic(w http.ResponseWriter, r *http.Request) {
	events, err := store.ListEvents(models.StatusPublished)
	if err != nil {
		logger.Warn("public_events_fallback", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "events": sampleEvents})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "events": events})
}

// handleGetEvents handles GET /events (admin): all events, drafts included.
func (s *Server) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	events, err := store.ListEvents("")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "events": events})
}

// handleCreateEvent handles POST /events (admin).
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var body models.TimelineEvent
	decodeBody(r, &body)

	body.ID = "event_" + uuid.NewString()
	if body.Category == "" {
		body.Category = "Civilization"
	}
	body.Status = models.StatusPublished
	body.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := store.PutEvent(body); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	logger.Info("event_created", "id", body.ID, "title", body.Title)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "event": body})
}

// handleDeleteEvent handles DELETE /events/{id} (admin).
func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	id := mux.Vars(r)["id"]
	if err := store.DeleteEvent(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	logger.Info("event_deleted", "id", id)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
