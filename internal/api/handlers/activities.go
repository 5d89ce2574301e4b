package handlers

import (
	"net/http"

	"github.com/mindwell/wellness-backend/internal/api/httpx"
	"github.com/mindwell/wellness-backend/internal/services"
)

type ActivityHandler struct {
	Activities *services.ActivityService
}

func NewActivityHandler(activities *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{Activities: activities}
}

func (h *ActivityHandler) CompleteExercise(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in services.ExerciseInput
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	s, err := h.Activities.CompleteExercise(uid, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"session": s})
}

func (h *ActivityHandler) ExerciseHistory(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	sessions, err := h.Activities.ExerciseHistory(uid, queryInt(r, "days", "7"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func (h *ActivityHandler) CompleteMeditation(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in services.MeditationInput
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	s, err := h.Activities.CompleteMeditation(uid, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"session": s})
}

func (h *ActivityHandler) MeditationHistory(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	sessions, err := h.Activities.MeditationHistory(uid, queryInt(r, "days", "7"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func (h *ActivityHandler) CompleteBreathing(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in services.BreathingInput
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	s, err := h.Activities.CompleteBreathing(uid, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"session": s})
}

func (h *ActivityHandler) BreathingHistory(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	sessions, err := h.Activities.BreathingHistory(uid, queryInt(r, "days", "7"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func (h *ActivityHandler) TodayStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	stats, err := h.Activities.Stats(uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"today": stats})
}
