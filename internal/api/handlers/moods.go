package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindwell/wellness-backend/internal/api/httpx"
	"github.com/mindwell/wellness-backend/internal/services"
)

type MoodHandler struct {
	Moods *services.MoodService
}

func NewMoodHandler(moods *services.MoodService) *MoodHandler {
	return &MoodHandler{Moods: moods}
}

func (h *MoodHandler) Log(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in services.MoodInput
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	e, err := h.Moods.Log(uid, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"mood_entry": e})
}

func (h *MoodHandler) History(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	days := queryInt(r, "days", "0")
	limit := queryInt(r, "limit", "20")
	offset := queryInt(r, "offset", "0")

	entries, err := h.Moods.History(uid, days, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"mood_entries": entries,
		"count":        len(entries),
	})
}

func (h *MoodHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	overview, err := h.Moods.Analytics(uid, queryInt(r, "days", "30"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, overview)
}

func (h *MoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	e, err := h.Moods.Get(chi.URLParam(r, "id"), uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"mood_entry": e})
}

func (h *MoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in services.MoodUpdate
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	e, err := h.Moods.Update(chi.URLParam(r, "id"), uid, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"mood_entry": e})
}

func (h *MoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	if err := h.Moods.Delete(chi.URLParam(r, "id"), uid); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "mood entry deleted successfully"})
}
