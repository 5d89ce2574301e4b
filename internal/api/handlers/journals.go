package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mindwell/wellness-backend/internal/api/httpx"
	repo "github.com/mindwell/wellness-backend/internal/repository"
	"github.com/mindwell/wellness-backend/internal/services"
)

type JournalHandler struct {
	Journals *services.JournalService
}

func NewJournalHandler(journals *services.JournalService) *JournalHandler {
	return &JournalHandler{Journals: journals}
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in services.JournalInput
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	e, err := h.Journals.Create(uid, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"journal_entry": e})
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	f := repo.JournalFilter{
		Search: r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit", "20"),
		Offset: queryInt(r, "offset", "0"),
	}
	if raw := r.URL.Query().Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tags = append(f.Tags, t)
			}
		}
	}

	entries, err := h.Journals.List(uid, f)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"journal_entries": entries,
		"count":           len(entries),
	})
}

func (h *JournalHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	summary, err := h.Journals.Analytics(uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, summary)
}

func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	e, err := h.Journals.Get(chi.URLParam(r, "id"), uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"journal_entry": e})
}

func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in services.JournalUpdate
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	e, err := h.Journals.Update(chi.URLParam(r, "id"), uid, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"journal_entry": e})
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	if err := h.Journals.Delete(chi.URLParam(r, "id"), uid); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "journal entry deleted successfully"})
}
