package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindwell/wellness-backend/internal/api/httpx"
	repo "github.com/mindwell/wellness-backend/internal/repository"
	"github.com/mindwell/wellness-backend/internal/services"
)

type ResourceHandler struct {
	Resources *services.ResourceService
}

func NewResourceHandler(resources *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{Resources: resources}
}

func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repo.ResourceFilter{
		Category:   q.Get("category"),
		Type:       q.Get("type"),
		Difficulty: q.Get("difficulty"),
		Search:     q.Get("search"),
		Limit:      queryInt(r, "limit", "20"),
		Offset:     queryInt(r, "offset", "0"),
	}
	if q.Get("featured") == "true" {
		t := true
		f.Featured = &t
	}

	out, err := h.Resources.List(f)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"resources": out,
		"count":     len(out),
	})
}

func (h *ResourceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Resources.Categories()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cats == nil {
		cats = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

func (h *ResourceHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.Resources.Types()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if types == nil {
		types = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"types": types})
}

func (h *ResourceHandler) Featured(w http.ResponseWriter, r *http.Request) {
	out, err := h.Resources.Featured()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"featured_resources": out})
}

func (h *ResourceHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	rec, err := h.Resources.Recommended(uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rec)
}

func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.Resources.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"resource": res})
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ResourceInput
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	res, err := h.Resources.Create(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"resource": res})
}

func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in services.ResourceUpdate
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	res, err := h.Resources.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"resource": res})
}

func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Resources.Delete(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "resource deleted successfully"})
}
