package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mindwell/wellness-backend/internal/api/httpx"
	"github.com/mindwell/wellness-backend/internal/models"
	"github.com/mindwell/wellness-backend/internal/services"
)

type NutritionHandler struct {
	Nutrition *services.NutritionService
}

func NewNutritionHandler(nutrition *services.NutritionService) *NutritionHandler {
	return &NutritionHandler{Nutrition: nutrition}
}

func (h *NutritionHandler) AddMeal(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Name     string `json:"name"`
		MealType string `json:"meal_type"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		writeBadRequest(w)
		return
	}
	e, err := h.Nutrition.AddMeal(r.Context(), uid, req.Name, req.MealType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"meal": e})
}

func (h *NutritionHandler) AddWater(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Glasses int `json:"glasses"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		writeBadRequest(w)
		return
	}
	e, err := h.Nutrition.AddWater(r.Context(), uid, req.Glasses)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"entry": e})
}

func (h *NutritionHandler) Daily(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	date := models.NewDate(time.Now())
	raw := chi.URLParam(r, "date")
	if raw == "" {
		raw = r.URL.Query().Get("date")
	}
	if raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_date", "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		date = d
	}

	daily, err := h.Nutrition.Daily(r.Context(), uid, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, daily)
}

func (h *NutritionHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	if err := h.Nutrition.DeleteMeal(r.Context(), chi.URLParam(r, "id"), uid); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "meal deleted successfully"})
}

func (h *NutritionHandler) ResetToday(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	if err := h.Nutrition.ResetToday(r.Context(), uid); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "today's nutrition log cleared"})
}

// RebuildSummaries re-derives the per-day summaries from raw entries on
// the background pool and responds immediately with the number of days
// queued.
func (h *NutritionHandler) RebuildSummaries(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	queued, err := h.Nutrition.RebuildSummaries(uid, queryInt(r, "days", "30"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, map[string]any{
		"message":     "summary rebuild queued",
		"days_queued": queued,
	})
}
