package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mindwell/wellness-backend/internal/api/handlers"
	"github.com/mindwell/wellness-backend/internal/auth"
	"github.com/mindwell/wellness-backend/internal/config"
	"github.com/mindwell/wellness-backend/internal/metrics"
	"github.com/mindwell/wellness-backend/internal/middleware"
	"github.com/mindwell/wellness-backend/internal/services"
)

type RouterDeps struct {
	Cfg          config.Config
	TokenManager *auth.TokenManager
	UserSvc      *services.UserService
	MoodSvc      *services.MoodService
	JournalSvc   *services.JournalService
	ResourceSvc  *services.ResourceService
	NutritionSvc *services.NutritionService
	ActivitySvc  *services.ActivityService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.HTTPMetrics)

	authHandler := handlers.NewAuthHandler(d.TokenManager, d.UserSvc)
	userHandler := handlers.NewUserHandler(d.UserSvc)
	moodHandler := handlers.NewMoodHandler(d.MoodSvc)
	journalHandler := handlers.NewJournalHandler(d.JournalSvc)
	resourceHandler := handlers.NewResourceHandler(d.ResourceSvc)
	nutritionHandler := handlers.NewNutritionHandler(d.NutritionSvc)
	activityHandler := handlers.NewActivityHandler(d.ActivitySvc)

	guard := middleware.NewAuthMiddleware(d.TokenManager, d.Cfg.Env)

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(guard.Auth)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			// ---------- users ----------
			r.Get("/users/profile", userHandler.GetProfile)
			r.Put("/users/profile", userHandler.UpdateProfile)
			r.Put("/users/password", userHandler.ChangePassword)
			r.Get("/users/stats", userHandler.Stats)
			r.Get("/users/export", userHandler.Export)
			r.Delete("/users/account", userHandler.DeleteAccount)

			// ---------- moods ----------
			r.Post("/moods", moodHandler.Log)
			r.Get("/moods", moodHandler.History)
			r.Get("/moods/analytics", moodHandler.Analytics)
			r.Get("/moods/{id}", moodHandler.Get)
			r.Put("/moods/{id}", moodHandler.Update)
			r.Delete("/moods/{id}", moodHandler.Delete)

			// ---------- journals ----------
			r.Post("/journals", journalHandler.Create)
			r.Get("/journals", journalHandler.List)
			r.Get("/journals/analytics", journalHandler.Analytics)
			r.Get("/journals/{id}", journalHandler.Get)
			r.Put("/journals/{id}", journalHandler.Update)
			r.Delete("/journals/{id}", journalHandler.Delete)

			// ---------- resources ----------
			r.Get("/resources", resourceHandler.List)
			r.Get("/resources/categories", resourceHandler.Categories)
			r.Get("/resources/types", resourceHandler.Types)
			r.Get("/resources/featured", resourceHandler.Featured)
			r.Get("/resources/recommended", resourceHandler.Recommended)
			r.Get("/resources/{id}", resourceHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("admin"))
				r.Post("/resources", resourceHandler.Create)
				r.Put("/resources/{id}", resourceHandler.Update)
				r.Delete("/resources/{id}", resourceHandler.Delete)
			})

			// ---------- nutrition ----------
			r.Post("/nutrition/meals", nutritionHandler.AddMeal)
			r.Post("/nutrition/water", nutritionHandler.AddWater)
			r.Get("/nutrition/daily", nutritionHandler.Daily)
			r.Get("/nutrition/daily/{date}", nutritionHandler.Daily)
			r.Delete("/nutrition/meals/{id}", nutritionHandler.DeleteMeal)
			r.Post("/nutrition/reset", nutritionHandler.ResetToday)
			r.Post("/nutrition/summaries/rebuild", nutritionHandler.RebuildSummaries)

			// ---------- activities ----------
			r.Post("/activities/exercise", activityHandler.CompleteExercise)
			r.Get("/activities/exercise", activityHandler.ExerciseHistory)
			r.Post("/activities/meditation", activityHandler.CompleteMeditation)
			r.Get("/activities/meditation", activityHandler.MeditationHistory)
			r.Post("/activities/breathing", activityHandler.CompleteBreathing)
			r.Get("/activities/breathing", activityHandler.BreathingHistory)
			r.Get("/activities/stats", activityHandler.TodayStats)
		})
	})

	return r
}
