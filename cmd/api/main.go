package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindwell/wellness-backend/internal/api"
	"github.com/mindwell/wellness-backend/internal/auth"
	"github.com/mindwell/wellness-backend/internal/config"
	"github.com/mindwell/wellness-backend/internal/db"
	"github.com/mindwell/wellness-backend/internal/logger"
	"github.com/mindwell/wellness-backend/internal/metrics"
	"github.com/mindwell/wellness-backend/internal/repository/postgres"
	"github.com/mindwell/wellness-backend/internal/services"
	"github.com/mindwell/wellness-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:          cfg,
		TokenManager: tm,
		UserSvc:      services.NewUserService(repos.Users, repos.Moods, repos.Journals),
		MoodSvc:      services.NewMoodService(repos.Moods),
		JournalSvc:   services.NewJournalService(repos.Journals),
		ResourceSvc:  services.NewResourceService(repos.Resources, repos.Moods),
		NutritionSvc: services.NewNutritionService(repos.Nutrition, wp),
		ActivitySvc:  services.NewActivityService(repos.Activities),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
