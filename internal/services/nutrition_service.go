package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mindwell/wellness-backend/internal/api/validate"
	"github.com/mindwell/wellness-backend/internal/metrics"
	"github.com/mindwell/wellness-backend/internal/models"
	repo "github.com/mindwell/wellness-backend/internal/repository"
	"github.com/mindwell/wellness-backend/internal/worker"
)

type NutritionService struct {
	nutrition repo.Nutrition
	wp        *worker.Pool
	now       func() time.Time
}

func NewNutritionService(nutrition repo.Nutrition, wp *worker.Pool) *NutritionService {
	return &NutritionService{nutrition: nutrition, wp: wp, now: time.Now}
}

// refreshSummaryTx recomputes the one summary row for the day from the
// day's entries. Runs inside the caller's transaction so an entry write
// and its summary never commit separately.
func (s *NutritionService) refreshSummaryTx(tx pgx.Tx, userID string, date models.Date) error {
	meals, water, err := s.nutrition.DayTotalsTx(tx, userID, date)
	if err != nil {
		return err
	}
	_, err = s.nutrition.UpsertSummaryTx(tx, models.DailyNutritionSummary{
		UserID:            userID,
		SummaryDate:       date,
		TotalMeals:        meals,
		TotalWaterGlasses: water,
		MoodScore:         models.SummaryMood(meals, water),
	})
	return err
}

func (s *NutritionService) AddMeal(ctx context.Context, userID, name, mealType string) (models.NutritionEntry, error) {
	if err := validate.Collect(
		validate.Required("name", name),
		validate.Required("type", mealType),
	); err != nil {
		return models.NutritionEntry{}, err
	}

	now := s.now()
	today := models.NewDate(now)
	entry := models.NutritionEntry{
		UserID:    userID,
		EntryType: models.NutritionMeal,
		Name:      &name,
		MealType:  &mealType,
		EntryDate: today,
		EntryTime: now,
	}

	err := s.nutrition.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		entry, err = s.nutrition.CreateEntryTx(tx, entry)
		if err != nil {
			return err
		}
		return s.refreshSummaryTx(tx, userID, today)
	})
	if err != nil {
		return models.NutritionEntry{}, err
	}
	metrics.EntriesLogged.WithLabelValues("meal").Inc()
	return entry, nil
}

func (s *NutritionService) AddWater(ctx context.Context, userID string, glasses int) (models.NutritionEntry, error) {
	if glasses <= 0 {
		glasses = 1
	}

	now := s.now()
	today := models.NewDate(now)
	entry := models.NutritionEntry{
		UserID:       userID,
		EntryType:    models.NutritionWater,
		WaterGlasses: &glasses,
		EntryDate:    today,
		EntryTime:    now,
	}

	err := s.nutrition.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		entry, err = s.nutrition.CreateEntryTx(tx, entry)
		if err != nil {
			return err
		}
		return s.refreshSummaryTx(tx, userID, today)
	})
	if err != nil {
		return models.NutritionEntry{}, err
	}
	metrics.EntriesLogged.WithLabelValues("water").Inc()
	return entry, nil
}

type DailyNutrition struct {
	Date              string                       `json:"date"`
	Meals             []models.NutritionEntry      `json:"meals"`
	TotalWaterGlasses int                          `json:"total_water_glasses"`
	Summary           models.DailyNutritionSummary `json:"summary"`
}

func (s *NutritionService) Daily(ctx context.Context, userID string, date models.Date) (DailyNutrition, error) {
	meals, err := s.nutrition.ListByDate(userID, date, models.NutritionMeal)
	if err != nil {
		return DailyNutrition{}, err
	}
	if meals == nil {
		meals = []models.NutritionEntry{}
	}

	waterEntries, err := s.nutrition.ListByDate(userID, date, models.NutritionWater)
	if err != nil {
		return DailyNutrition{}, err
	}
	totalWater := 0
	for _, e := range waterEntries {
		if e.WaterGlasses != nil {
			totalWater += *e.WaterGlasses
		}
	}

	summary, err := s.nutrition.GetSummary(userID, date)
	if errors.Is(err, pgx.ErrNoRows) {
		err = s.nutrition.WithTx(ctx, func(tx pgx.Tx) error {
			summary, err = s.nutrition.UpsertSummaryTx(tx, models.DailyNutritionSummary{
				UserID:            userID,
				SummaryDate:       date,
				TotalMeals:        len(meals),
				TotalWaterGlasses: totalWater,
				MoodScore:         models.SummaryMood(len(meals), totalWater),
			})
			return err
		})
	}
	if err != nil {
		return DailyNutrition{}, err
	}

	return DailyNutrition{
		Date:              date.String(),
		Meals:             meals,
		TotalWaterGlasses: totalWater,
		Summary:           summary,
	}, nil
}

func (s *NutritionService) DeleteMeal(ctx context.Context, id, userID string) error {
	meal, err := s.nutrition.GetMeal(id, userID)
	if err != nil {
		return mapNoRows(err)
	}
	return s.nutrition.WithTx(ctx, func(tx pgx.Tx) error {
		if err := s.nutrition.DeleteMealTx(tx, id, userID); err != nil {
			return mapNoRows(err)
		}
		return s.refreshSummaryTx(tx, userID, meal.EntryDate)
	})
}

// ResetToday drops today's entries and summary in one transaction.
func (s *NutritionService) ResetToday(ctx context.Context, userID string) error {
	today := models.NewDate(s.now())
	return s.nutrition.WithTx(ctx, func(tx pgx.Tx) error {
		if err := s.nutrition.DeleteDayTx(tx, userID, today); err != nil {
			return err
		}
		return s.nutrition.DeleteSummaryTx(tx, userID, today)
	})
}

// RebuildSummaries re-derives the daily summaries for the user's recent
// entry dates. Each day is recomputed as an independent job on the worker
// pool; days are disjoint rows, so the last writer wins.
func (s *NutritionService) RebuildSummaries(userID string, days int) (int, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	since := models.NewDate(s.now()).AddDays(-days)
	dates, err := s.nutrition.EntryDatesSince(userID, since)
	if err != nil {
		return 0, err
	}
	for _, d := range dates {
		date := d
		s.wp.Submit(func() {
			err := s.nutrition.WithTx(context.Background(), func(tx pgx.Tx) error {
				return s.refreshSummaryTx(tx, userID, date)
			})
			if err != nil {
				slog.Error("summary rebuild", "user_id", userID, "date", date.String(), "err", err)
				metrics.SummaryRebuildFailures.Inc()
			}
		})
	}
	return len(dates), nil
}
