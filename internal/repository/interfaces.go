package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mindwell/wellness-backend/internal/models"
)

type Users interface {
	Create(u models.User) (models.User, error)
	GetByID(id string) (models.User, error)
	// GetByLogin resolves a user by username or email.
	GetByLogin(login string) (models.User, error)
	UsernameTaken(username string) (bool, error)
	EmailTaken(email, excludeID string) (bool, error)
	Update(u models.User) error
	UpdatePassword(id, hash string) error
	Delete(id string) error
}

type Moods interface {
	Create(e models.MoodEntry) (models.MoodEntry, error)
	GetByID(id, userID string) (models.MoodEntry, error)
	// ListByUser returns entries newest first. since narrows to entries
	// created at or after it; nil means the full history.
	ListByUser(userID string, since *time.Time, limit, offset int) ([]models.MoodEntry, error)
	Count(userID string, since *time.Time) (int, error)
	Update(e models.MoodEntry) error
	Delete(id, userID string) error
}

type JournalFilter struct {
	Search string
	Tags   []string
	Limit  int
	Offset int
}

type Journals interface {
	Create(e models.JournalEntry) (models.JournalEntry, error)
	GetByID(id, userID string) (models.JournalEntry, error)
	List(userID string, f JournalFilter) ([]models.JournalEntry, error)
	ListAll(userID string) ([]models.JournalEntry, error)
	Count(userID string, since *time.Time) (int, error)
	Update(e models.JournalEntry) error
	Delete(id, userID string) error
}

type ResourceFilter struct {
	Category   string
	Type       string
	Difficulty string
	Search     string
	Featured   *bool
	Limit      int
	Offset     int
}

type Resources interface {
	Create(r models.Resource) (models.Resource, error)
	// GetActive returns only active resources; inactive ones are invisible
	// to readers.
	GetActive(id string) (models.Resource, error)
	GetByID(id string) (models.Resource, error)
	List(f ResourceFilter) ([]models.Resource, error)
	Categories() ([]string, error)
	Types() ([]string, error)
	Featured(limit int) ([]models.Resource, error)
	// ActiveByCategories returns active resources in any of the given
	// categories, newest first.
	ActiveByCategories(categories []string, limit int) ([]models.Resource, error)
	Update(r models.Resource) error
	Delete(id string) error
}

type Nutrition interface {
	// WithTx runs fn inside one database transaction; any error rolls the
	// whole block back.
	WithTx(ctx context.Context, fn func(pgx.Tx) error) error

	CreateEntryTx(tx pgx.Tx, e models.NutritionEntry) (models.NutritionEntry, error)
	ListByDate(userID string, date models.Date, entryType string) ([]models.NutritionEntry, error)
	GetMeal(id, userID string) (models.NutritionEntry, error)
	DeleteMealTx(tx pgx.Tx, id, userID string) error
	DeleteDayTx(tx pgx.Tx, userID string, date models.Date) error
	DayTotalsTx(tx pgx.Tx, userID string, date models.Date) (meals, waterGlasses int, err error)

	GetSummary(userID string, date models.Date) (models.DailyNutritionSummary, error)
	UpsertSummaryTx(tx pgx.Tx, s models.DailyNutritionSummary) (models.DailyNutritionSummary, error)
	DeleteSummaryTx(tx pgx.Tx, userID string, date models.Date) error
	EntryDatesSince(userID string, since models.Date) ([]models.Date, error)
}

type Activities interface {
	CreateExercise(s models.ExerciseSession) (models.ExerciseSession, error)
	ListExercises(userID string, since models.Date) ([]models.ExerciseSession, error)
	CreateMeditation(s models.MeditationSession) (models.MeditationSession, error)
	ListMeditations(userID string, since models.Date) ([]models.MeditationSession, error)
	CreateBreathing(s models.BreathingSession) (models.BreathingSession, error)
	ListBreathing(userID string, since models.Date) ([]models.BreathingSession, error)
}
