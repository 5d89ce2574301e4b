package services

import (
	"time"

	"github.com/mindwell/wellness-backend/internal/analytics"
	"github.com/mindwell/wellness-backend/internal/api/validate"
	"github.com/mindwell/wellness-backend/internal/metrics"
	"github.com/mindwell/wellness-backend/internal/models"
	repo "github.com/mindwell/wellness-backend/internal/repository"
)

const defaultAnalyticsDays = 30

type MoodService struct {
	moods repo.Moods
	now   func() time.Time
}

func NewMoodService(moods repo.Moods) *MoodService {
	return &MoodService{moods: moods, now: time.Now}
}

type MoodInput struct {
	MoodScore   int      `json:"mood_score"`
	MoodLabel   string   `json:"mood_label"`
	Notes       *string  `json:"notes"`
	Activities  []string `json:"activities"`
	SleepHours  *float64 `json:"sleep_hours"`
	StressLevel *int     `json:"stress_level"`
	EnergyLevel *int     `json:"energy_level"`
}

func (in MoodInput) validate() error {
	checks := []*validate.ErrField{
		validate.Required("mood_label", in.MoodLabel),
		validate.IntRange("mood_score", in.MoodScore, 1, 10),
	}
	if in.StressLevel != nil {
		checks = append(checks, validate.IntRange("stress_level", *in.StressLevel, 1, 10))
	}
	if in.EnergyLevel != nil {
		checks = append(checks, validate.IntRange("energy_level", *in.EnergyLevel, 1, 10))
	}
	return validate.Collect(checks...)
}

func (s *MoodService) Log(userID string, in MoodInput) (models.MoodEntry, error) {
	if err := in.validate(); err != nil {
		return models.MoodEntry{}, err
	}
	e, err := s.moods.Create(models.MoodEntry{
		UserID:      userID,
		MoodScore:   in.MoodScore,
		MoodLabel:   in.MoodLabel,
		Notes:       in.Notes,
		Activities:  in.Activities,
		SleepHours:  in.SleepHours,
		StressLevel: in.StressLevel,
		EnergyLevel: in.EnergyLevel,
	})
	if err != nil {
		return models.MoodEntry{}, err
	}
	metrics.EntriesLogged.WithLabelValues("mood").Inc()
	return e, nil
}

// History returns entries newest first, optionally limited to the last
// days days.
func (s *MoodService) History(userID string, days, limit, offset int) ([]models.MoodEntry, error) {
	var since *time.Time
	if days > 0 {
		t := s.now().AddDate(0, 0, -days)
		since = &t
	}
	if limit <= 0 {
		limit = 20
	}
	entries, err := s.moods.ListByUser(userID, since, limit, offset)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	return entries, nil
}

func (s *MoodService) Get(id, userID string) (models.MoodEntry, error) {
	e, err := s.moods.GetByID(id, userID)
	return e, mapNoRows(err)
}

type MoodUpdate struct {
	MoodScore   *int      `json:"mood_score"`
	MoodLabel   *string   `json:"mood_label"`
	Notes       *string   `json:"notes"`
	Activities  *[]string `json:"activities"`
	SleepHours  *float64  `json:"sleep_hours"`
	StressLevel *int      `json:"stress_level"`
	EnergyLevel *int      `json:"energy_level"`
}

func (s *MoodService) Update(id, userID string, in MoodUpdate) (models.MoodEntry, error) {
	e, err := s.moods.GetByID(id, userID)
	if err != nil {
		return models.MoodEntry{}, mapNoRows(err)
	}

	if in.MoodScore != nil {
		if !models.ValidMoodScore(*in.MoodScore) {
			return models.MoodEntry{}, validate.Errs{{Field: "mood_score", Msg: "must be between 1 and 10"}}
		}
		e.MoodScore = *in.MoodScore
	}
	if in.MoodLabel != nil {
		e.MoodLabel = *in.MoodLabel
	}
	if in.Notes != nil {
		e.Notes = in.Notes
	}
	if in.Activities != nil {
		e.Activities = *in.Activities
	}
	if in.SleepHours != nil {
		e.SleepHours = in.SleepHours
	}
	if in.StressLevel != nil {
		if !models.ValidMoodScore(*in.StressLevel) {
			return models.MoodEntry{}, validate.Errs{{Field: "stress_level", Msg: "must be between 1 and 10"}}
		}
		e.StressLevel = in.StressLevel
	}
	if in.EnergyLevel != nil {
		if !models.ValidMoodScore(*in.EnergyLevel) {
			return models.MoodEntry{}, validate.Errs{{Field: "energy_level", Msg: "must be between 1 and 10"}}
		}
		e.EnergyLevel = in.EnergyLevel
	}

	if err := s.moods.Update(e); err != nil {
		return models.MoodEntry{}, mapNoRows(err)
	}
	return s.moods.GetByID(id, userID)
}

func (s *MoodService) Delete(id, userID string) error {
	return mapNoRows(s.moods.Delete(id, userID))
}

// Analytics computes the derived mood aggregates. The average, streak,
// trend and distribution run over the full history; days narrows only the
// chart series (default 30).
func (s *MoodService) Analytics(userID string, days int) (analytics.MoodOverview, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	now := s.now()

	all, err := s.moods.ListByUser(userID, nil, 0, 0)
	if err != nil {
		return analytics.MoodOverview{}, err
	}
	since := now.AddDate(0, 0, -days)
	windowed, err := s.moods.ListByUser(userID, &since, 0, 0)
	if err != nil {
		return analytics.MoodOverview{}, err
	}

	metrics.AnalyticsComputed.WithLabelValues("mood").Inc()
	return analytics.SummarizeMood(all, windowed, now), nil
}
