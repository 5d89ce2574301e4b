package services

import (
	"math"
	"time"

	"github.com/mindwell/wellness-backend/internal/api/validate"
	"github.com/mindwell/wellness-backend/internal/metrics"
	"github.com/mindwell/wellness-backend/internal/models"
	repo "github.com/mindwell/wellness-backend/internal/repository"
)

type ActivityService struct {
	activities repo.Activities
	now        func() time.Time
}

func NewActivityService(activities repo.Activities) *ActivityService {
	return &ActivityService{activities: activities, now: time.Now}
}

type ExerciseInput struct {
	ExerciseType    string `json:"exercise_type"`
	ExerciseName    string `json:"exercise_name"`
	DurationSeconds int    `json:"duration_seconds"`
}

func (s *ActivityService) CompleteExercise(userID string, in ExerciseInput) (models.ExerciseSession, error) {
	if err := validate.Collect(
		validate.Required("exercise_type", in.ExerciseType),
		validate.Required("exercise_name", in.ExerciseName),
		validate.MinInt("duration_seconds", int64(in.DurationSeconds), 1),
	); err != nil {
		return models.ExerciseSession{}, err
	}
	now := s.now()
	sess, err := s.activities.CreateExercise(models.ExerciseSession{
		UserID:          userID,
		ExerciseType:    in.ExerciseType,
		ExerciseName:    in.ExerciseName,
		DurationSeconds: in.DurationSeconds,
		Completed:       true,
		SessionDate:     models.NewDate(now),
		CompletedAt:     now,
	})
	if err != nil {
		return models.ExerciseSession{}, err
	}
	metrics.EntriesLogged.WithLabelValues("exercise").Inc()
	return sess, nil
}

func (s *ActivityService) ExerciseHistory(userID string, days int) ([]models.ExerciseSession, error) {
	out, err := s.activities.ListExercises(userID, s.sinceDate(days))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ExerciseSession{}
	}
	return out, nil
}

type MeditationInput struct {
	SessionType     string `json:"session_type"`
	SessionName     string `json:"session_name"`
	DurationSeconds int    `json:"duration_seconds"`
	BreathCount     int    `json:"breath_count"`
}

func (s *ActivityService) CompleteMeditation(userID string, in MeditationInput) (models.MeditationSession, error) {
	if in.SessionType == "" {
		in.SessionType = "basic"
	}
	if in.SessionName == "" {
		in.SessionName = "Basic Meditation"
	}
	if err := validate.Collect(
		validate.MinInt("duration_seconds", int64(in.DurationSeconds), 1),
	); err != nil {
		return models.MeditationSession{}, err
	}
	now := s.now()
	sess, err := s.activities.CreateMeditation(models.MeditationSession{
		UserID:          userID,
		SessionType:     in.SessionType,
		SessionName:     in.SessionName,
		DurationSeconds: in.DurationSeconds,
		BreathCount:     in.BreathCount,
		Completed:       true,
		SessionDate:     models.NewDate(now),
		CompletedAt:     now,
	})
	if err != nil {
		return models.MeditationSession{}, err
	}
	metrics.EntriesLogged.WithLabelValues("meditation").Inc()
	return sess, nil
}

func (s *ActivityService) MeditationHistory(userID string, days int) ([]models.MeditationSession, error) {
	out, err := s.activities.ListMeditations(userID, s.sinceDate(days))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.MeditationSession{}
	}
	return out, nil
}

type BreathingInput struct {
	MethodType      string `json:"method_type"`
	MethodName      string `json:"method_name"`
	DurationSeconds int    `json:"duration_seconds"`
	CyclesCompleted int    `json:"cycles_completed"`
}

func (s *ActivityService) CompleteBreathing(userID string, in BreathingInput) (models.BreathingSession, error) {
	if err := validate.Collect(
		validate.Required("method_type", in.MethodType),
		validate.Required("method_name", in.MethodName),
		validate.MinInt("duration_seconds", int64(in.DurationSeconds), 1),
	); err != nil {
		return models.BreathingSession{}, err
	}
	now := s.now()
	sess, err := s.activities.CreateBreathing(models.BreathingSession{
		UserID:          userID,
		MethodType:      in.MethodType,
		MethodName:      in.MethodName,
		DurationSeconds: in.DurationSeconds,
		CyclesCompleted: in.CyclesCompleted,
		Completed:       true,
		SessionDate:     models.NewDate(now),
		CompletedAt:     now,
	})
	if err != nil {
		return models.BreathingSession{}, err
	}
	metrics.EntriesLogged.WithLabelValues("breathing").Inc()
	return sess, nil
}

func (s *ActivityService) BreathingHistory(userID string, days int) ([]models.BreathingSession, error) {
	out, err := s.activities.ListBreathing(userID, s.sinceDate(days))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.BreathingSession{}
	}
	return out, nil
}

type TodayStats struct {
	Exercises             int     `json:"exercises"`
	ExerciseTimeMinutes   float64 `json:"exercise_time_minutes"`
	Meditations           int     `json:"meditations"`
	MeditationTimeMinutes float64 `json:"meditation_time_minutes"`
	BreathingSessions     int     `json:"breathing_sessions"`
	BreathingTimeMinutes  float64 `json:"breathing_time_minutes"`
	TotalBreaths          int     `json:"total_breaths"`
}

func (s *ActivityService) Stats(userID string) (TodayStats, error) {
	today := models.NewDate(s.now())

	exercises, err := s.activities.ListExercises(userID, today)
	if err != nil {
		return TodayStats{}, err
	}
	meditations, err := s.activities.ListMeditations(userID, today)
	if err != nil {
		return TodayStats{}, err
	}
	breathing, err := s.activities.ListBreathing(userID, today)
	if err != nil {
		return TodayStats{}, err
	}

	var st TodayStats
	st.Exercises = len(exercises)
	st.Meditations = len(meditations)
	st.BreathingSessions = len(breathing)

	var exSecs, medSecs, brSecs int
	for _, e := range exercises {
		exSecs += e.DurationSeconds
	}
	for _, m := range meditations {
		medSecs += m.DurationSeconds
		st.TotalBreaths += m.BreathCount
	}
	for _, b := range breathing {
		brSecs += b.DurationSeconds
	}
	st.ExerciseTimeMinutes = roundMinutes(exSecs)
	st.MeditationTimeMinutes = roundMinutes(medSecs)
	st.BreathingTimeMinutes = roundMinutes(brSecs)
	return st, nil
}

func (s *ActivityService) sinceDate(days int) models.Date {
	if days <= 0 {
		days = 7
	}
	return models.NewDate(s.now()).AddDays(-days)
}

func roundMinutes(secs int) float64 {
	return math.Round(float64(secs)/60*10) / 10
}
