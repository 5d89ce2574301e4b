package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell/wellness-backend/internal/models"
)

type activitiesRepo struct{ pool *pgxpool.Pool }

func (r *activitiesRepo) CreateExercise(s models.ExerciseSession) (models.ExerciseSession, error) {
	err := r.pool.QueryRow(context.Background(),
		`INSERT INTO exercise_sessions(id, user_id, exercise_type, exercise_name, duration_seconds, completed, session_date, completed_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING id, created_at`,
		uuid.NewString(), s.UserID, s.ExerciseType, s.ExerciseName, s.DurationSeconds,
		s.Completed, s.SessionDate, s.CompletedAt,
	).Scan(&s.ID, &s.CreatedAt)
	return s, err
}

func (r *activitiesRepo) ListExercises(userID string, since models.Date) ([]models.ExerciseSession, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, user_id, exercise_type, exercise_name, duration_seconds, completed, session_date, completed_at, created_at
		 FROM exercise_sessions WHERE user_id=$1 AND session_date >= $2
		 ORDER BY session_date DESC, completed_at DESC`,
		userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ExerciseSession
	for rows.Next() {
		var s models.ExerciseSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.ExerciseType, &s.ExerciseName, &s.DurationSeconds,
			&s.Completed, &s.SessionDate, &s.CompletedAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *activitiesRepo) CreateMeditation(s models.MeditationSession) (models.MeditationSession, error) {
	err := r.pool.QueryRow(context.Background(),
		`INSERT INTO meditation_sessions(id, user_id, session_type, session_name, duration_seconds, breath_count, completed, session_date, completed_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING id, created_at`,
		uuid.NewString(), s.UserID, s.SessionType, s.SessionName, s.DurationSeconds,
		s.BreathCount, s.Completed, s.SessionDate, s.CompletedAt,
	).Scan(&s.ID, &s.CreatedAt)
	return s, err
}

func (r *activitiesRepo) ListMeditations(userID string, since models.Date) ([]models.MeditationSession, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, user_id, session_type, session_name, duration_seconds, breath_count, completed, session_date, completed_at, created_at
		 FROM meditation_sessions WHERE user_id=$1 AND session_date >= $2
		 ORDER BY session_date DESC, completed_at DESC`,
		userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.MeditationSession
	for rows.Next() {
		var s models.MeditationSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.SessionType, &s.SessionName, &s.DurationSeconds,
			&s.BreathCount, &s.Completed, &s.SessionDate, &s.CompletedAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *activitiesRepo) CreateBreathing(s models.BreathingSession) (models.BreathingSession, error) {
	err := r.pool.QueryRow(context.Background(),
		`INSERT INTO breathing_sessions(id, user_id, method_type, method_name, duration_seconds, cycles_completed, completed, session_date, completed_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING id, created_at`,
		uuid.NewString(), s.UserID, s.MethodType, s.MethodName, s.DurationSeconds,
		s.CyclesCompleted, s.Completed, s.SessionDate, s.CompletedAt,
	).Scan(&s.ID, &s.CreatedAt)
	return s, err
}

func (r *activitiesRepo) ListBreathing(userID string, since models.Date) ([]models.BreathingSession, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, user_id, method_type, method_name, duration_seconds, cycles_completed, completed, session_date, completed_at, created_at
		 FROM breathing_sessions WHERE user_id=$1 AND session_date >= $2
		 ORDER BY session_date DESC, completed_at DESC`,
		userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BreathingSession
	for rows.Next() {
		var s models.BreathingSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.MethodType, &s.MethodName, &s.DurationSeconds,
			&s.CyclesCompleted, &s.Completed, &s.SessionDate, &s.CompletedAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
