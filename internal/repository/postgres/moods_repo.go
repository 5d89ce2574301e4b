package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell/wellness-backend/internal/models"
)

type moodsRepo struct{ pool *pgxpool.Pool }

const moodCols = `id, user_id, mood_score, mood_label, notes, activities,
 sleep_hours, stress_level, energy_level, created_at, updated_at`

func scanMood(row interface{ Scan(...any) error }) (models.MoodEntry, error) {
	var (
		e   models.MoodEntry
		raw *string
	)
	err := row.Scan(&e.ID, &e.UserID, &e.MoodScore, &e.MoodLabel, &e.Notes, &raw,
		&e.SleepHours, &e.StressLevel, &e.EnergyLevel, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return models.MoodEntry{}, err
	}
	// a malformed activities column decodes to an empty list rather than
	// failing the whole read
	if list, derr := models.DecodeStringList(raw); derr == nil {
		e.Activities = list
	}
	return e, nil
}

func (r *moodsRepo) Create(e models.MoodEntry) (models.MoodEntry, error) {
	id := uuid.NewString()
	acts, err := e.Activities.Encode()
	if err != nil {
		return models.MoodEntry{}, err
	}
	_, err = r.pool.Exec(context.Background(),
		`INSERT INTO mood_entries(id, user_id, mood_score, mood_label, notes, activities,
		   sleep_hours, stress_level, energy_level)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		id, e.UserID, e.MoodScore, e.MoodLabel, e.Notes, acts,
		e.SleepHours, e.StressLevel, e.EnergyLevel,
	)
	if err != nil {
		return models.MoodEntry{}, err
	}
	return r.GetByID(id, e.UserID)
}

func (r *moodsRepo) GetByID(id, userID string) (models.MoodEntry, error) {
	return scanMood(r.pool.QueryRow(context.Background(),
		`SELECT `+moodCols+` FROM mood_entries WHERE id=$1 AND user_id=$2`, id, userID))
}

func (r *moodsRepo) ListByUser(userID string, since *time.Time, limit, offset int) ([]models.MoodEntry, error) {
	q := `SELECT ` + moodCols + ` FROM mood_entries WHERE user_id=$1`
	args := []any{userID}
	if since != nil {
		q += ` AND created_at >= $2`
		args = append(args, *since)
	}
	q += ` ORDER BY created_at DESC`
	if limit > 0 {
		q += ` LIMIT ` + itoa(limit) + ` OFFSET ` + itoa(offset)
	}

	rows, err := r.pool.Query(context.Background(), q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMoods(rows)
}

func collectMoods(rows pgx.Rows) ([]models.MoodEntry, error) {
	var out []models.MoodEntry
	for rows.Next() {
		e, err := scanMood(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *moodsRepo) Count(userID string, since *time.Time) (int, error) {
	q := `SELECT count(*) FROM mood_entries WHERE user_id=$1`
	args := []any{userID}
	if since != nil {
		q += ` AND created_at >= $2`
		args = append(args, *since)
	}
	var n int
	err := r.pool.QueryRow(context.Background(), q, args...).Scan(&n)
	return n, err
}

func (r *moodsRepo) Update(e models.MoodEntry) error {
	acts, err := e.Activities.Encode()
	if err != nil {
		return err
	}
	ct, err := r.pool.Exec(context.Background(),
		`UPDATE mood_entries SET mood_score=$3, mood_label=$4, notes=$5, activities=$6,
		   sleep_hours=$7, stress_level=$8, energy_level=$9, updated_at=now()
		 WHERE id=$1 AND user_id=$2`,
		e.ID, e.UserID, e.MoodScore, e.MoodLabel, e.Notes, acts,
		e.SleepHours, e.StressLevel, e.EnergyLevel,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *moodsRepo) Delete(id, userID string) error {
	ct, err := r.pool.Exec(context.Background(),
		`DELETE FROM mood_entries WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
