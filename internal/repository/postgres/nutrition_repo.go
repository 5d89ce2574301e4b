package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell/wellness-backend/internal/models"
)

type nutritionRepo struct{ pool *pgxpool.Pool }

const nutritionCols = `id, user_id, entry_type, name, meal_type, water_glasses,
 entry_date, entry_time, created_at`

func scanNutrition(row interface{ Scan(...any) error }) (models.NutritionEntry, error) {
	var e models.NutritionEntry
	err := row.Scan(&e.ID, &e.UserID, &e.EntryType, &e.Name, &e.MealType, &e.WaterGlasses,
		&e.EntryDate, &e.EntryTime, &e.CreatedAt)
	return e, err
}

// WithTx runs fn inside a single transaction; fn returning an error rolls
// everything back.
func (r *nutritionRepo) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (r *nutritionRepo) CreateEntryTx(tx pgx.Tx, e models.NutritionEntry) (models.NutritionEntry, error) {
	id := uuid.NewString()
	err := tx.QueryRow(context.Background(),
		`INSERT INTO nutrition_entries(id, user_id, entry_type, name, meal_type, water_glasses, entry_date, entry_time)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING `+nutritionCols,
		id, e.UserID, e.EntryType, e.Name, e.MealType, e.WaterGlasses, e.EntryDate, e.EntryTime,
	).Scan(&e.ID, &e.UserID, &e.EntryType, &e.Name, &e.MealType, &e.WaterGlasses,
		&e.EntryDate, &e.EntryTime, &e.CreatedAt)
	return e, err
}

func (r *nutritionRepo) ListByDate(userID string, date models.Date, entryType string) ([]models.NutritionEntry, error) {
	q := `SELECT ` + nutritionCols + ` FROM nutrition_entries WHERE user_id=$1 AND entry_date=$2`
	args := []any{userID, date}
	if entryType != "" {
		q += ` AND entry_type=$3`
		args = append(args, entryType)
	}
	q += ` ORDER BY entry_time ASC`

	rows, err := r.pool.Query(context.Background(), q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.NutritionEntry
	for rows.Next() {
		e, err := scanNutrition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *nutritionRepo) GetMeal(id, userID string) (models.NutritionEntry, error) {
	return scanNutrition(r.pool.QueryRow(context.Background(),
		`SELECT `+nutritionCols+` FROM nutrition_entries
		 WHERE id=$1 AND user_id=$2 AND entry_type='meal'`, id, userID))
}

func (r *nutritionRepo) DeleteMealTx(tx pgx.Tx, id, userID string) error {
	ct, err := tx.Exec(context.Background(),
		`DELETE FROM nutrition_entries WHERE id=$1 AND user_id=$2 AND entry_type='meal'`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *nutritionRepo) DeleteDayTx(tx pgx.Tx, userID string, date models.Date) error {
	_, err := tx.Exec(context.Background(),
		`DELETE FROM nutrition_entries WHERE user_id=$1 AND entry_date=$2`, userID, date)
	return err
}

func (r *nutritionRepo) DayTotalsTx(tx pgx.Tx, userID string, date models.Date) (int, int, error) {
	var meals, water int
	err := tx.QueryRow(context.Background(),
		`SELECT
		   count(*) FILTER (WHERE entry_type='meal'),
		   coalesce(sum(water_glasses) FILTER (WHERE entry_type='water'), 0)
		 FROM nutrition_entries WHERE user_id=$1 AND entry_date=$2`,
		userID, date,
	).Scan(&meals, &water)
	return meals, water, err
}

func (r *nutritionRepo) GetSummary(userID string, date models.Date) (models.DailyNutritionSummary, error) {
	var s models.DailyNutritionSummary
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, user_id, summary_date, total_meals, total_water_glasses, mood_score, created_at, updated_at
		 FROM daily_nutrition_summaries WHERE user_id=$1 AND summary_date=$2`,
		userID, date,
	).Scan(&s.ID, &s.UserID, &s.SummaryDate, &s.TotalMeals, &s.TotalWaterGlasses,
		&s.MoodScore, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// UpsertSummaryTx writes the one summary row per user per day;
// the last writer wins.
func (r *nutritionRepo) UpsertSummaryTx(tx pgx.Tx, s models.DailyNutritionSummary) (models.DailyNutritionSummary, error) {
	err := tx.QueryRow(context.Background(),
		`INSERT INTO daily_nutrition_summaries(id, user_id, summary_date, total_meals, total_water_glasses, mood_score)
		 VALUES($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (user_id, summary_date) DO UPDATE
		   SET total_meals=EXCLUDED.total_meals,
		       total_water_glasses=EXCLUDED.total_water_glasses,
		       mood_score=EXCLUDED.mood_score,
		       updated_at=now()
		 RETURNING id, user_id, summary_date, total_meals, total_water_glasses, mood_score, created_at, updated_at`,
		uuid.NewString(), s.UserID, s.SummaryDate, s.TotalMeals, s.TotalWaterGlasses, s.MoodScore,
	).Scan(&s.ID, &s.UserID, &s.SummaryDate, &s.TotalMeals, &s.TotalWaterGlasses,
		&s.MoodScore, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *nutritionRepo) DeleteSummaryTx(tx pgx.Tx, userID string, date models.Date) error {
	_, err := tx.Exec(context.Background(),
		`DELETE FROM daily_nutrition_summaries WHERE user_id=$1 AND summary_date=$2`, userID, date)
	return err
}

func (r *nutritionRepo) EntryDatesSince(userID string, since models.Date) ([]models.Date, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT DISTINCT entry_date FROM nutrition_entries
		 WHERE user_id=$1 AND entry_date >= $2 ORDER BY entry_date`,
		userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Date
	for rows.Next() {
		var d models.Date
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
