package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell/wellness-backend/internal/models"
	"github.com/mindwell/wellness-backend/internal/repository"
)

type journalsRepo struct{ pool *pgxpool.Pool }

const journalCols = `id, user_id, title, content, mood_before, mood_after,
 tags, is_private, created_at, updated_at`

func scanJournal(row interface{ Scan(...any) error }) (models.JournalEntry, error) {
	var (
		e   models.JournalEntry
		raw *string
	)
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.MoodBefore, &e.MoodAfter,
		&raw, &e.IsPrivate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if list, derr := models.DecodeStringList(raw); derr == nil {
		e.Tags = list
	}
	return e, nil
}

func (r *journalsRepo) Create(e models.JournalEntry) (models.JournalEntry, error) {
	id := uuid.NewString()
	tags, err := e.Tags.Encode()
	if err != nil {
		return models.JournalEntry{}, err
	}
	_, err = r.pool.Exec(context.Background(),
		`INSERT INTO journal_entries(id, user_id, title, content, mood_before, mood_after, tags, is_private)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)`,
		id, e.UserID, e.Title, e.Content, e.MoodBefore, e.MoodAfter, tags, e.IsPrivate,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}
	return r.GetByID(id, e.UserID)
}

func (r *journalsRepo) GetByID(id, userID string) (models.JournalEntry, error) {
	return scanJournal(r.pool.QueryRow(context.Background(),
		`SELECT `+journalCols+` FROM journal_entries WHERE id=$1 AND user_id=$2`, id, userID))
}

func (r *journalsRepo) List(userID string, f repository.JournalFilter) ([]models.JournalEntry, error) {
	q := `SELECT ` + journalCols + ` FROM journal_entries WHERE user_id=$1`
	args := []any{userID}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		p := itoa(len(args))
		q += ` AND (content ILIKE $` + p + ` OR title ILIKE $` + p + `)`
	}
	for _, tag := range f.Tags {
		args = append(args, "%"+tag+"%")
		q += ` AND tags LIKE $` + itoa(len(args))
	}
	q += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		q += ` LIMIT ` + itoa(f.Limit) + ` OFFSET ` + itoa(f.Offset)
	}

	rows, err := r.pool.Query(context.Background(), q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJournals(rows)
}

func (r *journalsRepo) ListAll(userID string) ([]models.JournalEntry, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+journalCols+` FROM journal_entries WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJournals(rows)
}

func collectJournals(rows pgx.Rows) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for rows.Next() {
		e, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *journalsRepo) Count(userID string, since *time.Time) (int, error) {
	q := `SELECT count(*) FROM journal_entries WHERE user_id=$1`
	args := []any{userID}
	if since != nil {
		q += ` AND created_at >= $2`
		args = append(args, *since)
	}
	var n int
	err := r.pool.QueryRow(context.Background(), q, args...).Scan(&n)
	return n, err
}

func (r *journalsRepo) Update(e models.JournalEntry) error {
	tags, err := e.Tags.Encode()
	if err != nil {
		return err
	}
	ct, err := r.pool.Exec(context.Background(),
		`UPDATE journal_entries SET title=$3, content=$4, mood_before=$5, mood_after=$6,
		   tags=$7, is_private=$8, updated_at=now()
		 WHERE id=$1 AND user_id=$2`,
		e.ID, e.UserID, e.Title, e.Content, e.MoodBefore, e.MoodAfter, tags, e.IsPrivate,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *journalsRepo) Delete(id, userID string) error {
	ct, err := r.pool.Exec(context.Background(),
		`DELETE FROM journal_entries WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
