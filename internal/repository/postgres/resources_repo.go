package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell/wellness-backend/internal/models"
	"github.com/mindwell/wellness-backend/internal/repository"
)

type resourcesRepo struct{ pool *pgxpool.Pool }

const resourceCols = `id, title, description, content, category, type, url,
 duration_minutes, difficulty_level, tags, is_featured, is_active, created_at, updated_at`

func scanResource(row interface{ Scan(...any) error }) (models.Resource, error) {
	var (
		res models.Resource
		raw *string
	)
	err := row.Scan(&res.ID, &res.Title, &res.Description, &res.Content, &res.Category,
		&res.Type, &res.URL, &res.DurationMinutes, &res.DifficultyLevel, &raw,
		&res.IsFeatured, &res.IsActive, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return models.Resource{}, err
	}
	if list, derr := models.DecodeStringList(raw); derr == nil {
		res.Tags = list
	}
	return res, nil
}

func (r *resourcesRepo) Create(res models.Resource) (models.Resource, error) {
	id := uuid.NewString()
	tags, err := res.Tags.Encode()
	if err != nil {
		return models.Resource{}, err
	}
	_, err = r.pool.Exec(context.Background(),
		`INSERT INTO resources(id, title, description, content, category, type, url,
		   duration_minutes, difficulty_level, tags, is_featured, is_active)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		id, res.Title, res.Description, res.Content, res.Category, res.Type, res.URL,
		res.DurationMinutes, res.DifficultyLevel, tags, res.IsFeatured, res.IsActive,
	)
	if err != nil {
		return models.Resource{}, err
	}
	return r.GetByID(id)
}

func (r *resourcesRepo) GetActive(id string) (models.Resource, error) {
	return scanResource(r.pool.QueryRow(context.Background(),
		`SELECT `+resourceCols+` FROM resources WHERE id=$1 AND is_active=true`, id))
}

func (r *resourcesRepo) GetByID(id string) (models.Resource, error) {
	return scanResource(r.pool.QueryRow(context.Background(),
		`SELECT `+resourceCols+` FROM resources WHERE id=$1`, id))
}

func (r *resourcesRepo) List(f repository.ResourceFilter) ([]models.Resource, error) {
	q := `SELECT ` + resourceCols + ` FROM resources WHERE is_active=true`
	var args []any
	add := func(clause string, v any) {
		args = append(args, v)
		q += ` AND ` + clause + `$` + itoa(len(args))
	}
	if f.Category != "" {
		add(`category=`, f.Category)
	}
	if f.Type != "" {
		add(`type=`, f.Type)
	}
	if f.Difficulty != "" {
		add(`difficulty_level=`, f.Difficulty)
	}
	if f.Featured != nil {
		add(`is_featured=`, *f.Featured)
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		p := itoa(len(args))
		q += ` AND (title ILIKE $` + p + ` OR description ILIKE $` + p + ` OR content ILIKE $` + p + `)`
	}
	// featured first, newest first
	q += ` ORDER BY is_featured DESC, created_at DESC`
	if f.Limit > 0 {
		q += ` LIMIT ` + itoa(f.Limit) + ` OFFSET ` + itoa(f.Offset)
	}

	rows, err := r.pool.Query(context.Background(), q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResources(rows)
}

func (r *resourcesRepo) Categories() ([]string, error) {
	return r.distinct(`SELECT DISTINCT category FROM resources WHERE category <> '' ORDER BY category`)
}

func (r *resourcesRepo) Types() ([]string, error) {
	return r.distinct(`SELECT DISTINCT type FROM resources WHERE type <> '' ORDER BY type`)
}

func (r *resourcesRepo) distinct(q string) ([]string, error) {
	rows, err := r.pool.Query(context.Background(), q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *resourcesRepo) Featured(limit int) ([]models.Resource, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+resourceCols+` FROM resources
		 WHERE is_featured=true AND is_active=true
		 ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResources(rows)
}

func (r *resourcesRepo) ActiveByCategories(categories []string, limit int) ([]models.Resource, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+resourceCols+` FROM resources
		 WHERE category = ANY($1) AND is_active=true
		 ORDER BY created_at DESC LIMIT $2`, categories, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResources(rows)
}

func collectResources(rows pgx.Rows) ([]models.Resource, error) {
	var out []models.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *resourcesRepo) Update(res models.Resource) error {
	tags, err := res.Tags.Encode()
	if err != nil {
		return err
	}
	ct, err := r.pool.Exec(context.Background(),
		`UPDATE resources SET title=$2, description=$3, content=$4, category=$5, type=$6,
		   url=$7, duration_minutes=$8, difficulty_level=$9, tags=$10,
		   is_featured=$11, is_active=$12, updated_at=now()
		 WHERE id=$1`,
		res.ID, res.Title, res.Description, res.Content, res.Category, res.Type,
		res.URL, res.DurationMinutes, res.DifficultyLevel, tags,
		res.IsFeatured, res.IsActive,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *resourcesRepo) Delete(id string) error {
	ct, err := r.pool.Exec(context.Background(), `DELETE FROM resources WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
