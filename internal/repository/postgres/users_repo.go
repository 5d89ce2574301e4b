package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell/wellness-backend/internal/models"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userCols = `id, username, email, password_hash, role, first_name, last_name,
 date_of_birth, phone, emergency_contact, is_active, created_at, updated_at`

func (r *usersRepo) scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.FirstName, &u.LastName, &u.DateOfBirth, &u.Phone, &u.EmergencyContact,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *usersRepo) Create(u models.User) (models.User, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO users(id, username, email, password_hash, role, first_name, last_name,
		   date_of_birth, phone, emergency_contact, is_active)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,true)`,
		id, u.Username, u.Email, u.PasswordHash, u.Role,
		u.FirstName, u.LastName, u.DateOfBirth, u.Phone, u.EmergencyContact,
	)
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(id)
}

func (r *usersRepo) GetByID(id string) (models.User, error) {
	return r.scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByLogin(login string) (models.User, error) {
	return r.scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userCols+` FROM users WHERE username=$1 OR email=$1`, login))
}

func (r *usersRepo) UsernameTaken(username string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE username=$1)`, username).Scan(&taken)
	return taken, err
}

func (r *usersRepo) EmailTaken(email, excludeID string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE email=$1 AND id<>$2)`, email, excludeID).Scan(&taken)
	return taken, err
}

func (r *usersRepo) Update(u models.User) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET email=$2, first_name=$3, last_name=$4, date_of_birth=$5,
		   phone=$6, emergency_contact=$7, is_active=$8, updated_at=now()
		 WHERE id=$1`,
		u.ID, u.Email, u.FirstName, u.LastName, u.DateOfBirth,
		u.Phone, u.EmergencyContact, u.IsActive,
	)
	return err
}

func (r *usersRepo) UpdatePassword(id, hash string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET password_hash=$2, updated_at=now() WHERE id=$1`, id, hash)
	return err
}

// Delete cascades to the user's mood, journal, nutrition and activity rows
// via the schema's ON DELETE CASCADE.
func (r *usersRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id=$1`, id)
	return err
}
