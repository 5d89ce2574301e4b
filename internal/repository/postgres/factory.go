package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/mindwell/wellness-backend/internal/repository"
)

type Repositories struct {
	Users      repo.Users
	Moods      repo.Moods
	Journals   repo.Journals
	Resources  repo.Resources
	Nutrition  repo.Nutrition
	Activities repo.Activities
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:      &usersRepo{pool},
		Moods:      &moodsRepo{pool},
		Journals:   &journalsRepo{pool},
		Resources:  &resourcesRepo{pool},
		Nutrition:  &nutritionRepo{pool},
		Activities: &activitiesRepo{pool},
	}
}
