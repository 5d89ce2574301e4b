package services

import (
	"time"

	"github.com/mindwell/wellness-backend/internal/analytics"
	"github.com/mindwell/wellness-backend/internal/api/validate"
	"github.com/mindwell/wellness-backend/internal/metrics"
	"github.com/mindwell/wellness-backend/internal/models"
	repo "github.com/mindwell/wellness-backend/internal/repository"
)

const (
	recommendLimit = 5
	featuredLimit  = 10
	recentMoodDays = 30
)

type ResourceService struct {
	resources repo.Resources
	moods     repo.Moods
	now       func() time.Time
}

func NewResourceService(resources repo.Resources, moods repo.Moods) *ResourceService {
	return &ResourceService{resources: resources, moods: moods, now: time.Now}
}

func (s *ResourceService) List(f repo.ResourceFilter) ([]models.Resource, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	out, err := s.resources.List(f)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Resource{}
	}
	return out, nil
}

func (s *ResourceService) Get(id string) (models.Resource, error) {
	res, err := s.resources.GetActive(id)
	return res, mapNoRows(err)
}

func (s *ResourceService) Categories() ([]string, error) { return s.resources.Categories() }
func (s *ResourceService) Types() ([]string, error)      { return s.resources.Types() }

func (s *ResourceService) Featured() ([]models.Resource, error) {
	out, err := s.resources.Featured(featuredLimit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Resource{}
	}
	return out, nil
}

type Recommendation struct {
	Resources []models.Resource   `json:"recommended_resources"`
	Basis     RecommendationBasis `json:"recommendation_basis"`
}

type RecommendationBasis struct {
	AverageMood         float64 `json:"average_mood"`
	MoodEntriesAnalyzed int     `json:"mood_entries_analyzed"`
}

// Recommended selects up to 5 active resources whose category matches the
// caller's recent mood tier, padding from featured resources without
// duplicates. With no mood entries in the last 30 days the featured
// listing is returned as-is (its own, larger cap).
func (s *ResourceService) Recommended(userID string) (Recommendation, error) {
	since := s.now().AddDate(0, 0, -recentMoodDays)
	recent, err := s.moods.ListByUser(userID, &since, 0, 0)
	if err != nil {
		return Recommendation{}, err
	}

	metrics.AnalyticsComputed.WithLabelValues("recommendation").Inc()

	if len(recent) == 0 {
		featured, err := s.Featured()
		if err != nil {
			return Recommendation{}, err
		}
		return Recommendation{Resources: featured, Basis: RecommendationBasis{}}, nil
	}

	// tier selection compares the raw mean; only the reported basis rounds
	categories := analytics.RecommendCategories(analytics.MeanMood(recent))

	picked, err := s.resources.ActiveByCategories(categories, recommendLimit)
	if err != nil {
		return Recommendation{}, err
	}

	if len(picked) < recommendLimit {
		featured, err := s.resources.Featured(recommendLimit)
		if err != nil {
			return Recommendation{}, err
		}
		seen := make(map[string]struct{}, len(picked))
		for _, r := range picked {
			seen[r.ID] = struct{}{}
		}
		for _, r := range featured {
			if len(picked) >= recommendLimit {
				break
			}
			if _, dup := seen[r.ID]; dup {
				continue
			}
			picked = append(picked, r)
			seen[r.ID] = struct{}{}
		}
	}
	if picked == nil {
		picked = []models.Resource{}
	}

	return Recommendation{
		Resources: picked,
		Basis: RecommendationBasis{
			AverageMood:         analytics.AverageMood(recent),
			MoodEntriesAnalyzed: len(recent),
		},
	}, nil
}

type ResourceInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Content         string   `json:"content"`
	Category        string   `json:"category"`
	Type            string   `json:"type"`
	URL             *string  `json:"url"`
	DurationMinutes *int     `json:"duration_minutes"`
	DifficultyLevel *string  `json:"difficulty_level"`
	Tags            []string `json:"tags"`
	IsFeatured      *bool    `json:"is_featured"`
	IsActive        *bool    `json:"is_active"`
}

func (in ResourceInput) validate() error {
	checks := []*validate.ErrField{
		validate.Required("title", in.Title),
		validate.Required("description", in.Description),
		validate.Required("content", in.Content),
		validate.Required("category", in.Category),
		validate.Required("type", in.Type),
	}
	if in.DifficultyLevel != nil {
		checks = append(checks, validate.OneOf("difficulty_level", *in.DifficultyLevel,
			"Beginner", "Intermediate", "Advanced"))
	}
	return validate.Collect(checks...)
}

func (s *ResourceService) Create(in ResourceInput) (models.Resource, error) {
	if err := in.validate(); err != nil {
		return models.Resource{}, err
	}
	res := models.Resource{
		Title:           in.Title,
		Description:     in.Description,
		Content:         in.Content,
		Category:        in.Category,
		Type:            in.Type,
		URL:             in.URL,
		DurationMinutes: in.DurationMinutes,
		DifficultyLevel: in.DifficultyLevel,
		Tags:            in.Tags,
		IsActive:        true,
	}
	if in.IsFeatured != nil {
		res.IsFeatured = *in.IsFeatured
	}
	if in.IsActive != nil {
		res.IsActive = *in.IsActive
	}
	return s.resources.Create(res)
}

type ResourceUpdate struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Content         *string   `json:"content"`
	Category        *string   `json:"category"`
	Type            *string   `json:"type"`
	URL             *string   `json:"url"`
	DurationMinutes *int      `json:"duration_minutes"`
	DifficultyLevel *string   `json:"difficulty_level"`
	Tags            *[]string `json:"tags"`
	IsFeatured      *bool     `json:"is_featured"`
	IsActive        *bool     `json:"is_active"`
}

func (s *ResourceService) Update(id string, in ResourceUpdate) (models.Resource, error) {
	res, err := s.resources.GetByID(id)
	if err != nil {
		return models.Resource{}, mapNoRows(err)
	}

	if in.Title != nil {
		res.Title = *in.Title
	}
	if in.Description != nil {
		res.Description = *in.Description
	}
	if in.Content != nil {
		res.Content = *in.Content
	}
	if in.Category != nil {
		res.Category = *in.Category
	}
	if in.Type != nil {
		res.Type = *in.Type
	}
	if in.URL != nil {
		res.URL = in.URL
	}
	if in.DurationMinutes != nil {
		res.DurationMinutes = in.DurationMinutes
	}
	if in.DifficultyLevel != nil {
		if err := validate.Collect(validate.OneOf("difficulty_level", *in.DifficultyLevel,
			"Beginner", "Intermediate", "Advanced")); err != nil {
			return models.Resource{}, err
		}
		res.DifficultyLevel = in.DifficultyLevel
	}
	if in.Tags != nil {
		res.Tags = *in.Tags
	}
	if in.IsFeatured != nil {
		res.IsFeatured = *in.IsFeatured
	}
	if in.IsActive != nil {
		res.IsActive = *in.IsActive
	}

	if err := s.resources.Update(res); err != nil {
		return models.Resource{}, mapNoRows(err)
	}
	return s.resources.GetByID(id)
}

func (s *ResourceService) Delete(id string) error {
	return mapNoRows(s.resources.Delete(id))
}
