package services

import (
	"time"

	"github.com/mindwell/wellness-backend/internal/analytics"
	"github.com/mindwell/wellness-backend/internal/api/validate"
	"github.com/mindwell/wellness-backend/internal/metrics"
	"github.com/mindwell/wellness-backend/internal/models"
	repo "github.com/mindwell/wellness-backend/internal/repository"
)

type JournalService struct {
	journals repo.Journals
	now      func() time.Time
}

func NewJournalService(journals repo.Journals) *JournalService {
	return &JournalService{journals: journals, now: time.Now}
}

type JournalInput struct {
	Title      *string  `json:"title"`
	Content    string   `json:"content"`
	MoodBefore *int     `json:"mood_before"`
	MoodAfter  *int     `json:"mood_after"`
	Tags       []string `json:"tags"`
	IsPrivate  *bool    `json:"is_private"`
}

func (in JournalInput) validate() error {
	checks := []*validate.ErrField{
		validate.Required("content", in.Content),
	}
	if in.MoodBefore != nil {
		checks = append(checks, validate.IntRange("mood_before", *in.MoodBefore, 1, 10))
	}
	if in.MoodAfter != nil {
		checks = append(checks, validate.IntRange("mood_after", *in.MoodAfter, 1, 10))
	}
	return validate.Collect(checks...)
}

func (s *JournalService) Create(userID string, in JournalInput) (models.JournalEntry, error) {
	if err := in.validate(); err != nil {
		return models.JournalEntry{}, err
	}
	isPrivate := true
	if in.IsPrivate != nil {
		isPrivate = *in.IsPrivate
	}
	e, err := s.journals.Create(models.JournalEntry{
		UserID:     userID,
		Title:      in.Title,
		Content:    in.Content,
		MoodBefore: in.MoodBefore,
		MoodAfter:  in.MoodAfter,
		Tags:       in.Tags,
		IsPrivate:  isPrivate,
	})
	if err != nil {
		return models.JournalEntry{}, err
	}
	metrics.EntriesLogged.WithLabelValues("journal").Inc()
	return e, nil
}

func (s *JournalService) List(userID string, f repo.JournalFilter) ([]models.JournalEntry, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	entries, err := s.journals.List(userID, f)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	return entries, nil
}

func (s *JournalService) Get(id, userID string) (models.JournalEntry, error) {
	e, err := s.journals.GetByID(id, userID)
	return e, mapNoRows(err)
}

type JournalUpdate struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	MoodBefore *int      `json:"mood_before"`
	MoodAfter  *int      `json:"mood_after"`
	Tags       *[]string `json:"tags"`
	IsPrivate  *bool     `json:"is_private"`
}

func (s *JournalService) Update(id, userID string, in JournalUpdate) (models.JournalEntry, error) {
	e, err := s.journals.GetByID(id, userID)
	if err != nil {
		return models.JournalEntry{}, mapNoRows(err)
	}

	if in.Content != nil {
		if err := validate.Collect(validate.Required("content", *in.Content)); err != nil {
			return models.JournalEntry{}, err
		}
		e.Content = *in.Content
	}
	if in.Title != nil {
		e.Title = in.Title
	}
	if in.MoodBefore != nil {
		if !models.ValidMoodScore(*in.MoodBefore) {
			return models.JournalEntry{}, validate.Errs{{Field: "mood_before", Msg: "must be between 1 and 10"}}
		}
		e.MoodBefore = in.MoodBefore
	}
	if in.MoodAfter != nil {
		if !models.ValidMoodScore(*in.MoodAfter) {
			return models.JournalEntry{}, validate.Errs{{Field: "mood_after", Msg: "must be between 1 and 10"}}
		}
		e.MoodAfter = in.MoodAfter
	}
	if in.Tags != nil {
		e.Tags = *in.Tags
	}
	if in.IsPrivate != nil {
		e.IsPrivate = *in.IsPrivate
	}

	if err := s.journals.Update(e); err != nil {
		return models.JournalEntry{}, mapNoRows(err)
	}
	return s.journals.GetByID(id, userID)
}

func (s *JournalService) Delete(id, userID string) error {
	return mapNoRows(s.journals.Delete(id, userID))
}

func (s *JournalService) Analytics(userID string) (analytics.JournalSummary, error) {
	entries, err := s.journals.ListAll(userID)
	if err != nil {
		return analytics.JournalSummary{}, err
	}
	metrics.AnalyticsComputed.WithLabelValues("journal").Inc()
	return analytics.SummarizeJournal(entries, s.now()), nil
}
