package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mindwell/wellness-backend/internal/models"
	repo "github.com/mindwell/wellness-backend/internal/repository"
)

var errNotImplemented = errors.New("not implemented in fake")

// fakeMoods serves canned entries and records writes.
type fakeMoods struct {
	entries []models.MoodEntry
	created []models.MoodEntry
}

func (f *fakeMoods) Create(e models.MoodEntry) (models.MoodEntry, error) {
	e.ID = "mood-fake"
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeMoods) GetByID(id, userID string) (models.MoodEntry, error) {
	for _, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return models.MoodEntry{}, pgx.ErrNoRows
}

func (f *fakeMoods) ListByUser(userID string, since *time.Time, limit, offset int) ([]models.MoodEntry, error) {
	var out []models.MoodEntry
	for _, e := range f.entries {
		if e.UserID != userID {
			continue
		}
		if since != nil && e.CreatedAt.Before(*since) {
			continue
		}
		out = append(out, e)
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeMoods) Count(userID string, since *time.Time) (int, error) {
	out, _ := f.ListByUser(userID, since, 0, 0)
	return len(out), nil
}

func (f *fakeMoods) Update(e models.MoodEntry) error {
	for i, cur := range f.entries {
		if cur.ID == e.ID && cur.UserID == e.UserID {
			f.entries[i] = e
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeMoods) Delete(id, userID string) error {
	for i, cur := range f.entries {
		if cur.ID == id && cur.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeJournals struct {
	entries []models.JournalEntry
	created []models.JournalEntry
}

func (f *fakeJournals) Create(e models.JournalEntry) (models.JournalEntry, error) {
	e.ID = "journal-fake"
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeJournals) GetByID(id, userID string) (models.JournalEntry, error) {
	for _, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return models.JournalEntry{}, pgx.ErrNoRows
}

func (f *fakeJournals) List(userID string, _ repo.JournalFilter) ([]models.JournalEntry, error) {
	return f.ListAll(userID)
}

func (f *fakeJournals) ListAll(userID string) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeJournals) Count(userID string, since *time.Time) (int, error) {
	n := 0
	for _, e := range f.entries {
		if e.UserID != userID {
			continue
		}
		if since != nil && e.CreatedAt.Before(*since) {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeJournals) Update(e models.JournalEntry) error {
	for i, cur := range f.entries {
		if cur.ID == e.ID && cur.UserID == e.UserID {
			f.entries[i] = e
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeJournals) Delete(id, userID string) error {
	for i, cur := range f.entries {
		if cur.ID == id && cur.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

// fakeResources drives the recommendation selector: byCategory answers
// ActiveByCategories, featured answers Featured.
type fakeResources struct {
	byCategory   []models.Resource
	featured     []models.Resource
	lastCategory []string
}

func (f *fakeResources) Create(r models.Resource) (models.Resource, error) {
	r.ID = "resource-fake"
	return r, nil
}

func (f *fakeResources) GetActive(id string) (models.Resource, error) {
	return models.Resource{}, pgx.ErrNoRows
}

func (f *fakeResources) GetByID(id string) (models.Resource, error) {
	return models.Resource{}, pgx.ErrNoRows
}

func (f *fakeResources) List(_ repo.ResourceFilter) ([]models.Resource, error) {
	return nil, errNotImplemented
}

func (f *fakeResources) Categories() ([]string, error) { return nil, errNotImplemented }
func (f *fakeResources) Types() ([]string, error)      { return nil, errNotImplemented }

func (f *fakeResources) Featured(limit int) ([]models.Resource, error) {
	out := f.featured
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeResources) ActiveByCategories(categories []string, limit int) ([]models.Resource, error) {
	f.lastCategory = categories
	out := f.byCategory
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeResources) Update(r models.Resource) error { return errNotImplemented }
func (f *fakeResources) Delete(id string) error         { return errNotImplemented }

type fakeUsers struct {
	byID       map[string]models.User
	taken      map[string]bool
	takenEmail map[string]bool
	created    []models.User
	newHash    string
}

func (f *fakeUsers) Create(u models.User) (models.User, error) {
	u.ID = "user-fake"
	u.IsActive = true
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsers) GetByID(id string) (models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUsers) GetByLogin(login string) (models.User, error) {
	for _, u := range f.byID {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return models.User{}, pgx.ErrNoRows
}

func (f *fakeUsers) UsernameTaken(username string) (bool, error) {
	return f.taken[username], nil
}

func (f *fakeUsers) EmailTaken(email, excludeID string) (bool, error) {
	return f.takenEmail[email], nil
}

func (f *fakeUsers) Update(u models.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) UpdatePassword(id, hash string) error {
	f.newHash = hash
	return nil
}

func (f *fakeUsers) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

// fakeNutrition keeps entries and summaries in memory. WithTx just runs
// fn with a nil tx; the Tx-suffixed methods ignore it. Setting txErr
// makes every subsequent transaction fail.
type fakeNutrition struct {
	entries   []models.NutritionEntry
	summaries map[string]models.DailyNutritionSummary
	nextID    int
	txErr     error
}

func newFakeNutrition() *fakeNutrition {
	return &fakeNutrition{summaries: map[string]models.DailyNutritionSummary{}}
}

func summaryKey(userID string, date models.Date) string { return userID + "|" + date.String() }

func (f *fakeNutrition) WithTx(_ context.Context, fn func(pgx.Tx) error) error {
	if f.txErr != nil {
		return f.txErr
	}
	return fn(nil)
}

func (f *fakeNutrition) CreateEntryTx(_ pgx.Tx, e models.NutritionEntry) (models.NutritionEntry, error) {
	f.nextID++
	e.ID = "nutrition-" + strconv.Itoa(f.nextID)
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeNutrition) ListByDate(userID string, date models.Date, entryType string) ([]models.NutritionEntry, error) {
	var out []models.NutritionEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.EntryDate.String() == date.String() && e.EntryType == entryType {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeNutrition) GetMeal(id, userID string) (models.NutritionEntry, error) {
	for _, e := range f.entries {
		if e.ID == id && e.UserID == userID && e.EntryType == models.NutritionMeal {
			return e, nil
		}
	}
	return models.NutritionEntry{}, pgx.ErrNoRows
}

func (f *fakeNutrition) DeleteMealTx(_ pgx.Tx, id, userID string) error {
	for i, e := range f.entries {
		if e.ID == id && e.UserID == userID && e.EntryType == models.NutritionMeal {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeNutrition) DeleteDayTx(_ pgx.Tx, userID string, date models.Date) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if !(e.UserID == userID && e.EntryDate.String() == date.String()) {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func (f *fakeNutrition) DayTotalsTx(_ pgx.Tx, userID string, date models.Date) (int, int, error) {
	meals, water := 0, 0
	for _, e := range f.entries {
		if e.UserID != userID || e.EntryDate.String() != date.String() {
			continue
		}
		switch e.EntryType {
		case models.NutritionMeal:
			meals++
		case models.NutritionWater:
			if e.WaterGlasses != nil {
				water += *e.WaterGlasses
			}
		}
	}
	return meals, water, nil
}

func (f *fakeNutrition) GetSummary(userID string, date models.Date) (models.DailyNutritionSummary, error) {
	s, ok := f.summaries[summaryKey(userID, date)]
	if !ok {
		return models.DailyNutritionSummary{}, pgx.ErrNoRows
	}
	return s, nil
}

func (f *fakeNutrition) UpsertSummaryTx(_ pgx.Tx, s models.DailyNutritionSummary) (models.DailyNutritionSummary, error) {
	s.ID = "summary-fake"
	f.summaries[summaryKey(s.UserID, s.SummaryDate)] = s
	return s, nil
}

func (f *fakeNutrition) DeleteSummaryTx(_ pgx.Tx, userID string, date models.Date) error {
	delete(f.summaries, summaryKey(userID, date))
	return nil
}

func (f *fakeNutrition) EntryDatesSince(userID string, since models.Date) ([]models.Date, error) {
	seen := map[string]bool{}
	var out []models.Date
	for _, e := range f.entries {
		if e.UserID != userID || e.EntryDate.Before(since.Time) || seen[e.EntryDate.String()] {
			continue
		}
		seen[e.EntryDate.String()] = true
		out = append(out, e.EntryDate)
	}
	return out, nil
}

var (
	_ repo.Moods     = (*fakeMoods)(nil)
	_ repo.Journals  = (*fakeJournals)(nil)
	_ repo.Resources = (*fakeResources)(nil)
	_ repo.Users     = (*fakeUsers)(nil)
	_ repo.Nutrition = (*fakeNutrition)(nil)
)
