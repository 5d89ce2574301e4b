package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/wellness-backend/internal/models"
)

func TestJournalServiceCreate_PrivateByDefault(t *testing.T) {
	journals := &fakeJournals{}
	svc := NewJournalService(journals)

	e, err := svc.Create("u1", JournalInput{Content: "today was fine"})
	require.NoError(t, err)
	assert.True(t, e.IsPrivate)

	public := false
	e, err = svc.Create("u1", JournalInput{Content: "shareable", IsPrivate: &public})
	require.NoError(t, err)
	assert.False(t, e.IsPrivate)
}

func TestJournalServiceCreate_Validation(t *testing.T) {
	svc := NewJournalService(&fakeJournals{})

	_, err := svc.Create("u1", JournalInput{})
	assert.Error(t, err)

	bad := 11
	_, err = svc.Create("u1", JournalInput{Content: "x", MoodBefore: &bad})
	assert.Error(t, err)
}

func TestJournalServiceUpdate(t *testing.T) {
	journals := &fakeJournals{entries: []models.JournalEntry{
		{ID: "j1", UserID: "u1", Content: "original", IsPrivate: true},
	}}
	svc := NewJournalService(journals)

	content := "revised"
	got, err := svc.Update("j1", "u1", JournalUpdate{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "revised", got.Content)
	assert.True(t, got.IsPrivate)

	empty := "  "
	_, err = svc.Update("j1", "u1", JournalUpdate{Content: &empty})
	assert.Error(t, err)

	_, err = svc.Update("j1", "someone-else", JournalUpdate{Content: &content})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJournalServiceAnalytics(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	journals := &fakeJournals{entries: []models.JournalEntry{
		{UserID: "u1", Content: "a", Tags: models.StringList{"gratitude"}, CreatedAt: now},
		{UserID: "u1", Content: "b", Tags: models.StringList{"gratitude", "sleep"}, CreatedAt: now.AddDate(0, 0, -1)},
	}}
	svc := NewJournalService(journals)
	svc.now = func() time.Time { return now }

	got, err := svc.Analytics("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalEntries)
	assert.Equal(t, 2, got.WritingStreak)
	assert.Equal(t, 2, got.TotalTagsUsed)
	require.NotEmpty(t, got.MostCommonTags)
	assert.Equal(t, "gratitude", got.MostCommonTags[0].Tag)
}
