package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindwell/wellness-backend/internal/models"
)

func journalAt(daysAgo int, tags ...string) models.JournalEntry {
	return models.JournalEntry{
		Content:   "entry",
		Tags:      tags,
		CreatedAt: testNow.AddDate(0, 0, -daysAgo),
	}
}

func intp(n int) *int { return &n }

func TestSummarizeJournal_Empty(t *testing.T) {
	got := SummarizeJournal(nil, testNow)
	assert.Equal(t, 0, got.TotalEntries)
	assert.Equal(t, 0.0, got.AverageMoodBefore)
	assert.Equal(t, 0.0, got.AverageMoodAfter)
	assert.Equal(t, 0, got.WritingStreak)
	assert.Equal(t, 0, got.TotalTagsUsed)
	assert.NotNil(t, got.MostCommonTags)
	assert.Empty(t, got.MostCommonTags)
}

func TestSummarizeJournal_MoodAveragesIndependent(t *testing.T) {
	entries := []models.JournalEntry{
		{Content: "a", MoodBefore: intp(4), MoodAfter: intp(7), CreatedAt: testNow},
		{Content: "b", MoodBefore: intp(5), CreatedAt: testNow},
		{Content: "c", MoodAfter: intp(6), CreatedAt: testNow},
		{Content: "d", CreatedAt: testNow},
	}
	got := SummarizeJournal(entries, testNow)
	assert.Equal(t, 4.5, got.AverageMoodBefore)
	assert.Equal(t, 6.5, got.AverageMoodAfter)
}

func TestTopTags(t *testing.T) {
	entries := []models.JournalEntry{
		journalAt(0, "gratitude", "sleep"),
		journalAt(1, "gratitude", "work"),
		journalAt(2, "gratitude", "sleep", "work"),
		journalAt(3, "family"),
	}
	tags, total := topTags(entries, 5)
	assert.Equal(t, 4, total)
	if assert.Len(t, tags, 4) {
		assert.Equal(t, TagCount{Tag: "gratitude", Count: 3}, tags[0])
		// sleep and work tie at 2; sleep appeared first
		assert.Equal(t, TagCount{Tag: "sleep", Count: 2}, tags[1])
		assert.Equal(t, TagCount{Tag: "work", Count: 2}, tags[2])
		assert.Equal(t, TagCount{Tag: "family", Count: 1}, tags[3])
	}
}

func TestTopTags_CapsAtFive(t *testing.T) {
	entries := []models.JournalEntry{
		journalAt(0, "a", "b", "c", "d", "e", "f", "g"),
	}
	got := SummarizeJournal(entries, testNow)
	assert.Len(t, got.MostCommonTags, 5)
	assert.Equal(t, 7, got.TotalTagsUsed)
}

func TestWritingStreak(t *testing.T) {
	t.Run("requires a today entry", func(t *testing.T) {
		entries := []models.JournalEntry{journalAt(1), journalAt(2)}
		assert.Equal(t, 0, writingStreak(entries, testNow))
	})

	t.Run("consecutive days from today", func(t *testing.T) {
		entries := []models.JournalEntry{journalAt(0), journalAt(1), journalAt(2)}
		assert.Equal(t, 3, writingStreak(entries, testNow))
	})

	t.Run("gap breaks the run", func(t *testing.T) {
		entries := []models.JournalEntry{journalAt(0), journalAt(1), journalAt(3)}
		assert.Equal(t, 2, writingStreak(entries, testNow))
	})

	t.Run("same-day duplicates count once", func(t *testing.T) {
		entries := []models.JournalEntry{journalAt(0), journalAt(0), journalAt(1)}
		assert.Equal(t, 2, writingStreak(entries, testNow))
	})
}
