package analytics

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mindwell/wellness-backend/internal/models"
)

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func moodAt(score int, label string, daysAgo int) models.MoodEntry {
	return models.MoodEntry{
		MoodScore: score,
		MoodLabel: label,
		CreatedAt: testNow.AddDate(0, 0, -daysAgo),
	}
}

func TestAverageMood(t *testing.T) {
	assert.Equal(t, 0.0, AverageMood(nil))

	entries := []models.MoodEntry{
		moodAt(7, "happy", 0),
		moodAt(5, "neutral", 1),
		moodAt(8, "happy", 2),
	}
	// 20/3 = 6.666... rounds to 6.67
	assert.Equal(t, 6.67, AverageMood(entries))
	// the raw mean stays unrounded
	assert.InDelta(t, 20.0/3.0, MeanMood(entries), 1e-12)
	assert.Equal(t, 0.0, MeanMood(nil))
}

func TestCurrentStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, testNow))
}

func TestCurrentStreak_TodayOnly(t *testing.T) {
	entries := []models.MoodEntry{moodAt(7, "happy", 0)}
	assert.Equal(t, 1, CurrentStreak(entries, testNow))
}

func TestCurrentStreak_YesterdayOnly(t *testing.T) {
	// a streak whose newest entry is yesterday still counts
	entries := []models.MoodEntry{moodAt(7, "happy", 1)}
	assert.Equal(t, 1, CurrentStreak(entries, testNow))
}

func TestCurrentStreak_GapBreaks(t *testing.T) {
	entries := []models.MoodEntry{
		moodAt(7, "happy", 0),
		moodAt(6, "calm", 1),
		// day 2 missing
		moodAt(5, "neutral", 3),
		moodAt(5, "neutral", 4),
	}
	assert.Equal(t, 2, CurrentStreak(entries, testNow))
}

func TestCurrentStreak_SameDayCountsOnce(t *testing.T) {
	entries := []models.MoodEntry{
		moodAt(7, "happy", 0),
		moodAt(4, "sad", 0),
		moodAt(6, "calm", 0),
		moodAt(6, "calm", 1),
	}
	assert.Equal(t, 2, CurrentStreak(entries, testNow))
}

func TestCurrentStreak_TwoDaysAgoIsZero(t *testing.T) {
	entries := []models.MoodEntry{moodAt(7, "happy", 2)}
	assert.Equal(t, 0, CurrentStreak(entries, testNow))
}

func TestRecentTrend(t *testing.T) {
	t.Run("fewer than two entries", func(t *testing.T) {
		assert.Equal(t, 0.0, RecentTrend(nil, testNow))
		assert.Equal(t, 0.0, RecentTrend([]models.MoodEntry{moodAt(5, "neutral", 0)}, testNow))
	})

	t.Run("improving", func(t *testing.T) {
		entries := []models.MoodEntry{
			moodAt(8, "happy", 1),
			moodAt(8, "happy", 2),
			moodAt(4, "sad", 9),
			moodAt(6, "calm", 10),
		}
		// mean(8,8) - mean(4,6) = 3
		assert.Equal(t, 3.0, RecentTrend(entries, testNow))
	})

	t.Run("empty previous window", func(t *testing.T) {
		entries := []models.MoodEntry{
			moodAt(8, "happy", 1),
			moodAt(7, "happy", 2),
		}
		assert.Equal(t, 0.0, RecentTrend(entries, testNow))
	})

	t.Run("empty recent window", func(t *testing.T) {
		entries := []models.MoodEntry{
			moodAt(8, "happy", 8),
			moodAt(7, "happy", 9),
		}
		assert.Equal(t, 0.0, RecentTrend(entries, testNow))
	})

	t.Run("older than both windows ignored", func(t *testing.T) {
		entries := []models.MoodEntry{
			moodAt(6, "calm", 1),
			moodAt(4, "sad", 8),
			moodAt(10, "great", 30),
		}
		assert.Equal(t, 2.0, RecentTrend(entries, testNow))
	})
}

func TestMoodDistribution(t *testing.T) {
	entries := []models.MoodEntry{
		moodAt(7, "happy", 0),
		moodAt(8, "happy", 1),
		moodAt(3, "sad", 2),
	}
	assert.Equal(t, map[string]int{"happy": 2, "sad": 1}, MoodDistribution(entries))
	assert.Empty(t, MoodDistribution(nil))
}

func TestMoodSeries_AscendingAndRestartable(t *testing.T) {
	entries := []models.MoodEntry{
		moodAt(7, "happy", 0),
		moodAt(3, "sad", 2),
		moodAt(5, "neutral", 1),
	}
	seq := MoodSeries(entries)

	first := slices.Collect(seq)
	if assert.Len(t, first, 3) {
		assert.Equal(t, "2025-06-13", first[0].Date)
		assert.Equal(t, "2025-06-14", first[1].Date)
		assert.Equal(t, "2025-06-15", first[2].Date)
	}

	// ranging again walks the same points
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// early break must not panic or leak
	for range seq {
		break
	}
}

func TestSummarizeMood_Empty(t *testing.T) {
	got := SummarizeMood(nil, nil, testNow)
	assert.Equal(t, 0, got.TotalEntries)
	assert.Equal(t, 0.0, got.AverageMood)
	assert.Equal(t, 0, got.CurrentStreak)
	assert.Equal(t, 0.0, got.RecentTrend)
	assert.NotNil(t, got.MoodData)
	assert.Empty(t, got.MoodData)
	assert.NotNil(t, got.MoodDistribution)
	assert.Equal(t, "No mood data available", got.Message)
}

func TestSummarizeMood_WindowNarrowsOnlySeries(t *testing.T) {
	all := []models.MoodEntry{
		moodAt(7, "happy", 0),
		moodAt(5, "neutral", 40),
	}
	windowed := all[:1]

	got := SummarizeMood(all, windowed, testNow)
	assert.Equal(t, 2, got.TotalEntries)
	assert.Equal(t, 6.0, got.AverageMood)
	assert.Len(t, got.MoodData, 1)
	assert.Empty(t, got.Message)
}
