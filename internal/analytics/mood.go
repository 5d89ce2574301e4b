// Package analytics derives aggregate views over a user's wellness
// history. Every function here is pure: it reads already-fetched rows and
// an explicit evaluation instant, touches no storage, and is safe to call
// repeatedly.
package analytics

import (
	"iter"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/mindwell/wellness-backend/internal/models"
)

type MoodPoint struct {
	Date  string `json:"date"`
	Score int    `json:"mood_score"`
	Label string `json:"mood_label"`
}

type MoodOverview struct {
	TotalEntries     int            `json:"total_entries"`
	AverageMood      float64        `json:"average_mood"`
	CurrentStreak    int            `json:"current_streak"`
	RecentTrend      float64        `json:"recent_trend"`
	MoodData         []MoodPoint    `json:"mood_data"`
	MoodDistribution map[string]int `json:"mood_distribution"`
	// Message is set only when the history is empty.
	Message string `json:"message,omitempty"`
}

// SummarizeMood builds the full analytics payload. all is the user's
// complete mood history; windowed is the subset feeding the chart series.
func SummarizeMood(all, windowed []models.MoodEntry, now time.Time) MoodOverview {
	data := slices.Collect(MoodSeries(windowed))
	if data == nil {
		data = []MoodPoint{}
	}
	msg := ""
	if len(all) == 0 {
		msg = "No mood data available"
	}
	return MoodOverview{
		Message:          msg,
		TotalEntries:     len(all),
		AverageMood:      AverageMood(all),
		CurrentStreak:    CurrentStreak(all, now),
		RecentTrend:      RecentTrend(all, now),
		MoodData:         data,
		MoodDistribution: MoodDistribution(all),
	}
}

// MeanMood is the unrounded mean score. Tier comparisons use this;
// AverageMood rounds it for display.
func MeanMood(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.MoodScore
	}
	return float64(sum) / float64(len(entries))
}

func AverageMood(entries []models.MoodEntry) float64 {
	return round2(MeanMood(entries))
}

// CurrentStreak counts consecutive calendar days with at least one entry,
// walking backward from today's date. Each step must land on the cursor
// date or exactly one day earlier, so a streak whose newest entry is
// yesterday still counts. Multiple entries on the same day count once.
func CurrentStreak(entries []models.MoodEntry, now time.Time) int {
	dates := distinctDaysDesc(entries, func(e models.MoodEntry) time.Time { return e.CreatedAt })
	streak := 0
	cursor := dayOf(now)
	for _, d := range dates {
		if d.Equal(cursor) || d.Equal(cursor.AddDate(0, 0, -1)) {
			streak++
			cursor = d
		} else {
			break
		}
	}
	return streak
}

// RecentTrend is mean(last 7 days) minus mean(the 7 days before that),
// measured back from end. Zero when either window has no entries.
func RecentTrend(entries []models.MoodEntry, end time.Time) float64 {
	if len(entries) < 2 {
		return 0
	}
	lastWeek := end.AddDate(0, 0, -7)
	prevWeek := lastWeek.AddDate(0, 0, -7)

	var recentSum, recentN, prevSum, prevN int
	for _, e := range entries {
		switch {
		case !e.CreatedAt.Before(lastWeek):
			recentSum += e.MoodScore
			recentN++
		case !e.CreatedAt.Before(prevWeek):
			prevSum += e.MoodScore
			prevN++
		}
	}
	if recentN == 0 || prevN == 0 {
		return 0
	}
	return round2(float64(recentSum)/float64(recentN) - float64(prevSum)/float64(prevN))
}

func MoodDistribution(entries []models.MoodEntry) map[string]int {
	dist := make(map[string]int, len(entries))
	for _, e := range entries {
		dist[e.MoodLabel]++
	}
	return dist
}

// MoodSeries yields chart points in ascending chronological order. The
// returned sequence is restartable: every range re-walks the sorted copy.
func MoodSeries(entries []models.MoodEntry) iter.Seq[MoodPoint] {
	sorted := make([]models.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })
	return func(yield func(MoodPoint) bool) {
		for _, e := range sorted {
			p := MoodPoint{
				Date:  e.CreatedAt.UTC().Format(time.DateOnly),
				Score: e.MoodScore,
				Label: e.MoodLabel,
			}
			if !yield(p) {
				return
			}
		}
	}
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func distinctDaysDesc[T any](entries []T, at func(T) time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(entries))
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		d := dayOf(at(e))
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}
