package analytics

import (
	"sort"
	"time"

	"github.com/mindwell/wellness-backend/internal/models"
)

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type JournalSummary struct {
	TotalEntries      int        `json:"total_entries"`
	AverageMoodBefore float64    `json:"average_mood_before"`
	AverageMoodAfter  float64    `json:"average_mood_after"`
	MostCommonTags    []TagCount `json:"most_common_tags"`
	WritingStreak     int        `json:"writing_streak"`
	TotalTagsUsed     int        `json:"total_tags_used"`
}

// SummarizeJournal aggregates a user's full journal history. An empty
// history is a defined state: every numeric field is 0 and the tag list is
// empty, never null.
func SummarizeJournal(entries []models.JournalEntry, now time.Time) JournalSummary {
	s := JournalSummary{
		TotalEntries:   len(entries),
		MostCommonTags: []TagCount{},
	}
	if len(entries) == 0 {
		return s
	}

	// mood_before and mood_after average independently over the entries
	// where each is present
	var beforeSum, beforeN, afterSum, afterN int
	for _, e := range entries {
		if e.MoodBefore != nil {
			beforeSum += *e.MoodBefore
			beforeN++
		}
		if e.MoodAfter != nil {
			afterSum += *e.MoodAfter
			afterN++
		}
	}
	if beforeN > 0 {
		s.AverageMoodBefore = round2(float64(beforeSum) / float64(beforeN))
	}
	if afterN > 0 {
		s.AverageMoodAfter = round2(float64(afterSum) / float64(afterN))
	}

	s.MostCommonTags, s.TotalTagsUsed = topTags(entries, 5)
	s.WritingStreak = writingStreak(entries, now)
	return s
}

// topTags counts tag occurrences across all entries and returns the top n
// by count. The sort is stable over first-encountered order, so ties keep
// the order in which tags first appeared.
func topTags(entries []models.JournalEntry, n int) ([]TagCount, int) {
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		for _, tag := range e.Tags {
			if _, ok := counts[tag]; !ok {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	tags := make([]TagCount, 0, len(order))
	for _, tag := range order {
		tags = append(tags, TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Count > tags[j].Count })
	if len(tags) > n {
		tags = tags[:n]
	}
	return tags, len(counts)
}

// writingStreak counts distinct consecutive entry dates ending today: the
// i-th most recent distinct date must equal today minus i days. Unlike the
// mood streak there is no one-day grace, a streak without a today entry
// is 0.
func writingStreak(entries []models.JournalEntry, now time.Time) int {
	dates := distinctDaysDesc(entries, func(e models.JournalEntry) time.Time { return e.CreatedAt })
	today := dayOf(now)
	streak := 0
	for i, d := range dates {
		if !d.Equal(today.AddDate(0, 0, -i)) {
			break
		}
		streak++
	}
	return streak
}
