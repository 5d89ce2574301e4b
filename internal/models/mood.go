package models

import "time"

type MoodEntry struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	MoodScore   int        `json:"mood_score"` // 1-10
	MoodLabel   string     `json:"mood_label"`
	Notes       *string    `json:"notes"`
	Activities  StringList `json:"activities"`
	SleepHours  *float64   `json:"sleep_hours"`
	StressLevel *int       `json:"stress_level"` // 1-10
	EnergyLevel *int       `json:"energy_level"` // 1-10
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ValidMoodScore(n int) bool { return n >= 1 && n <= 10 }
