package models

import "time"

type Resource struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Content         string     `json:"content"`
	Category        string     `json:"category"` // e.g. "Meditation", "Depression"
	Type            string     `json:"type"`     // e.g. "Article", "Video", "Exercise"
	URL             *string    `json:"url"`
	DurationMinutes *int       `json:"duration_minutes"`
	DifficultyLevel *string    `json:"difficulty_level"` // Beginner | Intermediate | Advanced
	Tags            StringList `json:"tags"`
	IsFeatured      bool       `json:"is_featured"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

var DifficultyLevels = map[string]struct{}{
	"Beginner":     {},
	"Intermediate": {},
	"Advanced":     {},
}
