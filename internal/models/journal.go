package models

import "time"

type JournalEntry struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Title      *string    `json:"title"`
	Content    string     `json:"content"`
	MoodBefore *int       `json:"mood_before"` // 1-10
	MoodAfter  *int       `json:"mood_after"`  // 1-10
	Tags       StringList `json:"tags"`
	IsPrivate  bool       `json:"is_private"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
