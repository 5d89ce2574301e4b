package models

import "time"

type ExerciseSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ExerciseType    string    `json:"exercise_type"` // jumping-jacks, push-ups, ...
	ExerciseName    string    `json:"exercise_name"`
	DurationSeconds int       `json:"duration_seconds"`
	Completed       bool      `json:"completed"`
	SessionDate     Date      `json:"session_date"`
	CompletedAt     time.Time `json:"completed_at"`
	CreatedAt       time.Time `json:"created_at"`
}

type MeditationSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	SessionType     string    `json:"session_type"` // basic, box, 478, ...
	SessionName     string    `json:"session_name"`
	DurationSeconds int       `json:"duration_seconds"`
	BreathCount     int       `json:"breath_count"`
	Completed       bool      `json:"completed"`
	SessionDate     Date      `json:"session_date"`
	CompletedAt     time.Time `json:"completed_at"`
	CreatedAt       time.Time `json:"created_at"`
}

type BreathingSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	MethodType      string    `json:"method_type"` // box, 478, triangle, alternate
	MethodName      string    `json:"method_name"`
	DurationSeconds int       `json:"duration_seconds"`
	CyclesCompleted int       `json:"cycles_completed"`
	Completed       bool      `json:"completed"`
	SessionDate     Date      `json:"session_date"`
	CompletedAt     time.Time `json:"completed_at"`
	CreatedAt       time.Time `json:"created_at"`
}
