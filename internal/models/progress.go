package models

import "time"

// ProgressRecord is the single record kept per (user, lesson) pair.
// Attempts is monotonic: the first write leaves it at 0, every later
// write increments it by 1. Records are never deleted.
type ProgressRecord struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	LessonID    string     `json:"lesson_id"`
	Completed   bool       `json:"completed"`
	Score       *int       `json:"score,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Attempts    int        `json:"attempts"`
}

// RecordProgressRequest represents a progress update for a lesson
type RecordProgressRequest struct {
	Completed bool `json:"completed"`
	Score     *int `json:"score,omitempty"`
}
