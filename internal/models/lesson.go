package models

import "time"

// Exercise is a single exercise inside a lesson. Exercises keep the order
// they were authored in.
type Exercise struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Choices       []string `json:"choices,omitempty"`
	CorrectAnswer int      `json:"correct_answer"`
}

// Lesson represents a lesson in the catalog
type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"` // rich-text body
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty_level"`
	OwnerID     string     `json:"created_by"`
	IsPublished bool       `json:"is_published"`
	Exercises   []Exercise `json:"exercises"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateLessonRequest represents a request to create a lesson.
// New lessons always start unpublished.
type CreateLessonRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty_level"`
	Exercises   []Exercise `json:"exercises"`
}

// UpdateLessonRequest represents a full replace of the mutable fields
type UpdateLessonRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty_level"`
	Exercises   []Exercise `json:"exercises"`
	IsPublished bool       `json:"is_published"`
}
