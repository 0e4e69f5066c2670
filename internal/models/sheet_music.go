package models

import "time"

// Difficulty is the closed set of difficulty levels
type Difficulty string

// Difficulty constants
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether the difficulty is one of the known variants
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// SheetMusic represents a sheet music entry in the catalog
type SheetMusic struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Composer     string     `json:"composer"`
	Genre        string     `json:"genre"`
	Difficulty   Difficulty `json:"difficulty_level"`
	Description  string     `json:"description,omitempty"`
	PDFURL       string     `json:"pdf_url,omitempty"`
	AudioURL     string     `json:"audio_url,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	OwnerID      string     `json:"uploaded_by"`
	Tags         []string   `json:"tags"`
	IsPublished  bool       `json:"is_published"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CreateSheetMusicRequest represents a request to create sheet music.
// New entries always start unpublished.
type CreateSheetMusicRequest struct {
	Title        string     `json:"title"`
	Composer     string     `json:"composer"`
	Genre        string     `json:"genre"`
	Difficulty   Difficulty `json:"difficulty_level"`
	Description  string     `json:"description,omitempty"`
	PDFURL       string     `json:"pdf_url,omitempty"`
	AudioURL     string     `json:"audio_url,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Tags         []string   `json:"tags"`
}

// UpdateSheetMusicRequest represents a full replace of the mutable fields
type UpdateSheetMusicRequest struct {
	Title        string     `json:"title"`
	Composer     string     `json:"composer"`
	Genre        string     `json:"genre"`
	Difficulty   Difficulty `json:"difficulty_level"`
	Description  string     `json:"description,omitempty"`
	PDFURL       string     `json:"pdf_url,omitempty"`
	AudioURL     string     `json:"audio_url,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Tags         []string   `json:"tags"`
	IsPublished  bool       `json:"is_published"`
}
