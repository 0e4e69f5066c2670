package models

// DashboardStats holds the per-user progress counters
type DashboardStats struct {
	TotalLessons       int     `json:"total_lessons"`
	CompletedLessons   int     `json:"completed_lessons"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// DashboardSummary is the aggregate returned by the dashboard endpoint
type DashboardSummary struct {
	User             *User          `json:"user"`
	Stats            DashboardStats `json:"stats"`
	RecentSheetMusic []SheetMusic   `json:"recent_sheet_music"`
	RecentLessons    []Lesson       `json:"recent_lessons"`
}
