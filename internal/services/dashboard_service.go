package services

import (
	"context"
	"math"

	"github.com/abcmusiclibrary/backend/internal/models"
)

// recentCount is how many recent entries each dashboard list carries
const recentCount = 5

// dashboardService aggregates the per-user dashboard
type dashboardService struct {
	lessonRepo   LessonRepository
	sheetRepo    SheetMusicRepository
	progressRepo ProgressRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(lessonRepo LessonRepository, sheetRepo SheetMusicRepository, progressRepo ProgressRepository) *dashboardService {
	return &dashboardService{
		lessonRepo:   lessonRepo,
		sheetRepo:    sheetRepo,
		progressRepo: progressRepo,
	}
}

// Summary builds the dashboard for the actor: progress counters over the
// published lesson catalog plus the five most recent published entries of
// each catalog. With no published lessons the percentage is zero, not a
// division error.
func (s *dashboardService) Summary(ctx context.Context, actor *models.User) (*models.DashboardSummary, error) {
	total, err := s.lessonRepo.CountPublished(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := s.progressRepo.CountCompletedByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(completed)/float64(total)*100*100) / 100
	}

	recentSheets, err := s.sheetRepo.RecentPublished(ctx, recentCount)
	if err != nil {
		return nil, err
	}

	recentLessons, err := s.lessonRepo.RecentPublished(ctx, recentCount)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		User: actor,
		Stats: models.DashboardStats{
			TotalLessons:       total,
			CompletedLessons:   completed,
			ProgressPercentage: percentage,
		},
		RecentSheetMusic: recentSheets,
		RecentLessons:    recentLessons,
	}, nil
}
