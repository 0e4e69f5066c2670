package services

import (
	"context"
	"time"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/abcmusiclibrary/backend/internal/policy"
	"github.com/google/uuid"
)

// ProgressRepository is the interface that wraps methods for user_progress table data access
type ProgressRepository interface {
	// Upsert writes the single record for (user, lesson) in one statement.
	// The first write leaves attempts at 0; every later write increments it.
	Upsert(ctx context.Context, record *models.ProgressRecord) error
	// GetByUserAndLesson retrieves the record for a (user, lesson) pair.
	GetByUserAndLesson(ctx context.Context, userID, lessonID string) (*models.ProgressRecord, error)
	// ListByUser retrieves all of a user's progress records.
	ListByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error)
	// CountCompletedByUser counts a user's completed records.
	CountCompletedByUser(ctx context.Context, userID string) (int, error)
}

// progressService implements per-lesson progress tracking.
// Progress is always the actor's own; there is no path to write or read
// another user's records.
type progressService struct {
	progressRepo ProgressRepository
	lessonRepo   LessonRepository
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo ProgressRepository, lessonRepo LessonRepository) *progressService {
	return &progressService{
		progressRepo: progressRepo,
		lessonRepo:   lessonRepo,
	}
}

// Record upserts the actor's progress for a lesson and returns the stored
// record. Completion state and score are replaced wholesale on every call;
// marking a lesson incomplete clears its completion timestamp.
func (s *progressService) Record(ctx context.Context, actor *models.User, lessonID string, req *models.RecordProgressRequest) (*models.ProgressRecord, error) {
	if err := policy.Authorize(actor.Role, policy.OpRecordOwnProgress, actor.ID, actor.ID); err != nil {
		return nil, err
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if !lesson.IsPublished {
		// Recording against an unpublished lesson requires the same access
		// as reading it
		if err := policy.Authorize(actor.Role, policy.OpReadUnpublishedContent, actor.ID, lesson.OwnerID); err != nil {
			return nil, err
		}
	}

	if req.Score != nil && (*req.Score < 0 || *req.Score > 100) {
		return nil, apperrors.Validationf("score must be between 0 and 100")
	}

	var completedAt *time.Time
	if req.Completed {
		now := time.Now().UTC()
		completedAt = &now
	}

	record := &models.ProgressRecord{
		ID:          uuid.NewString(),
		UserID:      actor.ID,
		LessonID:    lessonID,
		Completed:   req.Completed,
		Score:       req.Score,
		CompletedAt: completedAt,
	}
	if err := s.progressRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	// Re-read to pick up the stored id and attempt count; the upsert keeps
	// the original id when the record already existed
	return s.progressRepo.GetByUserAndLesson(ctx, actor.ID, lessonID)
}

// List retrieves all of the actor's progress records
func (s *progressService) List(ctx context.Context, actor *models.User) ([]models.ProgressRecord, error) {
	if err := policy.Authorize(actor.Role, policy.OpReadOwnProgress, actor.ID, actor.ID); err != nil {
		return nil, err
	}
	return s.progressRepo.ListByUser(ctx, actor.ID)
}

// GetForLesson retrieves the actor's record for a single lesson
func (s *progressService) GetForLesson(ctx context.Context, actor *models.User, lessonID string) (*models.ProgressRecord, error) {
	if err := policy.Authorize(actor.Role, policy.OpReadOwnProgress, actor.ID, actor.ID); err != nil {
		return nil, err
	}
	return s.progressRepo.GetByUserAndLesson(ctx, actor.ID, lessonID)
}
