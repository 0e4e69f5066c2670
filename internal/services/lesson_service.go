package services

import (
	"context"
	"strings"
	"time"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/abcmusiclibrary/backend/internal/policy"
	"github.com/abcmusiclibrary/backend/internal/repositories"
	"github.com/google/uuid"
)

// LessonRepository is the interface that wraps methods for lessons table data access
type LessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) error
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
	List(ctx context.Context, filter repositories.ContentFilter) ([]models.Lesson, error)
	Update(ctx context.Context, lesson *models.Lesson) error
	CountPublished(ctx context.Context) (int, error)
	RecentPublished(ctx context.Context, count int) ([]models.Lesson, error)
}

// lessonService implements the lesson catalog
type lessonService struct {
	lessonRepo LessonRepository
}

// NewLessonService creates a new lesson service
func NewLessonService(lessonRepo LessonRepository) *lessonService {
	return &lessonService{
		lessonRepo: lessonRepo,
	}
}

// Create adds a new lesson owned by the actor. New lessons always start
// unpublished; publishing is an explicit update.
func (s *lessonService) Create(ctx context.Context, actor *models.User, req *models.CreateLessonRequest) (*models.Lesson, error) {
	if err := policy.Authorize(actor.Role, policy.OpCreateContent, actor.ID, ""); err != nil {
		return nil, err
	}
	if err := validateLessonFields(req.Title, req.Difficulty, req.Exercises); err != nil {
		return nil, err
	}

	exercises := req.Exercises
	if exercises == nil {
		exercises = []models.Exercise{}
	}

	lesson := &models.Lesson{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		OwnerID:     actor.ID,
		IsPublished: false,
		Exercises:   exercises,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}

	return lesson, nil
}

// Get retrieves a single lesson. Published lessons are readable by any
// authenticated user; unpublished lessons only by their owner or an admin.
func (s *lessonService) Get(ctx context.Context, actor *models.User, id string) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	op := policy.OpReadPublishedContent
	if !lesson.IsPublished {
		op = policy.OpReadUnpublishedContent
	}
	if err := policy.Authorize(actor.Role, op, actor.ID, lesson.OwnerID); err != nil {
		return nil, err
	}

	return lesson, nil
}

// List retrieves lessons matching the filter. The default scope is
// published lessons only; mine narrows to the actor's own lessons,
// published or not, which students cannot request.
func (s *lessonService) List(ctx context.Context, actor *models.User, params ListParams) ([]models.Lesson, error) {
	if params.Mine {
		if err := policy.Authorize(actor.Role, policy.OpReadUnpublishedContent, actor.ID, actor.ID); err != nil {
			return nil, err
		}
	}
	if params.Difficulty != "" && !params.Difficulty.Valid() {
		return nil, apperrors.Validationf("invalid difficulty %q", params.Difficulty)
	}

	return s.lessonRepo.List(ctx, contentFilter(actor, params))
}

// Update replaces the mutable fields of a lesson, including its publish flag
func (s *lessonService) Update(ctx context.Context, actor *models.User, id string, req *models.UpdateLessonRequest) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor.Role, policy.OpUpdateContent, actor.ID, lesson.OwnerID); err != nil {
		return nil, err
	}
	if err := validateLessonFields(req.Title, req.Difficulty, req.Exercises); err != nil {
		return nil, err
	}

	exercises := req.Exercises
	if exercises == nil {
		exercises = []models.Exercise{}
	}

	lesson.Title = strings.TrimSpace(req.Title)
	lesson.Description = req.Description
	lesson.Content = req.Content
	lesson.Category = req.Category
	lesson.Difficulty = req.Difficulty
	lesson.Exercises = exercises
	lesson.IsPublished = req.IsPublished

	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}

	return lesson, nil
}

func validateLessonFields(title string, difficulty models.Difficulty, exercises []models.Exercise) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.Validationf("title cannot be empty")
	}
	if !difficulty.Valid() {
		return apperrors.Validationf("invalid difficulty %q", difficulty)
	}
	for i, exercise := range exercises {
		if strings.TrimSpace(exercise.Question) == "" {
			return apperrors.Validationf("exercise %d: question cannot be empty", i)
		}
		if len(exercise.Choices) > 0 && (exercise.CorrectAnswer < 0 || exercise.CorrectAnswer >= len(exercise.Choices)) {
			return apperrors.Validationf("exercise %d: correct answer index out of range", i)
		}
	}
	return nil
}
