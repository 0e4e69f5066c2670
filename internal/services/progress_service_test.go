package services

import (
	"context"
	"testing"
	"time"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProgressRepository is a mock implementation of ProgressRepository
type mockProgressRepository struct {
	record         *models.ProgressRecord
	listResult     []models.ProgressRecord
	completedCount int
	err            error
	upserted       *models.ProgressRecord
	upsertCalls    int
}

func (m *mockProgressRepository) Upsert(ctx context.Context, record *models.ProgressRecord) error {
	if m.err != nil {
		return m.err
	}
	m.upserted = record
	m.upsertCalls++
	// Mirror the single-statement upsert: the stored record keeps its id
	// across writes and counts every write after the first
	if m.record == nil {
		stored := *record
		m.record = &stored
	} else {
		m.record.Completed = record.Completed
		m.record.Score = record.Score
		m.record.CompletedAt = record.CompletedAt
		m.record.Attempts++
	}
	return nil
}

func (m *mockProgressRepository) GetByUserAndLesson(ctx context.Context, userID, lessonID string) (*models.ProgressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.record == nil {
		return nil, apperrors.NotFoundf("progress not found")
	}
	return m.record, nil
}

func (m *mockProgressRepository) ListByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listResult, nil
}

func (m *mockProgressRepository) CountCompletedByUser(ctx context.Context, userID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.completedCount, nil
}

func publishedLesson() *models.Lesson {
	return &models.Lesson{ID: "lesson-1", Title: "Intervals", OwnerID: "actor-teacher", IsPublished: true}
}

func TestProgressService_Record(t *testing.T) {
	score := 85

	t.Run("first write creates the record", func(t *testing.T) {
		progressRepo := &mockProgressRepository{}
		svc := NewProgressService(progressRepo, &mockLessonRepository{lesson: publishedLesson()})

		record, err := svc.Record(context.Background(), testActor(models.RoleStudent), "lesson-1", &models.RecordProgressRequest{
			Completed: true,
			Score:     &score,
		})

		require.NoError(t, err)
		assert.Equal(t, "actor-student", record.UserID)
		assert.Equal(t, "lesson-1", record.LessonID)
		assert.True(t, record.Completed)
		require.NotNil(t, record.CompletedAt)
		assert.Equal(t, 0, record.Attempts)
	})

	t.Run("repeat writes keep one record and count attempts", func(t *testing.T) {
		progressRepo := &mockProgressRepository{}
		svc := NewProgressService(progressRepo, &mockLessonRepository{lesson: publishedLesson()})
		actor := testActor(models.RoleStudent)

		first, err := svc.Record(context.Background(), actor, "lesson-1", &models.RecordProgressRequest{Completed: false})
		require.NoError(t, err)
		second, err := svc.Record(context.Background(), actor, "lesson-1", &models.RecordProgressRequest{Completed: true, Score: &score})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, second.Attempts)
		assert.True(t, second.Completed)
	})

	t.Run("marking incomplete clears the completion timestamp", func(t *testing.T) {
		now := time.Now().UTC()
		progressRepo := &mockProgressRepository{
			record: &models.ProgressRecord{ID: "prog-1", UserID: "actor-student", LessonID: "lesson-1", Completed: true, CompletedAt: &now},
		}
		svc := NewProgressService(progressRepo, &mockLessonRepository{lesson: publishedLesson()})

		record, err := svc.Record(context.Background(), testActor(models.RoleStudent), "lesson-1", &models.RecordProgressRequest{Completed: false})

		require.NoError(t, err)
		assert.False(t, record.Completed)
		assert.Nil(t, record.CompletedAt)
	})

	t.Run("score out of range is rejected", func(t *testing.T) {
		progressRepo := &mockProgressRepository{}
		svc := NewProgressService(progressRepo, &mockLessonRepository{lesson: publishedLesson()})
		bad := 101

		_, err := svc.Record(context.Background(), testActor(models.RoleStudent), "lesson-1", &models.RecordProgressRequest{Score: &bad})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Zero(t, progressRepo.upsertCalls)
	})

	t.Run("missing lesson is not found", func(t *testing.T) {
		svc := NewProgressService(&mockProgressRepository{}, &mockLessonRepository{})

		_, err := svc.Record(context.Background(), testActor(models.RoleStudent), "missing", &models.RecordProgressRequest{})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("student cannot record against an unpublished lesson", func(t *testing.T) {
		lesson := publishedLesson()
		lesson.IsPublished = false
		progressRepo := &mockProgressRepository{}
		svc := NewProgressService(progressRepo, &mockLessonRepository{lesson: lesson})

		_, err := svc.Record(context.Background(), testActor(models.RoleStudent), "lesson-1", &models.RecordProgressRequest{})

		assert.ErrorIs(t, err, apperrors.ErrAuthorization)
		assert.Zero(t, progressRepo.upsertCalls)
	})

	t.Run("owner records against own unpublished lesson", func(t *testing.T) {
		lesson := publishedLesson()
		lesson.IsPublished = false
		svc := NewProgressService(&mockProgressRepository{}, &mockLessonRepository{lesson: lesson})

		_, err := svc.Record(context.Background(), testActor(models.RoleTeacher), "lesson-1", &models.RecordProgressRequest{Completed: true})

		assert.NoError(t, err)
	})
}

func TestProgressService_List(t *testing.T) {
	records := []models.ProgressRecord{
		{ID: "prog-1", UserID: "actor-student", LessonID: "lesson-1", Completed: true},
	}
	svc := NewProgressService(&mockProgressRepository{listResult: records}, &mockLessonRepository{})

	got, err := svc.List(context.Background(), testActor(models.RoleStudent))

	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestProgressService_GetForLesson(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		record := &models.ProgressRecord{ID: "prog-1", UserID: "actor-student", LessonID: "lesson-1", Attempts: 3}
		svc := NewProgressService(&mockProgressRepository{record: record}, &mockLessonRepository{})

		got, err := svc.GetForLesson(context.Background(), testActor(models.RoleStudent), "lesson-1")

		require.NoError(t, err)
		assert.Equal(t, 3, got.Attempts)
	})

	t.Run("no record is not found", func(t *testing.T) {
		svc := NewProgressService(&mockProgressRepository{}, &mockLessonRepository{})

		_, err := svc.GetForLesson(context.Background(), testActor(models.RoleStudent), "lesson-1")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
