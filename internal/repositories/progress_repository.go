package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
)

// progressRepository implements data access for the user_progress table
type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// Upsert writes the progress record for (user_id, lesson_id) as a single
// atomic conditional write against the unique key on the pair. The first
// write inserts with attempts = 0; every later write overwrites the
// completion state and increments attempts by 1. Two concurrent writes
// for a never-before-seen pair can never both insert: one takes the
// insert path, the other the duplicate path. This MUST stay a single
// statement; an application-level check-then-create reopens the race.
func (r *progressRepository) Upsert(ctx context.Context, record *models.ProgressRecord) error {
	query := `
		INSERT INTO user_progress (id, user_id, lesson_id, completed, score, completed_at, attempts)
		VALUES (?, ?, ?, ?, ?, ?, 0)
		ON DUPLICATE KEY UPDATE
			completed = VALUES(completed),
			score = VALUES(score),
			completed_at = VALUES(completed_at),
			attempts = attempts + 1
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.LessonID,
		record.Completed,
		record.Score,
		record.CompletedAt,
	)
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to upsert progress: %w", err))
	}

	return nil
}

// GetByUserAndLesson retrieves the record for a (user, lesson) pair
func (r *progressRepository) GetByUserAndLesson(ctx context.Context, userID, lessonID string) (*models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, lesson_id, completed, score, completed_at, attempts
		FROM user_progress
		WHERE user_id = ? AND lesson_id = ?
		LIMIT 1
	`

	record := &models.ProgressRecord{}
	err := r.db.QueryRowContext(ctx, query, userID, lessonID).Scan(
		&record.ID,
		&record.UserID,
		&record.LessonID,
		&record.Completed,
		&record.Score,
		&record.CompletedAt,
		&record.Attempts,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NotFoundf("progress record not found")
	}
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to get progress: %w", err))
	}

	return record, nil
}

// ListByUser retrieves all progress records for a user
func (r *progressRepository) ListByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, lesson_id, completed, score, completed_at, attempts
		FROM user_progress
		WHERE user_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to list progress: %w", err))
	}
	defer rows.Close()

	records := []models.ProgressRecord{}
	for rows.Next() {
		var record models.ProgressRecord
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.LessonID,
			&record.Completed,
			&record.Score,
			&record.CompletedAt,
			&record.Attempts,
		)
		if err != nil {
			return nil, apperrors.Upstream(fmt.Errorf("failed to scan progress: %w", err))
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to iterate progress: %w", err))
	}

	return records, nil
}

// CountCompletedByUser counts completed lessons for a user
func (r *progressRepository) CountCompletedByUser(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM user_progress WHERE user_id = ? AND completed = TRUE`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, apperrors.Upstream(fmt.Errorf("failed to count completed lessons: %w", err))
	}

	return count, nil
}
