package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
)

// lessonRepository implements data access for the lessons table
type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

const lessonColumns = `id, title, description, content, category, difficulty_level,
			owner_id, is_published, exercises, created_at`

// Create inserts a new lesson
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	exercises, err := json.Marshal(lesson.Exercises)
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to marshal exercises: %w", err))
	}

	query := `
		INSERT INTO lessons (id, title, description, content, category, difficulty_level,
			owner_id, is_published, exercises, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		lesson.ID,
		lesson.Title,
		lesson.Description,
		lesson.Content,
		lesson.Category,
		lesson.Difficulty,
		lesson.OwnerID,
		lesson.IsPublished,
		exercises,
		lesson.CreatedAt,
	)
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to create lesson: %w", err))
	}

	return nil
}

// GetByID retrieves a lesson by ID
func (r *lessonRepository) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	query := fmt.Sprintf(`SELECT %s FROM lessons WHERE id = ? LIMIT 1`, lessonColumns)

	row := r.db.QueryRowContext(ctx, query, id)
	lesson, err := scanLesson(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFoundf("lesson not found")
	}
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to get lesson: %w", err))
	}

	return lesson, nil
}

// List retrieves lessons with filtering and pagination
func (r *lessonRepository) List(ctx context.Context, filter ContentFilter) ([]models.Lesson, error) {
	var whereClauses []string
	var args []any

	if filter.PublishedOnly {
		whereClauses = append(whereClauses, "is_published = TRUE")
	}
	if filter.OwnerID != "" {
		whereClauses = append(whereClauses, "owner_id = ?")
		args = append(args, filter.OwnerID)
	}
	if filter.GenreOrCategory != "" {
		whereClauses = append(whereClauses, "category = ?")
		args = append(args, filter.GenreOrCategory)
	}
	if filter.Difficulty != "" {
		whereClauses = append(whereClauses, "difficulty_level = ?")
		args = append(args, filter.Difficulty)
	}
	if filter.Search != "" {
		whereClauses = append(whereClauses, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM lessons
		%s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, lessonColumns, whereClause)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to list lessons: %w", err))
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		lesson, err := scanLesson(rows.Scan)
		if err != nil {
			return nil, apperrors.Upstream(fmt.Errorf("failed to scan lesson: %w", err))
		}
		lessons = append(lessons, *lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to iterate lessons: %w", err))
	}

	return lessons, nil
}

// Update replaces the mutable fields of a lesson
func (r *lessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	exercises, err := json.Marshal(lesson.Exercises)
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to marshal exercises: %w", err))
	}

	query := `
		UPDATE lessons
		SET title = ?, description = ?, content = ?, category = ?, difficulty_level = ?,
			exercises = ?, is_published = ?
		WHERE id = ?
	`

	_, err = r.db.ExecContext(ctx, query,
		lesson.Title,
		lesson.Description,
		lesson.Content,
		lesson.Category,
		lesson.Difficulty,
		exercises,
		lesson.IsPublished,
		lesson.ID,
	)
	if err != nil {
		return apperrors.Upstream(fmt.Errorf("failed to update lesson: %w", err))
	}

	return nil
}

// CountPublished counts published lessons
func (r *lessonRepository) CountPublished(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM lessons WHERE is_published = TRUE`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, apperrors.Upstream(fmt.Errorf("failed to count published lessons: %w", err))
	}

	return count, nil
}

// RecentPublished retrieves the most recently created published lessons, newest first
func (r *lessonRepository) RecentPublished(ctx context.Context, count int) ([]models.Lesson, error) {
	return r.List(ctx, ContentFilter{PublishedOnly: true, Limit: count})
}

// scanLesson scans a row into a Lesson, decoding the exercises JSON.
// Exercises keep their stored order.
func scanLesson(scan func(dest ...any) error) (*models.Lesson, error) {
	lesson := &models.Lesson{}
	var exercises []byte

	err := scan(
		&lesson.ID,
		&lesson.Title,
		&lesson.Description,
		&lesson.Content,
		&lesson.Category,
		&lesson.Difficulty,
		&lesson.OwnerID,
		&lesson.IsPublished,
		&exercises,
		&lesson.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(exercises) > 0 {
		if err := json.Unmarshal(exercises, &lesson.Exercises); err != nil {
			return nil, fmt.Errorf("failed to unmarshal exercises: %w", err)
		}
	}
	if lesson.Exercises == nil {
		lesson.Exercises = []models.Exercise{}
	}

	return lesson, nil
}
