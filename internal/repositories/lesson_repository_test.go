package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLessonTestRepository creates a lesson repository with a mock database
func setupLessonTestRepository(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLessonRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func testLesson() *models.Lesson {
	return &models.Lesson{
		ID:          "lesson-1",
		Title:       "Reading the Treble Clef",
		Description: "Note names on the treble staff",
		Content:     "The lines of the treble staff are E, G, B, D and F.",
		Category:    "theory",
		Difficulty:  models.DifficultyBeginner,
		OwnerID:     "teacher-1",
		IsPublished: true,
		Exercises: []models.Exercise{
			{
				Question:      "Which note sits on the bottom line of the treble staff?",
				Type:          "multiple_choice",
				Choices:       []string{"E", "F", "G"},
				CorrectAnswer: 0,
			},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func lessonRows(lessons ...*models.Lesson) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "description", "content", "category", "difficulty_level",
		"owner_id", "is_published", "exercises", "created_at"})
	for _, l := range lessons {
		exercises, _ := json.Marshal(l.Exercises)
		rows.AddRow(l.ID, l.Title, l.Description, l.Content, l.Category, string(l.Difficulty),
			l.OwnerID, l.IsPublished, exercises, l.CreatedAt)
	}
	return rows
}

func TestLessonRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO lessons`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), testLesson())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO lessons`).
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), testLesson())

		assert.ErrorIs(t, err, apperrors.ErrUpstream)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLessonRepository_GetByID(t *testing.T) {
	t.Run("exercises survive the round trip", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		lesson := testLesson()
		mock.ExpectQuery(`FROM lessons WHERE id = \? LIMIT 1`).
			WithArgs(lesson.ID).
			WillReturnRows(lessonRows(lesson))

		got, err := repo.GetByID(context.Background(), lesson.ID)

		require.NoError(t, err)
		assert.Equal(t, lesson.Title, got.Title)
		require.Len(t, got.Exercises, 1)
		assert.Equal(t, lesson.Exercises[0].Question, got.Exercises[0].Question)
		assert.Equal(t, lesson.Exercises[0].Choices, got.Exercises[0].Choices)
		assert.Equal(t, 0, got.Exercises[0].CorrectAnswer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("null exercises become an empty slice", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		lesson := testLesson()
		rows := sqlmock.NewRows([]string{"id", "title", "description", "content", "category", "difficulty_level",
			"owner_id", "is_published", "exercises", "created_at"}).
			AddRow(lesson.ID, lesson.Title, lesson.Description, lesson.Content, lesson.Category,
				string(lesson.Difficulty), lesson.OwnerID, lesson.IsPublished, nil, lesson.CreatedAt)
		mock.ExpectQuery(`FROM lessons WHERE id = \? LIMIT 1`).
			WithArgs(lesson.ID).
			WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), lesson.ID)

		require.NoError(t, err)
		assert.NotNil(t, got.Exercises)
		assert.Empty(t, got.Exercises)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`FROM lessons WHERE id = \? LIMIT 1`).
			WithArgs("missing").
			WillReturnRows(lessonRows())

		got, err := repo.GetByID(context.Background(), "missing")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLessonRepository_List(t *testing.T) {
	t.Run("published only with filters", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`(?s)FROM lessons.+WHERE is_published = TRUE AND category = \? AND \(LOWER\(title\) LIKE \? OR LOWER\(description\) LIKE \?\).+ORDER BY created_at DESC`).
			WithArgs("theory", "%clef%", "%clef%", 20, 0).
			WillReturnRows(lessonRows(testLesson()))

		lessons, err := repo.List(context.Background(), ContentFilter{
			GenreOrCategory: "theory",
			Search:          "Clef",
			PublishedOnly:   true,
			Limit:           20,
		})

		require.NoError(t, err)
		require.Len(t, lessons, 1)
		assert.Equal(t, "Reading the Treble Clef", lessons[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owner filter includes unpublished", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`(?s)FROM lessons.+WHERE owner_id = \?.+ORDER BY created_at DESC`).
			WithArgs("teacher-1", 20, 0).
			WillReturnRows(lessonRows())

		_, err := repo.List(context.Background(), ContentFilter{OwnerID: "teacher-1", Limit: 20})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLessonRepository_Update(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`(?s)UPDATE lessons.+SET title = \?, description = \?, content = \?, category = \?, difficulty_level = \?,.+exercises = \?, is_published = \?.+WHERE id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), testLesson())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_CountPublished(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM lessons WHERE is_published = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(12))

	count, err := repo.CountPublished(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
