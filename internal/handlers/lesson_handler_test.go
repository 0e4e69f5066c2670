package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/abcmusiclibrary/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockLessonService is a mock implementation of LessonService
type mockLessonService struct {
	lesson *models.Lesson
	err    error
}

func (m *mockLessonService) Create(ctx context.Context, actor *models.User, req *models.CreateLessonRequest) (*models.Lesson, error) {
	return m.lesson, m.err
}

func (m *mockLessonService) Get(ctx context.Context, actor *models.User, id string) (*models.Lesson, error) {
	return m.lesson, m.err
}

func (m *mockLessonService) List(ctx context.Context, actor *models.User, params services.ListParams) ([]models.Lesson, error) {
	return nil, m.err
}

func (m *mockLessonService) Update(ctx context.Context, actor *models.User, id string, req *models.UpdateLessonRequest) (*models.Lesson, error) {
	return m.lesson, m.err
}

func TestLessonHandler_Create_RespondsOK(t *testing.T) {
	svc := &mockLessonService{lesson: &models.Lesson{ID: "lesson-1", Title: "Reading the Treble Clef"}}
	h := NewLessonHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/lessons",
		strings.NewReader(`{"title":"Reading the Treble Clef","difficulty":"beginner"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, asTeacher(req))

	assert.Equal(t, http.StatusOK, rec.Code)
}
