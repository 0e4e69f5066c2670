package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for progress tracking business logic
type ProgressService interface {
	// Record upserts the actor's progress for a lesson and returns the stored record.
	Record(ctx context.Context, actor *models.User, lessonID string, req *models.RecordProgressRequest) (*models.ProgressRecord, error)
	// List retrieves all of the actor's progress records.
	List(ctx context.Context, actor *models.User) ([]models.ProgressRecord, error)
	// GetForLesson retrieves the actor's record for a single lesson.
	GetForLesson(ctx context.Context, actor *models.User, lessonID string) (*models.ProgressRecord, error)
}

// ProgressHandler handles progress tracking HTTP requests
type ProgressHandler struct {
	BaseHandler
	progressService ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		progressService: progressService,
	}
}

// RegisterRoutes registers all progress handler routes.
// Note: This assumes the router is already scoped to /api and behind the auth middleware.
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Route("/progress", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/{lessonId}", h.Record)
		r.Get("/{lessonId}", h.GetForLesson)
	})
}

// Record handles POST /progress/{lessonId}
// @Summary Record lesson progress
// @Description Upsert the caller's progress for a lesson. One record per (user, lesson); completion and score are replaced wholesale, attempts count every write after the first.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Param request body models.RecordProgressRequest true "Progress update"
// @Success 200 {object} models.ProgressRecord "Stored record"
// @Failure 400 {object} map[string]string "Invalid request body or score out of range"
// @Failure 403 {object} map[string]string "Lesson not accessible"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Router /progress/{lessonId} [post]
func (h *ProgressHandler) Record(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	var req models.RecordProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.progressService.Record(r.Context(), user, chi.URLParam(r, "lessonId"), &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, record)
}

// List handles GET /progress
// @Summary List own progress
// @Description Return all of the caller's progress records.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProgressRecord "Progress records"
// @Failure 401 {object} map[string]string "Unauthenticated"
// @Router /progress [get]
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	records, err := h.progressService.List(r.Context(), user)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, records)
}

// GetForLesson handles GET /progress/{lessonId}
// @Summary Get progress for a lesson
// @Description Return the caller's progress record for a single lesson.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.ProgressRecord "Progress record"
// @Failure 404 {object} map[string]string "No record for this lesson"
// @Router /progress/{lessonId} [get]
func (h *ProgressHandler) GetForLesson(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	record, err := h.progressService.GetForLesson(r.Context(), user, chi.URLParam(r, "lessonId"))
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, record)
}
