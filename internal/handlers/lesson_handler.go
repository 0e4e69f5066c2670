package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/abcmusiclibrary/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for lesson catalog business logic
type LessonService interface {
	Create(ctx context.Context, actor *models.User, req *models.CreateLessonRequest) (*models.Lesson, error)
	Get(ctx context.Context, actor *models.User, id string) (*models.Lesson, error)
	List(ctx context.Context, actor *models.User, params services.ListParams) ([]models.Lesson, error)
	Update(ctx context.Context, actor *models.User, id string, req *models.UpdateLessonRequest) (*models.Lesson, error)
}

// LessonHandler handles lesson catalog HTTP requests
type LessonHandler struct {
	BaseHandler
	lessonService LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessonService LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		lessonService: lessonService,
	}
}

// RegisterRoutes registers all lesson handler routes.
// Note: This assumes the router is already scoped to /api and behind the auth middleware.
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
	})
}

// Create handles POST /lessons
// @Summary Create a lesson
// @Description Add a new lesson to the catalog. Teachers and admins only. New lessons start unpublished.
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateLessonRequest true "Lesson"
// @Success 200 {object} models.Lesson "Created lesson"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Role not allowed to create content"
// @Router /lessons [post]
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	var req models.CreateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.lessonService.Create(r.Context(), user, &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}

// List handles GET /lessons
// @Summary List lessons
// @Description List lessons, published only by default. mine=true narrows to the caller's own lessons, published or not (teachers and admins only). Pagination is clamped, never rejected.
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param difficulty query string false "Filter by difficulty (beginner, intermediate, advanced)"
// @Param search query string false "Case-insensitive search over title and description"
// @Param mine query bool false "Only the caller's own lessons"
// @Param limit query int false "Page size, capped at 100 (default 20)"
// @Param skip query int false "Offset into the result set"
// @Success 200 {array} models.Lesson "Matching lessons"
// @Failure 403 {object} map[string]string "Students cannot request mine"
// @Router /lessons [get]
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	lessons, err := h.lessonService.List(r.Context(), user, parseListParams(r, "category"))
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, lessons)
}

// Get handles GET /lessons/{id}
// @Summary Get a lesson
// @Description Retrieve a single lesson. Unpublished lessons are visible only to their owner and admins.
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.Lesson "Lesson"
// @Failure 403 {object} map[string]string "Not allowed to read this lesson"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	lesson, err := h.lessonService.Get(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}

// Update handles PUT /lessons/{id}
// @Summary Update a lesson
// @Description Replace the mutable fields of a lesson, including its publish flag. Owners and admins only.
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Param request body models.UpdateLessonRequest true "Updated fields"
// @Success 200 {object} models.Lesson "Updated lesson"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Not allowed to update this lesson"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Router /lessons/{id} [put]
func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	var req models.UpdateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.lessonService.Update(r.Context(), user, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}
