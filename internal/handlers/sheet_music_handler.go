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

// SheetMusicService is the interface that wraps methods for sheet music catalog business logic
type SheetMusicService interface {
	Create(ctx context.Context, actor *models.User, req *models.CreateSheetMusicRequest) (*models.SheetMusic, error)
	Get(ctx context.Context, actor *models.User, id string) (*models.SheetMusic, error)
	List(ctx context.Context, actor *models.User, params services.ListParams) ([]models.SheetMusic, error)
	Update(ctx context.Context, actor *models.User, id string, req *models.UpdateSheetMusicRequest) (*models.SheetMusic, error)
}

// SheetMusicHandler handles sheet music catalog HTTP requests
type SheetMusicHandler struct {
	BaseHandler
	sheetService SheetMusicService
}

// NewSheetMusicHandler creates a new sheet music handler
func NewSheetMusicHandler(sheetService SheetMusicService, logger *zap.Logger) *SheetMusicHandler {
	return &SheetMusicHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		sheetService: sheetService,
	}
}

// RegisterRoutes registers all sheet music handler routes.
// Note: This assumes the router is already scoped to /api and behind the auth middleware.
func (h *SheetMusicHandler) RegisterRoutes(r chi.Router) {
	r.Route("/sheet-music", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
	})
}

// Create handles POST /sheet-music
// @Summary Create a sheet music entry
// @Description Add a new sheet music entry to the catalog. Teachers and admins only. New entries start unpublished.
// @Tags sheet-music
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateSheetMusicRequest true "Sheet music"
// @Success 200 {object} models.SheetMusic "Created entry"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Role not allowed to create content"
// @Router /sheet-music [post]
func (h *SheetMusicHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	var req models.CreateSheetMusicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sheet, err := h.sheetService.Create(r.Context(), user, &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, sheet)
}

// List handles GET /sheet-music
// @Summary List sheet music
// @Description List catalog entries, published only by default. mine=true narrows to the caller's own entries, published or not (teachers and admins only). Pagination is clamped, never rejected.
// @Tags sheet-music
// @Produce json
// @Security BearerAuth
// @Param genre query string false "Filter by genre"
// @Param difficulty query string false "Filter by difficulty (beginner, intermediate, advanced)"
// @Param search query string false "Case-insensitive search over title and composer"
// @Param mine query bool false "Only the caller's own entries"
// @Param limit query int false "Page size, capped at 100 (default 20)"
// @Param skip query int false "Offset into the result set"
// @Success 200 {array} models.SheetMusic "Matching entries"
// @Failure 403 {object} map[string]string "Students cannot request mine"
// @Router /sheet-music [get]
func (h *SheetMusicHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	sheets, err := h.sheetService.List(r.Context(), user, parseListParams(r, "genre"))
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, sheets)
}

// Get handles GET /sheet-music/{id}
// @Summary Get a sheet music entry
// @Description Retrieve a single entry. Unpublished entries are visible only to their owner and admins.
// @Tags sheet-music
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} models.SheetMusic "Entry"
// @Failure 403 {object} map[string]string "Not allowed to read this entry"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /sheet-music/{id} [get]
func (h *SheetMusicHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	sheet, err := h.sheetService.Get(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, sheet)
}

// Update handles PUT /sheet-music/{id}
// @Summary Update a sheet music entry
// @Description Replace the mutable fields of an entry, including its publish flag. Owners and admins only.
// @Tags sheet-music
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body models.UpdateSheetMusicRequest true "Updated fields"
// @Success 200 {object} models.SheetMusic "Updated entry"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Not allowed to update this entry"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /sheet-music/{id} [put]
func (h *SheetMusicHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	var req models.UpdateSheetMusicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sheet, err := h.sheetService.Update(r.Context(), user, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, sheet)
}
