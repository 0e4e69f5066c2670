package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProfileService is the interface that wraps methods for profile business logic
type ProfileService interface {
	// Update merges the non-null fields into the actor's profile.
	Update(ctx context.Context, actor *models.User, req *models.UpdateProfileRequest) (*models.User, error)
}

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	BaseHandler
	profileService ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		profileService: profileService,
	}
}

// RegisterRoutes registers all profile handler routes.
// Note: This assumes the router is already scoped to /api and behind the auth middleware.
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/auth/me", h.Me)
	r.Put("/users/profile", h.Update)
}

// Me handles GET /auth/me
// @Summary Get own profile
// @Description Return the authenticated user's profile.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} map[string]string "Unauthenticated"
// @Router /auth/me [get]
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Update handles PUT /users/profile
// @Summary Update own profile
// @Description Merge the provided fields into the authenticated user's profile. Omitted fields keep their values; role cannot be changed.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Profile update"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthenticated"
// @Router /users/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.profileService.Update(r.Context(), user, &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, updated)
}
