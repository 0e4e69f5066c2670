package handlers

import (
	"context"
	"net/http"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DashboardService is the interface that wraps methods for dashboard business logic
type DashboardService interface {
	// Summary builds the caller's dashboard aggregate.
	Summary(ctx context.Context, actor *models.User) (*models.DashboardSummary, error)
}

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	BaseHandler
	dashboardService DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      BaseHandler{Logger: logger},
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers all dashboard handler routes.
// Note: This assumes the router is already scoped to /api and behind the auth middleware.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/stats", h.Stats)
}

// Stats handles GET /dashboard/stats
// @Summary Get dashboard summary
// @Description Return the caller's profile, progress counters over the published lesson catalog, and the five most recent published entries of each catalog.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardSummary "Dashboard summary"
// @Failure 401 {object} map[string]string "Unauthenticated"
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(r.Context(), user)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, summary)
}
