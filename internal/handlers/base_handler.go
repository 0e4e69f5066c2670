package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/auth"
	"github.com/abcmusiclibrary/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// HandleError maps a service error to its HTTP response. Upstream detail
// never reaches the body; it is logged here instead.
func (h *BaseHandler) HandleError(w http.ResponseWriter, err error) {
	status := apperrors.Status(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error("request failed", zap.Error(err))
	}
	h.RespondError(w, status, apperrors.Message(err))
}

// RequestUser retrieves the authenticated user placed in context by the
// auth middleware. Routes registered behind the middleware always have
// one; a miss means a wiring bug, answered with 401 rather than a panic.
func (h *BaseHandler) RequestUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := auth.GetUser(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "invalid authentication credentials")
		return nil, false
	}
	return user, true
}
