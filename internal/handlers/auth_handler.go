package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic
type AuthService interface {
	// Register creates a new account and returns a bearer token for it.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error)
	// Login authenticates by email and password and returns a bearer token.
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes.
// Note: This assumes the router is already scoped to /api.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Register a new account with email, password and full name. Role may be student (default) or teacher; admin cannot be claimed. Returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 200 {object} models.TokenResponse "Account created"
// @Failure 400 {object} map[string]string "Invalid request body or email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Login handles POST /auth/login
// @Summary Login user
// @Description Authenticate with email and password. Returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.TokenResponse "Login successful"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
