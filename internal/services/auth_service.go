package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/auth"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserRepository is the interface that wraps methods for users table data access
type UserRepository interface {
	// Create inserts a new user. A duplicate email surfaces as a validation error.
	Create(ctx context.Context, user *models.User) error
	// ExistsByEmail checks if a user with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// UpdateProfile updates only the provided fields.
	UpdateProfile(ctx context.Context, userID string, fullName, avatarURL *string) error
}

// authService implements registration and login
type authService struct {
	userRepo UserRepository
	tokens   *auth.TokenService
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokens *auth.TokenService, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// minPasswordLength is the minimum accepted password length
const minPasswordLength = 8

// Register creates a new user account and returns a bearer token for it.
// Callers may ask for the student or teacher role; student is the default.
// The admin role can never be claimed through registration.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !emailRegex.MatchString(email) {
		return nil, apperrors.Validationf("invalid email format")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.Validationf("password must be at least %d characters long", minPasswordLength)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, apperrors.Validationf("full name cannot be empty")
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if role == models.RoleAdmin {
		return nil, apperrors.Validationf("cannot register with the admin role")
	}
	if !role.Valid() {
		return nil, apperrors.Validationf("invalid role %q", role)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Validationf("email already registered")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}

	// The unique key on email closes the race between the existence check
	// and the insert; a concurrent duplicate comes back as a validation error.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("userId", user.ID),
		zap.String("role", string(user.Role)),
	)

	return s.tokenResponse(user)
}

// Login authenticates a user by email and password. Every failure mode
// comes back as the same authentication error so the caller cannot probe
// which emails are registered.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Only an unknown email is an authentication failure; a database
		// fault must keep its upstream classification.
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown email", apperrors.ErrAuthentication)
		}
		return nil, err
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: wrong password", apperrors.ErrAuthentication)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: account deactivated", apperrors.ErrAuthentication)
	}

	return s.tokenResponse(user)
}

func (s *authService) tokenResponse(user *models.User) (*models.TokenResponse, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to issue token: %w", err))
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
