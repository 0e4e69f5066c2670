package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/auth"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user                *models.User
	err                 error
	existsByEmailResult bool
	existsByEmailError  error
	getByEmailError     error
	createdUser         *models.User
	updatedFullName     *string
	updatedAvatarURL    *string
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	m.createdUser = user
	return nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailError != nil {
		return false, m.existsByEmailError
	}
	return m.existsByEmailResult, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailError != nil {
		return nil, m.getByEmailError
	}
	if m.user == nil {
		return nil, apperrors.NotFoundf("user not found")
	}
	return m.user, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if m.user == nil {
		return nil, apperrors.NotFoundf("user not found")
	}
	return m.user, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID string, fullName, avatarURL *string) error {
	if m.err != nil {
		return m.err
	}
	m.updatedFullName = fullName
	m.updatedAvatarURL = avatarURL
	if m.user != nil {
		if fullName != nil {
			m.user.FullName = *fullName
		}
		if avatarURL != nil {
			m.user.AvatarURL = *avatarURL
		}
	}
	return nil
}

func newTestAuthService(userRepo *mockUserRepository) (*authService, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewAuthService(userRepo, tokens, zap.NewNop()), tokens
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.RegisterRequest
		userRepo      *mockUserRepository
		expectedRole  models.Role
		expectedError error
		errorContains string
	}{
		{
			name:         "missing role defaults to student",
			req:          &models.RegisterRequest{Email: "ada@example.com", Password: "longenough", FullName: "Ada"},
			userRepo:     &mockUserRepository{},
			expectedRole: models.RoleStudent,
		},
		{
			name:         "teacher role is allowed",
			req:          &models.RegisterRequest{Email: "ada@example.com", Password: "longenough", FullName: "Ada", Role: models.RoleTeacher},
			userRepo:     &mockUserRepository{},
			expectedRole: models.RoleTeacher,
		},
		{
			name:          "admin role is rejected",
			req:           &models.RegisterRequest{Email: "ada@example.com", Password: "longenough", FullName: "Ada", Role: models.RoleAdmin},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrValidation,
			errorContains: "admin",
		},
		{
			name:          "unknown role is rejected",
			req:           &models.RegisterRequest{Email: "ada@example.com", Password: "longenough", FullName: "Ada", Role: "superuser"},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrValidation,
			errorContains: "invalid role",
		},
		{
			name:          "invalid email format",
			req:           &models.RegisterRequest{Email: "not-an-email", Password: "longenough", FullName: "Ada"},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrValidation,
			errorContains: "email format",
		},
		{
			name:          "password too short",
			req:           &models.RegisterRequest{Email: "ada@example.com", Password: "short", FullName: "Ada"},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrValidation,
			errorContains: "password",
		},
		{
			name:          "empty full name",
			req:           &models.RegisterRequest{Email: "ada@example.com", Password: "longenough", FullName: "   "},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrValidation,
			errorContains: "full name",
		},
		{
			name:          "email already registered",
			req:           &models.RegisterRequest{Email: "ada@example.com", Password: "longenough", FullName: "Ada"},
			userRepo:      &mockUserRepository{existsByEmailResult: true},
			expectedError: apperrors.ErrValidation,
			errorContains: "already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tokens := newTestAuthService(tt.userRepo)

			resp, err := svc.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, tt.userRepo.createdUser)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "bearer", resp.TokenType)
			assert.Equal(t, tt.expectedRole, resp.User.Role)
			assert.True(t, resp.User.IsActive)
			assert.NotEmpty(t, resp.User.ID)
			assert.NotEqual(t, tt.req.Password, resp.User.PasswordHash)

			// The issued token must resolve back to the new user
			subject, err := tokens.Verify(resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, resp.User.ID, subject)
		})
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	userRepo := &mockUserRepository{}
	svc, _ := newTestAuthService(userRepo)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "  Ada@Example.COM ",
		Password: "longenough",
		FullName: "Ada",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", resp.User.Email)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	activeUser := func() *models.User {
		return &models.User{
			ID:           "user-1",
			Email:        "ada@example.com",
			PasswordHash: hash,
			Role:         models.RoleStudent,
			IsActive:     true,
		}
	}

	t.Run("success", func(t *testing.T) {
		svc, tokens := newTestAuthService(&mockUserRepository{user: activeUser()})

		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ada@example.com",
			Password: "correct-password",
		})

		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		subject, err := tokens.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", subject)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := newTestAuthService(&mockUserRepository{})

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "missing@example.com",
			Password: "correct-password",
		})

		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := newTestAuthService(&mockUserRepository{user: activeUser()})

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ada@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("deactivated account", func(t *testing.T) {
		user := activeUser()
		user.IsActive = false
		svc, _ := newTestAuthService(&mockUserRepository{user: user})

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ada@example.com",
			Password: "correct-password",
		})

		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("database fault keeps upstream status", func(t *testing.T) {
		repoErr := apperrors.Upstream(errors.New("dial tcp: connection refused"))
		svc, _ := newTestAuthService(&mockUserRepository{getByEmailError: repoErr})

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ada@example.com",
			Password: "correct-password",
		})

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrAuthentication)
		assert.Equal(t, http.StatusInternalServerError, apperrors.Status(err))
	})

	t.Run("all failures share one message", func(t *testing.T) {
		svc, _ := newTestAuthService(&mockUserRepository{user: activeUser()})

		_, unknownErr := svc.Login(context.Background(), &models.LoginRequest{Email: "missing@example.com", Password: "x"})
		_, wrongErr := svc.Login(context.Background(), &models.LoginRequest{Email: "ada@example.com", Password: "wrong"})

		assert.Equal(t, apperrors.Message(unknownErr), apperrors.Message(wrongErr))
	})
}
