package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserLoader is a test implementation of UserLoader
type fakeUserLoader struct {
	user *models.User
	err  error
}

func (f *fakeUserLoader) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func TestMiddleware(t *testing.T) {
	ts := NewTokenService("test-secret", 1*time.Hour)
	activeUser := &models.User{ID: "user-1", Role: models.RoleStudent, IsActive: true}

	validToken, err := ts.Issue("user-1")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		loader         *fakeUserLoader
		expectedStatus int
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			loader:         &fakeUserLoader{user: activeUser},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authHeader:     "",
			loader:         &fakeUserLoader{user: activeUser},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     "Token abc",
			loader:         &fakeUserLoader{user: activeUser},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer garbage",
			loader:         &fakeUserLoader{user: activeUser},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown subject",
			authHeader:     "Bearer " + validToken,
			loader:         &fakeUserLoader{err: apperrors.NotFoundf("user not found")},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			authHeader:     "Bearer " + validToken,
			loader:         &fakeUserLoader{user: &models.User{ID: "user-1", IsActive: false}},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser *models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = GetUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := Middleware(ts, tt.loader)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				require.NotNil(t, gotUser)
				assert.Equal(t, "user-1", gotUser.ID)
			} else {
				// Uniform body regardless of the failure cause
				assert.JSONEq(t, unauthenticatedBody, rec.Body.String())
			}
		})
	}
}
