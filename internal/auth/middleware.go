package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/abcmusiclibrary/backend/internal/models"
)

type contextKey string

const userKey contextKey = "user"

// UserLoader loads the authenticated user behind a verified token
type UserLoader interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// unauthenticated response body is uniform regardless of cause: a missing
// token, a bad signature, an expired token, and an unknown subject are
// indistinguishable to the caller.
const unauthenticatedBody = `{"error":"invalid authentication credentials"}`

// Middleware validates the bearer token, loads the user, and stores the
// identity in the request context.
func Middleware(tokenService *TokenService, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			var token string
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				// Expected format: "Bearer <token>"
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
					token = parts[1]
				}
			}

			if token == "" {
				respondUnauthenticated(w)
				return
			}

			subjectID, err := tokenService.Verify(token)
			if err != nil {
				respondUnauthenticated(w)
				return
			}

			user, err := users.GetByID(r.Context(), subjectID)
			if err != nil || !user.IsActive {
				respondUnauthenticated(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func respondUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(unauthenticatedBody))
}

// WithUser returns a context carrying the authenticated user
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser retrieves the authenticated user from context
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
