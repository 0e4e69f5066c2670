package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification errors. Callers must surface both as the same
// unauthenticated outcome; the split exists for logging only.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenService issues and verifies signed bearer tokens.
// The signing secret is process-wide configuration, loaded once at
// startup and never rotated mid-process. There is no refresh or
// revocation mechanism: a token stays valid until its fixed expiry.
type TokenService struct {
	secret      string
	tokenExpiry time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(secret string, tokenExpiry time.Duration) *TokenService {
	return &TokenService{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Issue produces a signed token embedding the subject id and an absolute expiry
func (ts *TokenService) Issue(subjectID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subjectID,
		"exp": time.Now().Add(ts.tokenExpiry).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ts.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature validity and expiry and returns the subject id.
// Returns ErrTokenExpired on expiry, ErrInvalidToken on a bad signature or
// malformed payload.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	subjectID, ok := claims["sub"].(string)
	if !ok || subjectID == "" {
		return "", ErrInvalidToken
	}

	return subjectID, nil
}
