// Package apperrors defines the error taxonomy shared by services and handlers.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds. Services wrap these with context via fmt.Errorf("...: %w", kind)
// and handlers map them to HTTP status codes with errors.Is.
var (
	// ErrValidation marks malformed or disallowed input.
	ErrValidation = errors.New("validation failed")
	// ErrAuthentication marks a missing, invalid, or expired token.
	// The HTTP message is uniform regardless of the underlying cause.
	ErrAuthentication = errors.New("authentication failed")
	// ErrAuthorization marks an authenticated request the policy denies.
	ErrAuthorization = errors.New("authorization denied")
	// ErrNotFound marks a resource id with no match.
	ErrNotFound = errors.New("not found")
	// ErrUpstream marks a persistence or object-store failure. Internal
	// detail never reaches the response body.
	ErrUpstream = errors.New("upstream failure")
)

// Validationf wraps ErrValidation with a caller-facing message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// NotFoundf wraps ErrNotFound with a caller-facing message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// Authorizationf wraps ErrAuthorization with a caller-facing message.
func Authorizationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrAuthorization}, args...)...)
}

// Upstream wraps an internal failure so handlers respond 500 without
// leaking the wrapped detail.
func Upstream(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the response body message for err. Upstream and unknown
// errors collapse to a generic message so internals are not leaked;
// authentication errors collapse to a uniform message so the caller cannot
// distinguish a bad signature from an expired token.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrAuthentication):
		return "invalid authentication credentials"
	case errors.Is(err, ErrUpstream):
		return "internal server error"
	case errors.Is(err, ErrValidation), errors.Is(err, ErrAuthorization), errors.Is(err, ErrNotFound):
		return err.Error()
	default:
		return "internal server error"
	}
}
