// Package policy maps (role, operation, resource ownership) to an
// allow/deny decision. The decision is a pure function; every request
// passes through here after authentication and before any write.
package policy

import (
	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
)

// Operation identifies a guarded operation
type Operation int

// Guarded operations
const (
	OpCreateContent Operation = iota
	OpUpdateContent
	OpReadPublishedContent
	OpReadUnpublishedContent
	OpUpdateOwnProfile
	OpRecordOwnProgress
	OpReadOwnProgress
)

// String returns the operation name used in denial messages
func (op Operation) String() string {
	switch op {
	case OpCreateContent:
		return "create content"
	case OpUpdateContent:
		return "update content"
	case OpReadPublishedContent:
		return "read published content"
	case OpReadUnpublishedContent:
		return "read unpublished content"
	case OpUpdateOwnProfile:
		return "update own profile"
	case OpRecordOwnProgress:
		return "record own progress"
	case OpReadOwnProgress:
		return "read own progress"
	default:
		return "unknown operation"
	}
}

// Allow decides whether actorID with the given role may perform op on a
// resource owned by ownerID. Ownership compares ids exactly; admin
// bypasses ownership entirely. Operations without a target resource
// ignore ownerID.
func Allow(role models.Role, op Operation, actorID, ownerID string) bool {
	if !role.Valid() {
		return false
	}

	switch op {
	case OpCreateContent:
		return role == models.RoleAdmin || role == models.RoleTeacher
	case OpUpdateContent:
		if role == models.RoleAdmin {
			return true
		}
		return role == models.RoleTeacher && actorID == ownerID
	case OpReadPublishedContent:
		return true
	case OpReadUnpublishedContent:
		if role == models.RoleAdmin {
			return true
		}
		return role == models.RoleTeacher && actorID == ownerID
	case OpUpdateOwnProfile, OpRecordOwnProgress, OpReadOwnProgress:
		// Own-scoped operations: any authenticated role, the resource
		// is always the actor's by construction. Role changes are not
		// part of a profile update, so no self-escalation path exists.
		return true
	default:
		return false
	}
}

// Authorize is Allow returning an authorization error on deny.
// A deny is always surfaced, never a silent no-op.
func Authorize(role models.Role, op Operation, actorID, ownerID string) error {
	if !Allow(role, op, actorID, ownerID) {
		return apperrors.Authorizationf("not authorized to %s", op)
	}
	return nil
}
