package services

import (
	"context"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/abcmusiclibrary/backend/internal/policy"
)

// profileService implements reading and updating the caller's own profile
type profileService struct {
	userRepo UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo UserRepository) *profileService {
	return &profileService{
		userRepo: userRepo,
	}
}

// Update merges the non-null fields of req into the actor's profile and
// returns the updated user. Role is not part of a profile update; there
// is no path to change it here.
func (s *profileService) Update(ctx context.Context, actor *models.User, req *models.UpdateProfileRequest) (*models.User, error) {
	if err := policy.Authorize(actor.Role, policy.OpUpdateOwnProfile, actor.ID, actor.ID); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfile(ctx, actor.ID, req.FullName, req.AvatarURL); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, actor.ID)
}
