package service

import (
	"context"

	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

// Get returns the owner's routine, falling back to defaults for owners that
// have never saved one.
func (s *profileService) Get(ctx context.Context, ownerID string) (*domain.RoutineProfile, error) {
	return loadProfile(ctx, s.profiles, ownerID)
}

func (s *profileService) Update(ctx context.Context, p *domain.RoutineProfile) error {
	return s.profiles.Upsert(ctx, p)
}
