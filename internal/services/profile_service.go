package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/yoockh/mockview/internal/models"
	"github.com/yoockh/mockview/internal/repositories/memory"
	"github.com/yoockh/mockview/internal/utils"
)

type ProfileService interface {
	Save(ctx context.Context, p *models.InterviewProfile) (profileID string, err error)
	Get(ctx context.Context, profileID string) (*models.InterviewProfile, error)
}

type profileService struct {
	profiles memory.ProfileRepository
}

func NewProfileService(profiles memory.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Save(ctx context.Context, p *models.InterviewProfile) (string, error) {
	const op = "ProfileService.Save"

	if p == nil || p.Institution == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "profile.institution is required", nil)
	}

	stored := p.Clone()
	stored.ID = uuid.NewString()
	now := time.Now().UTC()
	stored.CreatedAt = &now

	if err := s.profiles.Put(stored); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to save profile", err)
	}
	return stored.ID, nil
}

func (s *profileService) Get(ctx context.Context, profileID string) (*models.InterviewProfile, error) {
	const op = "ProfileService.Get"

	if profileID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "profile_id is required", nil)
	}

	p, err := s.profiles.Get(profileID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}
