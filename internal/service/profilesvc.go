package service

import (
	"context"
	"errors"
	"strings"

	"gameshelf/internal/domain"
)

type ProfileService struct {
	Profiles ProfilesStore
}

func (s *ProfileService) Create(ctx context.Context, p domain.CreateProfileParams) (domain.Profile, error) {
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.Description = strings.TrimSpace(p.Description)
	p.Avatar = strings.TrimSpace(p.Avatar)
	if err := p.Validate(); err != nil {
		return domain.Profile{}, err
	}

	if err := s.checkDisplayNameFree(ctx, p.DisplayName, 0); err != nil {
		return domain.Profile{}, err
	}

	return s.Profiles.CreateProfile(ctx, domain.Profile{
		DisplayName: p.DisplayName,
		Description: p.Description,
		Avatar:      p.Avatar,
		Followers:   []int{},
		Following:   []int{},
		Library:     []domain.LibraryEntry{},
		Favorites:   []int{},
	})
}

func (s *ProfileService) Get(ctx context.Context, id int) (domain.Profile, error) {
	return s.Profiles.GetProfile(ctx, id)
}

func (s *ProfileService) GetByDisplayName(ctx context.Context, name string) (domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Profile{}, domain.NewValidationError(map[string]string{"display_name": "required"})
	}
	return s.Profiles.GetProfileByDisplayName(ctx, name)
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.Profiles.ListProfiles(ctx)
}

func (s *ProfileService) Update(ctx context.Context, id int, p domain.UpdateProfileParams) (domain.Profile, error) {
	trimPtr(p.DisplayName)
	trimPtr(p.Description)
	trimPtr(p.Avatar)
	if err := p.Validate(); err != nil {
		return domain.Profile{}, err
	}

	prof, err := s.Profiles.GetProfile(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}

	if p.DisplayName != nil && !strings.EqualFold(*p.DisplayName, prof.DisplayName) {
		if err := s.checkDisplayNameFree(ctx, *p.DisplayName, id); err != nil {
			return domain.Profile{}, err
		}
	}

	if p.DisplayName != nil {
		prof.DisplayName = *p.DisplayName
	}
	if p.Description != nil {
		prof.Description = *p.Description
	}
	if p.Avatar != nil {
		prof.Avatar = *p.Avatar
	}

	if err := s.Profiles.UpdateProfile(ctx, prof); err != nil {
		return domain.Profile{}, err
	}
	return prof, nil
}

// checkDisplayNameFree reports ErrDisplayNameTaken when another profile
// already uses name (case-insensitive). excludeID skips the profile being
// renamed.
func (s *ProfileService) checkDisplayNameFree(ctx context.Context, name string, excludeID int) error {
	existing, err := s.Profiles.GetProfileByDisplayName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return domain.ErrDisplayNameTaken
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
