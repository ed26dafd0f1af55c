package jsonfile

import (
	"context"
	"slices"
	"strings"

	"gameshelf/internal/domain"
)

func (s *Store) CreateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = nextID(s.profiles, func(p domain.Profile) int { return p.ID })
	s.profiles = append(s.profiles, p.Clone())
	s.dirtyProfiles = true
	return p, nil
}

func (s *Store) GetProfile(ctx context.Context, id int) (domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return s.profiles[i].Clone(), nil
		}
	}
	return domain.Profile{}, domain.ErrNotFound
}

func (s *Store) GetProfileByDisplayName(ctx context.Context, name string) (domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	for i := range s.profiles {
		if strings.EqualFold(s.profiles[i].DisplayName, name) {
			return s.profiles[i].Clone(), nil
		}
	}
	return domain.Profile{}, domain.ErrNotFound
}

func (s *Store) UpdateProfile(ctx context.Context, p domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == p.ID {
			s.profiles[i] = p.Clone()
			s.dirtyProfiles = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) DeleteProfile(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			s.profiles = slices.Delete(s.profiles, i, i+1)
			s.dirtyProfiles = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Profile, len(s.profiles))
	for i := range s.profiles {
		out[i] = s.profiles[i].Clone()
	}
	return out, nil
}
