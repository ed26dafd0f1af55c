package service

import (
	"context"
	"slices"

	"gameshelf/internal/domain"
)

type LibraryService struct {
	Profiles ProfilesStore
	Games    GamesStore
}

// Add puts a game in the profile's library with the given status. A game can
// appear in a library at most once.
func (s *LibraryService) Add(ctx context.Context, profileID, gameID int, rawStatus string) (domain.Profile, error) {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return domain.Profile{}, err
	}
	if _, err := s.Games.GetGame(ctx, gameID); err != nil {
		return domain.Profile{}, err
	}
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return domain.Profile{}, err
	}
	if prof.LibraryIndex(gameID) >= 0 {
		return domain.Profile{}, domain.ErrAlreadyInLibrary
	}

	prof.Library = append(prof.Library, domain.LibraryEntry{GameID: gameID, Status: status})
	prof.RecountLibrary()
	if err := s.Profiles.UpdateProfile(ctx, prof); err != nil {
		return domain.Profile{}, err
	}
	return prof, nil
}

// UpdateStatus replaces the entry's status in place; the previous status is
// discarded. Any status may move to any other.
func (s *LibraryService) UpdateStatus(ctx context.Context, profileID, gameID int, rawStatus string) (domain.Profile, error) {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return domain.Profile{}, err
	}
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return domain.Profile{}, err
	}
	i := prof.LibraryIndex(gameID)
	if i < 0 {
		return domain.Profile{}, domain.ErrNotFound
	}

	prof.Library[i].Status = status
	prof.RecountLibrary()
	if err := s.Profiles.UpdateProfile(ctx, prof); err != nil {
		return domain.Profile{}, err
	}
	return prof, nil
}

// Remove drops the entry from the library. Evaluations and favorites for the
// same game are untouched.
func (s *LibraryService) Remove(ctx context.Context, profileID, gameID int) error {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return err
	}
	i := prof.LibraryIndex(gameID)
	if i < 0 {
		return domain.ErrNotFound
	}

	prof.Library = slices.Delete(prof.Library, i, i+1)
	prof.RecountLibrary()
	return s.Profiles.UpdateProfile(ctx, prof)
}

func (s *LibraryService) List(ctx context.Context, profileID int) ([]domain.LibraryEntry, error) {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return prof.Library, nil
}

func (s *LibraryService) ListByStatus(ctx context.Context, profileID int, rawStatus string) ([]domain.LibraryEntry, error) {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	var out []domain.LibraryEntry
	for _, e := range prof.Library {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}
