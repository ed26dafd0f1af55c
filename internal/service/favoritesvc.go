package service

import (
	"context"
	"slices"

	"gameshelf/internal/domain"
)

type FavoriteService struct {
	Profiles ProfilesStore
	Games    GamesStore
}

// Favorite marks a game as one of the profile's favorites. Each game can be
// favorited at most once per profile.
func (s *FavoriteService) Favorite(ctx context.Context, profileID, gameID int) (domain.Profile, error) {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return domain.Profile{}, err
	}
	if _, err := s.Games.GetGame(ctx, gameID); err != nil {
		return domain.Profile{}, err
	}
	if prof.HasFavorite(gameID) {
		return domain.Profile{}, domain.ErrAlreadyFavorited
	}

	prof.Favorites = append(prof.Favorites, gameID)
	if err := s.Profiles.UpdateProfile(ctx, prof); err != nil {
		return domain.Profile{}, err
	}
	return prof, nil
}

// Unfavorite removes the marker only; the library entry and any evaluation
// for the game stay as they are.
func (s *FavoriteService) Unfavorite(ctx context.Context, profileID, gameID int) error {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return err
	}
	i := slices.Index(prof.Favorites, gameID)
	if i < 0 {
		return domain.ErrNotFound
	}

	prof.Favorites = slices.Delete(prof.Favorites, i, i+1)
	return s.Profiles.UpdateProfile(ctx, prof)
}

func (s *FavoriteService) List(ctx context.Context, profileID int) ([]int, error) {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return prof.Favorites, nil
}
