package service

import (
	"context"
	"slices"

	"gameshelf/internal/domain"
)

// GameRatingRecomputer is the slice of EvaluationService the cascade needs:
// rebuilding a surviving game's aggregate after its evaluations change.
type GameRatingRecomputer interface {
	RecomputeGameRating(ctx context.Context, gameID int) error
}

// CascadeService owns deletion of profiles and games. Every dependent record
// in the other collections is removed and every affected aggregate is
// recomputed before the entity record itself goes away.
type CascadeService struct {
	Profiles    ProfilesStore
	Games       GamesStore
	Evaluations EvaluationsStore
	Ratings     GameRatingRecomputer
}

// DeleteGame removes a game along with every evaluation that references it,
// every library entry for it, and every favorite marker. Profiles whose
// library changed get their counters recounted. The game record is deleted
// last.
func (s *CascadeService) DeleteGame(ctx context.Context, gameID int) error {
	if _, err := s.Games.GetGame(ctx, gameID); err != nil {
		return err
	}

	evs, err := s.Evaluations.ListEvaluationsByGame(ctx, gameID)
	if err != nil {
		return err
	}
	for _, ev := range evs {
		if err := s.Evaluations.DeleteEvaluation(ctx, ev.ID); err != nil {
			return err
		}
	}

	profiles, err := s.Profiles.ListProfiles(ctx)
	if err != nil {
		return err
	}
	for _, prof := range profiles {
		changed := false

		before := len(prof.Library)
		prof.Library = slices.DeleteFunc(prof.Library, func(e domain.LibraryEntry) bool {
			return e.GameID == gameID
		})
		if len(prof.Library) != before {
			prof.RecountLibrary()
			changed = true
		}

		if i := slices.Index(prof.Favorites, gameID); i >= 0 {
			prof.Favorites = slices.Delete(prof.Favorites, i, i+1)
			changed = true
		}

		if changed {
			if err := s.Profiles.UpdateProfile(ctx, prof); err != nil {
				return err
			}
		}
	}

	return s.Games.DeleteGame(ctx, gameID)
}

// DeleteProfile removes a profile, scrubs it from every other profile's
// follow lists, and deletes its evaluations. Each evaluation removal
// recomputes the affected game's rating, since other profiles may still hold
// scores on it. The profile's own library and favorites vanish with the
// record.
func (s *CascadeService) DeleteProfile(ctx context.Context, profileID int) error {
	if _, err := s.Profiles.GetProfile(ctx, profileID); err != nil {
		return err
	}

	profiles, err := s.Profiles.ListProfiles(ctx)
	if err != nil {
		return err
	}
	for _, other := range profiles {
		if other.ID == profileID {
			continue
		}
		changed := false
		if i := slices.Index(other.Following, profileID); i >= 0 {
			other.Following = slices.Delete(other.Following, i, i+1)
			changed = true
		}
		if i := slices.Index(other.Followers, profileID); i >= 0 {
			other.Followers = slices.Delete(other.Followers, i, i+1)
			changed = true
		}
		if changed {
			if err := s.Profiles.UpdateProfile(ctx, other); err != nil {
				return err
			}
		}
	}

	evs, err := s.Evaluations.ListEvaluationsByProfile(ctx, profileID)
	if err != nil {
		return err
	}
	for _, ev := range evs {
		if err := s.Evaluations.DeleteEvaluation(ctx, ev.ID); err != nil {
			return err
		}
		if err := s.Ratings.RecomputeGameRating(ctx, ev.GameID); err != nil {
			return err
		}
	}

	return s.Profiles.DeleteProfile(ctx, profileID)
}
