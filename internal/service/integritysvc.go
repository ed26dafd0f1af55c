package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gameshelf/internal/domain"
)

// Issue is one violated invariant found during an audit.
type Issue struct {
	Kind   string
	Detail string
}

type Report struct {
	Issues []Issue
}

func (r Report) Clean() bool { return len(r.Issues) == 0 }

func (r *Report) add(kind, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

// IntegrityService audits a loaded store against the invariants the managers
// maintain: aggregate means, status counters, pair uniqueness, mirrored
// follow edges, and the absence of dangling references. Normal operation
// never violates these; the audit exists for data dirs edited or produced
// outside this process.
type IntegrityService struct {
	Profiles    ProfilesStore
	Games       GamesStore
	Evaluations EvaluationsStore
}

// Check scans the whole store and reports every violation. It mutates
// nothing.
func (s *IntegrityService) Check(ctx context.Context) (Report, error) {
	var rep Report

	profiles, err := s.Profiles.ListProfiles(ctx)
	if err != nil {
		return Report{}, err
	}
	games, err := s.Games.ListGames(ctx)
	if err != nil {
		return Report{}, err
	}
	evs, err := s.Evaluations.ListEvaluations(ctx)
	if err != nil {
		return Report{}, err
	}

	profileIDs := make(map[int]bool, len(profiles))
	for _, p := range profiles {
		profileIDs[p.ID] = true
	}
	gameIDs := make(map[int]bool, len(games))
	for _, g := range games {
		gameIDs[g.ID] = true
	}

	s.checkEvaluations(&rep, evs, profileIDs, gameIDs)
	s.checkGames(&rep, games, evs)
	s.checkProfiles(&rep, profiles, gameIDs)
	return rep, nil
}

func (s *IntegrityService) checkEvaluations(rep *Report, evs []domain.Evaluation, profileIDs, gameIDs map[int]bool) {
	type pair struct{ profileID, gameID int }
	seen := make(map[pair]bool, len(evs))

	for _, ev := range evs {
		if !profileIDs[ev.ProfileID] {
			rep.add("dangling_evaluation", "evaluation %d references missing profile %d", ev.ID, ev.ProfileID)
		}
		if !gameIDs[ev.GameID] {
			rep.add("dangling_evaluation", "evaluation %d references missing game %d", ev.ID, ev.GameID)
		}
		if ev.Score < 0 || ev.Score > 10 {
			rep.add("score_out_of_range", "evaluation %d score %.2f outside [0, 10]", ev.ID, ev.Score)
		}
		k := pair{ev.ProfileID, ev.GameID}
		if seen[k] {
			rep.add("duplicate_evaluation", "profile %d has more than one evaluation of game %d", ev.ProfileID, ev.GameID)
		}
		seen[k] = true
	}
}

func (s *IntegrityService) checkGames(rep *Report, games []domain.Game, evs []domain.Evaluation) {
	byGame := make(map[int][]domain.Evaluation)
	for _, ev := range evs {
		byGame[ev.GameID] = append(byGame[ev.GameID], ev)
	}

	titles := make(map[string]int, len(games))
	for _, g := range games {
		if want := meanScore(byGame[g.ID]); g.AverageRating != want {
			rep.add("stale_average_rating", "game %d average_rating %.2f, expected %.2f", g.ID, g.AverageRating, want)
		}
		key := strings.ToLower(strings.TrimSpace(g.Title))
		if otherID, ok := titles[key]; ok {
			rep.add("duplicate_title", "games %d and %d share title %q", otherID, g.ID, g.Title)
		}
		titles[key] = g.ID
	}
}

func (s *IntegrityService) checkProfiles(rep *Report, profiles []domain.Profile, gameIDs map[int]bool) {
	byID := make(map[int]domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	names := make(map[string]int, len(profiles))
	for _, p := range profiles {
		key := strings.ToLower(strings.TrimSpace(p.DisplayName))
		if otherID, ok := names[key]; ok {
			rep.add("duplicate_display_name", "profiles %d and %d share display name %q", otherID, p.ID, p.DisplayName)
		}
		names[key] = p.ID

		seenLib := make(map[int]bool, len(p.Library))
		for _, e := range p.Library {
			if !gameIDs[e.GameID] {
				rep.add("dangling_library_entry", "profile %d library references missing game %d", p.ID, e.GameID)
			}
			if seenLib[e.GameID] {
				rep.add("duplicate_library_entry", "profile %d has game %d in its library twice", p.ID, e.GameID)
			}
			seenLib[e.GameID] = true
			if _, err := domain.ParseStatus(string(e.Status)); err != nil {
				rep.add("invalid_status", "profile %d library entry for game %d has status %q", p.ID, e.GameID, e.Status)
			}
		}

		want := p.Clone()
		want.RecountLibrary()
		if p.PlayingCount != want.PlayingCount || p.CompletedCount != want.CompletedCount || p.PlatinumCount != want.PlatinumCount {
			rep.add("stale_counters", "profile %d counters %d/%d/%d, expected %d/%d/%d",
				p.ID, p.PlayingCount, p.CompletedCount, p.PlatinumCount,
				want.PlayingCount, want.CompletedCount, want.PlatinumCount)
		}

		seenFav := make(map[int]bool, len(p.Favorites))
		for _, gameID := range p.Favorites {
			if !gameIDs[gameID] {
				rep.add("dangling_favorite", "profile %d favorites missing game %d", p.ID, gameID)
			}
			if seenFav[gameID] {
				rep.add("duplicate_favorite", "profile %d favorites game %d twice", p.ID, gameID)
			}
			seenFav[gameID] = true
		}

		for _, targetID := range p.Following {
			if targetID == p.ID {
				rep.add("self_follow", "profile %d follows itself", p.ID)
				continue
			}
			target, ok := byID[targetID]
			if !ok {
				rep.add("dangling_follow", "profile %d follows missing profile %d", p.ID, targetID)
				continue
			}
			if !slices.Contains(target.Followers, p.ID) {
				rep.add("asymmetric_follow", "profile %d follows %d but is not in its followers", p.ID, targetID)
			}
		}
		for _, followerID := range p.Followers {
			if followerID == p.ID {
				continue // reported from the following side
			}
			follower, ok := byID[followerID]
			if !ok {
				rep.add("dangling_follow", "profile %d lists missing profile %d as follower", p.ID, followerID)
				continue
			}
			if !slices.Contains(follower.Following, p.ID) {
				rep.add("asymmetric_follow", "profile %d lists %d as follower without the reverse edge", p.ID, followerID)
			}
		}
	}
}

// Repair removes dangling references, restores mirror symmetry by dropping
// one-sided follow edges, and rebuilds every derived field. Conflicting
// display names and titles are reported by Check but cannot be repaired
// automatically. The returned report lists what Check found before the
// repair ran.
func (s *IntegrityService) Repair(ctx context.Context) (Report, error) {
	rep, err := s.Check(ctx)
	if err != nil {
		return Report{}, err
	}
	if rep.Clean() {
		return rep, nil
	}

	profiles, err := s.Profiles.ListProfiles(ctx)
	if err != nil {
		return Report{}, err
	}
	games, err := s.Games.ListGames(ctx)
	if err != nil {
		return Report{}, err
	}
	evs, err := s.Evaluations.ListEvaluations(ctx)
	if err != nil {
		return Report{}, err
	}

	profileIDs := make(map[int]bool, len(profiles))
	following := make(map[int][]int, len(profiles))
	followers := make(map[int][]int, len(profiles))
	for _, p := range profiles {
		profileIDs[p.ID] = true
		following[p.ID] = p.Following
		followers[p.ID] = p.Followers
	}
	gameIDs := make(map[int]bool, len(games))
	for _, g := range games {
		gameIDs[g.ID] = true
	}

	// Dangling or duplicate evaluations go first so the rating recompute
	// below sees only valid rows.
	type pair struct{ profileID, gameID int }
	seen := make(map[pair]bool, len(evs))
	for _, ev := range evs {
		k := pair{ev.ProfileID, ev.GameID}
		drop := !profileIDs[ev.ProfileID] || !gameIDs[ev.GameID] || seen[k]
		seen[k] = true
		if drop {
			if err := s.Evaluations.DeleteEvaluation(ctx, ev.ID); err != nil {
				return Report{}, err
			}
		}
	}

	for _, prof := range profiles {
		prof.Library = slices.DeleteFunc(prof.Library, func(e domain.LibraryEntry) bool {
			return !gameIDs[e.GameID]
		})
		prof.Library = dedupeLibrary(prof.Library)
		prof.Favorites = dedupeInts(prof.Favorites, gameIDs)
		// An edge survives only when both sides claim it, so one-sided
		// damage removes the edge instead of resurrecting it.
		prof.Following = slices.DeleteFunc(prof.Following, func(id int) bool {
			return id == prof.ID || !profileIDs[id] || !slices.Contains(followers[id], prof.ID)
		})
		prof.Followers = slices.DeleteFunc(prof.Followers, func(id int) bool {
			return id == prof.ID || !profileIDs[id] || !slices.Contains(following[id], prof.ID)
		})
		prof.RecountLibrary()
		if err := s.Profiles.UpdateProfile(ctx, prof); err != nil {
			return Report{}, err
		}
	}

	byGame := make(map[int][]domain.Evaluation)
	kept, err := s.Evaluations.ListEvaluations(ctx)
	if err != nil {
		return Report{}, err
	}
	for _, ev := range kept {
		byGame[ev.GameID] = append(byGame[ev.GameID], ev)
	}
	for _, g := range games {
		if want := meanScore(byGame[g.ID]); g.AverageRating != want {
			g.AverageRating = want
			if err := s.Games.UpdateGame(ctx, g); err != nil {
				return Report{}, err
			}
		}
	}

	return rep, nil
}

func dedupeLibrary(entries []domain.LibraryEntry) []domain.LibraryEntry {
	seen := make(map[int]bool, len(entries))
	return slices.DeleteFunc(entries, func(e domain.LibraryEntry) bool {
		if seen[e.GameID] {
			return true
		}
		seen[e.GameID] = true
		return false
	})
}

func dedupeInts(ids []int, valid map[int]bool) []int {
	seen := make(map[int]bool, len(ids))
	return slices.DeleteFunc(ids, func(id int) bool {
		if !valid[id] || seen[id] {
			return true
		}
		seen[id] = true
		return false
	})
}
