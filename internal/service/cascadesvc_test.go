package service

import (
	"context"
	"errors"
	"testing"

	"gameshelf/internal/domain"
)

func TestDeleteGameRemovesEveryReference(t *testing.T) {
	env := newTestEnv(t)
	p1 := env.createProfile(t, "Danielle")
	p2 := env.createProfile(t, "Luis")
	doomed := env.createGame(t, "Celeste")
	other := env.createGame(t, "Hades")

	for _, p := range []domain.Profile{p1, p2} {
		if _, err := env.library.Add(context.Background(), p.ID, doomed.ID, "playing"); err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := env.favorites.Favorite(context.Background(), p.ID, doomed.ID); err != nil {
			t.Fatalf("favorite: %v", err)
		}
		if _, err := env.evaluations.Rate(context.Background(), p.ID, doomed.ID, 8, ""); err != nil {
			t.Fatalf("rate: %v", err)
		}
	}
	if _, err := env.library.Add(context.Background(), p1.ID, other.ID, "platinum"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := env.cascade.DeleteGame(context.Background(), doomed.ID); err != nil {
		t.Fatalf("delete game: %v", err)
	}

	if _, err := env.games.Get(context.Background(), doomed.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("game record: expected not found, got %v", err)
	}

	evs, err := env.evaluations.List(context.Background())
	if err != nil {
		t.Fatalf("list evaluations: %v", err)
	}
	for _, ev := range evs {
		if ev.GameID == doomed.ID {
			t.Fatalf("dangling evaluation: %+v", ev)
		}
	}

	profiles, err := env.profiles.List(context.Background())
	if err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	for _, prof := range profiles {
		if prof.LibraryIndex(doomed.ID) >= 0 {
			t.Fatalf("dangling library entry on profile %d", prof.ID)
		}
		if prof.HasFavorite(doomed.ID) {
			t.Fatalf("dangling favorite on profile %d", prof.ID)
		}
	}

	// Counters recounted for affected profiles; untouched entries survive.
	prof1, err := env.profiles.Get(context.Background(), p1.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if prof1.PlayingCount != 0 || prof1.PlatinumCount != 1 {
		t.Fatalf("counters: got %d/%d/%d, want 0/0/1", prof1.PlayingCount, prof1.CompletedCount, prof1.PlatinumCount)
	}
}

func TestDeleteGameUnknown(t *testing.T) {
	env := newTestEnv(t)
	if err := env.cascade.DeleteGame(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteProfileRestoresRatings(t *testing.T) {
	env := newTestEnv(t)
	p1 := env.createProfile(t, "Danielle")
	p2 := env.createProfile(t, "Luis")
	g := env.createGame(t, "The Witcher 3")

	if _, err := env.evaluations.Rate(context.Background(), p1.ID, g.ID, 9.0, ""); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if _, err := env.evaluations.Rate(context.Background(), p2.ID, g.ID, 7.0, ""); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if got := env.gameRating(t, g.ID); got != 8.0 {
		t.Fatalf("precondition: got %v, want 8.0", got)
	}

	if err := env.cascade.DeleteProfile(context.Background(), p2.ID); err != nil {
		t.Fatalf("delete profile: %v", err)
	}

	if got := env.gameRating(t, g.ID); got != 9.0 {
		t.Fatalf("after delete: got %v, want 9.0", got)
	}
}

func TestDeleteProfileResetsSoloRatedGames(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")
	g := env.createGame(t, "Celeste")

	if _, err := env.evaluations.Rate(context.Background(), p.ID, g.ID, 9.5, ""); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if err := env.cascade.DeleteProfile(context.Background(), p.ID); err != nil {
		t.Fatalf("delete profile: %v", err)
	}

	if got := env.gameRating(t, g.ID); got != 0.0 {
		t.Fatalf("solo-rated game: got %v, want 0.0", got)
	}
	evs, err := env.evaluations.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(evs) != 0 {
		t.Fatalf("evaluations must be gone: %+v", evs)
	}
}

func TestDeleteProfileScrubsFollowGraph(t *testing.T) {
	env := newTestEnv(t)
	doomed := env.createProfile(t, "Danielle")
	b := env.createProfile(t, "Luis")
	c := env.createProfile(t, "Ana")

	mustFollow := func(follower, target int) {
		t.Helper()
		if _, err := env.follows.Follow(context.Background(), follower, target); err != nil {
			t.Fatalf("follow %d -> %d: %v", follower, target, err)
		}
	}
	mustFollow(doomed.ID, b.ID)
	mustFollow(b.ID, doomed.ID)
	mustFollow(c.ID, doomed.ID)
	mustFollow(b.ID, c.ID)

	if err := env.cascade.DeleteProfile(context.Background(), doomed.ID); err != nil {
		t.Fatalf("delete profile: %v", err)
	}

	profiles, err := env.profiles.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, prof := range profiles {
		if prof.IsFollowing(doomed.ID) {
			t.Fatalf("profile %d still follows the deleted profile", prof.ID)
		}
		for _, followerID := range prof.Followers {
			if followerID == doomed.ID {
				t.Fatalf("profile %d still lists the deleted profile as follower", prof.ID)
			}
		}
	}

	// Unrelated edges survive.
	ok, err := env.follows.IsFollowing(context.Background(), b.ID, c.ID)
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if !ok {
		t.Fatal("unrelated follow edge was lost")
	}
}

func TestDeleteProfileUnknown(t *testing.T) {
	env := newTestEnv(t)
	if err := env.cascade.DeleteProfile(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
