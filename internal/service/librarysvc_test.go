package service

import (
	"context"
	"errors"
	"testing"

	"gameshelf/internal/domain"
)

func TestLibraryAddCountsStatus(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")
	g := env.createGame(t, "The Witcher 3")

	prof, err := env.library.Add(context.Background(), p.ID, g.ID, "Playing")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if prof.PlayingCount != 1 || prof.CompletedCount != 0 || prof.PlatinumCount != 0 {
		t.Fatalf("counters: got %d/%d/%d, want 1/0/0", prof.PlayingCount, prof.CompletedCount, prof.PlatinumCount)
	}
	if len(prof.Library) != 1 || prof.Library[0].Status != domain.StatusPlaying {
		t.Fatalf("library: got %+v", prof.Library)
	}
}

func TestLibraryAddValidation(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")
	g := env.createGame(t, "Celeste")

	if _, err := env.library.Add(context.Background(), 99, g.ID, "playing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown profile: expected not found, got %v", err)
	}
	if _, err := env.library.Add(context.Background(), p.ID, 99, "playing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown game: expected not found, got %v", err)
	}
	if _, err := env.library.Add(context.Background(), p.ID, g.ID, "paused"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("bad status: expected validation error, got %v", err)
	}
}

func TestLibraryAddTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")
	g := env.createGame(t, "Celeste")

	if _, err := env.library.Add(context.Background(), p.ID, g.ID, "playing"); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := env.library.Add(context.Background(), p.ID, g.ID, "completed")
	if !errors.Is(err, domain.ErrAlreadyInLibrary) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLibraryUpdateStatusMovesCounters(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")
	g := env.createGame(t, "Celeste")

	if _, err := env.library.Add(context.Background(), p.ID, g.ID, "playing"); err != nil {
		t.Fatalf("add: %v", err)
	}

	prof, err := env.library.UpdateStatus(context.Background(), p.ID, g.ID, "PLATINUM")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if prof.PlayingCount != 0 || prof.PlatinumCount != 1 {
		t.Fatalf("counters: got %d/%d/%d, want 0/0/1", prof.PlayingCount, prof.CompletedCount, prof.PlatinumCount)
	}
	if len(prof.Library) != 1 {
		t.Fatalf("library: got %d entries, want 1", len(prof.Library))
	}
}

func TestLibraryUpdateStatusMissingEntry(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")
	env.createGame(t, "Celeste")

	_, err := env.library.UpdateStatus(context.Background(), p.ID, 1, "playing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLibraryRemoveLeavesOtherCollectionsAlone(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")
	g := env.createGame(t, "Celeste")

	if _, err := env.library.Add(context.Background(), p.ID, g.ID, "completed"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := env.favorites.Favorite(context.Background(), p.ID, g.ID); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if _, err := env.evaluations.Rate(context.Background(), p.ID, g.ID, 9, ""); err != nil {
		t.Fatalf("rate: %v", err)
	}

	if err := env.library.Remove(context.Background(), p.ID, g.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	prof, err := env.profiles.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if len(prof.Library) != 0 || prof.CompletedCount != 0 {
		t.Fatalf("library not removed: %+v", prof)
	}
	if !prof.HasFavorite(g.ID) {
		t.Fatal("favorite must survive library removal")
	}
	if got := env.gameRating(t, g.ID); got != 9.0 {
		t.Fatalf("evaluation must survive library removal: rating %v", got)
	}

	if err := env.library.Remove(context.Background(), p.ID, g.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second remove: expected not found, got %v", err)
	}
}

func TestLibraryListByStatus(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")
	g1 := env.createGame(t, "Celeste")
	g2 := env.createGame(t, "Hades")
	g3 := env.createGame(t, "Undertale")

	for _, add := range []struct {
		gameID int
		status string
	}{
		{g1.ID, "playing"},
		{g2.ID, "platinum"},
		{g3.ID, "playing"},
	} {
		if _, err := env.library.Add(context.Background(), p.ID, add.gameID, add.status); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	playing, err := env.library.ListByStatus(context.Background(), p.ID, "playing")
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(playing) != 2 {
		t.Fatalf("playing: got %d entries, want 2", len(playing))
	}

	if _, err := env.library.ListByStatus(context.Background(), p.ID, "abandoned"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("bad status: expected validation error, got %v", err)
	}
}
