package service

import (
	"context"
	"errors"
	"testing"

	"gameshelf/internal/domain"
)

func TestCreateProfileTrimsAndDefaults(t *testing.T) {
	env := newTestEnv(t)

	p, err := env.profiles.Create(context.Background(), domain.CreateProfileParams{
		DisplayName: "  Danielle ",
		Description: " RPG lover ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("id: got %d, want 1", p.ID)
	}
	if p.DisplayName != "Danielle" || p.Description != "RPG lover" {
		t.Fatalf("fields not trimmed: %+v", p)
	}
	if p.Library == nil || p.Favorites == nil || p.Followers == nil || p.Following == nil {
		t.Fatal("collections must start empty, not nil")
	}
}

func TestCreateProfileRejectsBlankName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.profiles.Create(context.Background(), domain.CreateProfileParams{DisplayName: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateProfileDisplayNameConflictIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	env.createProfile(t, "Danielle")

	_, err := env.profiles.Create(context.Background(), domain.CreateProfileParams{DisplayName: "dANIELLE"})
	if !errors.Is(err, domain.ErrDisplayNameTaken) {
		t.Fatalf("expected display name conflict, got %v", err)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("conflict sentinel must unwrap to ErrConflict, got %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")

	desc := "collector"
	updated, err := env.profiles.Update(context.Background(), p.ID, domain.UpdateProfileParams{Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DisplayName != "Danielle" {
		t.Fatalf("display name changed unexpectedly: %q", updated.DisplayName)
	}
	if updated.Description != "collector" {
		t.Fatalf("description: got %q", updated.Description)
	}
}

func TestUpdateProfileRenameConflicts(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")
	env.createProfile(t, "Luis")

	name := "luis"
	_, err := env.profiles.Update(context.Background(), p.ID, domain.UpdateProfileParams{DisplayName: &name})
	if !errors.Is(err, domain.ErrDisplayNameTaken) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// Renaming to your own name (any casing) is not a conflict.
	own := "DANIELLE"
	updated, err := env.profiles.Update(context.Background(), p.ID, domain.UpdateProfileParams{DisplayName: &own})
	if err != nil {
		t.Fatalf("self rename: %v", err)
	}
	if updated.DisplayName != "DANIELLE" {
		t.Fatalf("display name: got %q", updated.DisplayName)
	}
}

func TestGetByDisplayName(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProfile(t, "Danielle")

	found, err := env.profiles.GetByDisplayName(context.Background(), "danielle")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if found.ID != p.ID {
		t.Fatalf("id: got %d, want %d", found.ID, p.ID)
	}

	if _, err := env.profiles.GetByDisplayName(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank name: expected validation error, got %v", err)
	}
	if _, err := env.profiles.GetByDisplayName(context.Background(), "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown name: expected not found, got %v", err)
	}
}
