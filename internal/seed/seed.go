package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gameshelf/internal/domain"
	"gameshelf/internal/service"
)

// Catalog is the starter data applied to a fresh data dir.
type Catalog struct {
	Profiles []ProfileSeed `yaml:"profiles"`
	Games    []GameSeed    `yaml:"games"`
}

type ProfileSeed struct {
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	Avatar      string `yaml:"avatar"`
}

type GameSeed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Genre       string `yaml:"genre"`
}

// Default returns the built-in starter catalog.
func Default() Catalog {
	return Catalog{
		Profiles: []ProfileSeed{
			{DisplayName: "Danielle", Description: "RPG lover", Avatar: "avatar1.png"},
			{DisplayName: "Luis", Description: "Retro gamer", Avatar: "avatar2.png"},
		},
		Games: []GameSeed{
			{Title: "The Witcher 3", Genre: "RPG"},
			{Title: "Celeste", Genre: "Platformer"},
			{Title: "Stardew Valley", Genre: "Simulation"},
		},
	}
}

// FromFile reads a catalog from a YAML file.
func FromFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read seed file: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse seed file: %w", err)
	}
	return c, nil
}

// Apply creates the catalog's profiles and games through the services.
// Entries that already exist are skipped, so applying the same catalog twice
// is harmless. Returns the number of records created.
func (c Catalog) Apply(ctx context.Context, profiles *service.ProfileService, games *service.GameService) (int, error) {
	created := 0
	for _, p := range c.Profiles {
		_, err := profiles.Create(ctx, domain.CreateProfileParams{
			DisplayName: p.DisplayName,
			Description: p.Description,
			Avatar:      p.Avatar,
		})
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return created, fmt.Errorf("seed profile %q: %w", p.DisplayName, err)
		}
		created++
	}
	for _, g := range c.Games {
		_, err := games.Create(ctx, domain.CreateGameParams{
			Title:       g.Title,
			Description: g.Description,
			Genre:       g.Genre,
		})
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return created, fmt.Errorf("seed game %q: %w", g.Title, err)
		}
		created++
	}
	return created, nil
}
