package service

import (
	"context"
	"errors"
	"strings"

	"gameshelf/internal/domain"
)

type GameService struct {
	Games GamesStore
}

func (s *GameService) Create(ctx context.Context, p domain.CreateGameParams) (domain.Game, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Genre = strings.TrimSpace(p.Genre)
	if err := p.Validate(); err != nil {
		return domain.Game{}, err
	}

	if err := s.checkTitleFree(ctx, p.Title, 0); err != nil {
		return domain.Game{}, err
	}

	return s.Games.CreateGame(ctx, domain.Game{
		Title:         p.Title,
		Description:   p.Description,
		Genre:         p.Genre,
		AverageRating: 0.0,
	})
}

func (s *GameService) Get(ctx context.Context, id int) (domain.Game, error) {
	return s.Games.GetGame(ctx, id)
}

func (s *GameService) GetByTitle(ctx context.Context, title string) (domain.Game, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Game{}, domain.NewValidationError(map[string]string{"title": "required"})
	}
	return s.Games.GetGameByTitle(ctx, title)
}

func (s *GameService) List(ctx context.Context) ([]domain.Game, error) {
	return s.Games.ListGames(ctx)
}

func (s *GameService) Update(ctx context.Context, id int, p domain.UpdateGameParams) (domain.Game, error) {
	trimPtr(p.Title)
	trimPtr(p.Description)
	trimPtr(p.Genre)
	if err := p.Validate(); err != nil {
		return domain.Game{}, err
	}

	game, err := s.Games.GetGame(ctx, id)
	if err != nil {
		return domain.Game{}, err
	}

	if p.Title != nil && !strings.EqualFold(*p.Title, game.Title) {
		if err := s.checkTitleFree(ctx, *p.Title, id); err != nil {
			return domain.Game{}, err
		}
	}

	if p.Title != nil {
		game.Title = *p.Title
	}
	if p.Description != nil {
		game.Description = *p.Description
	}
	if p.Genre != nil {
		game.Genre = *p.Genre
	}

	if err := s.Games.UpdateGame(ctx, game); err != nil {
		return domain.Game{}, err
	}
	return game, nil
}

func (s *GameService) checkTitleFree(ctx context.Context, title string, excludeID int) error {
	existing, err := s.Games.GetGameByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return domain.ErrTitleTaken
}
