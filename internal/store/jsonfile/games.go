package jsonfile

import (
	"context"
	"slices"
	"strings"

	"gameshelf/internal/domain"
)

func (s *Store) CreateGame(ctx context.Context, g domain.Game) (domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = nextID(s.games, func(g domain.Game) int { return g.ID })
	s.games = append(s.games, g)
	s.dirtyGames = true
	return g, nil
}

func (s *Store) GetGame(ctx context.Context, id int) (domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.games {
		if s.games[i].ID == id {
			return s.games[i], nil
		}
	}
	return domain.Game{}, domain.ErrNotFound
}

func (s *Store) GetGameByTitle(ctx context.Context, title string) (domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	title = strings.TrimSpace(title)
	for i := range s.games {
		if strings.EqualFold(s.games[i].Title, title) {
			return s.games[i], nil
		}
	}
	return domain.Game{}, domain.ErrNotFound
}

func (s *Store) UpdateGame(ctx context.Context, g domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.games {
		if s.games[i].ID == g.ID {
			s.games[i] = g
			s.dirtyGames = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) DeleteGame(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.games {
		if s.games[i].ID == id {
			s.games = slices.Delete(s.games, i, i+1)
			s.dirtyGames = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) ListGames(ctx context.Context) ([]domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.games), nil
}
