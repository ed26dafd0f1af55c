package jsonfile

import (
	"context"
	"slices"

	"gameshelf/internal/domain"
)

func (s *Store) CreateEvaluation(ctx context.Context, ev domain.Evaluation) (domain.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev.ID = nextID(s.evaluations, func(ev domain.Evaluation) int { return ev.ID })
	s.evaluations = append(s.evaluations, ev)
	s.dirtyEvaluations = true
	return ev, nil
}

func (s *Store) GetEvaluation(ctx context.Context, id int) (domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.evaluations {
		if s.evaluations[i].ID == id {
			return s.evaluations[i], nil
		}
	}
	return domain.Evaluation{}, domain.ErrNotFound
}

func (s *Store) GetEvaluationByPair(ctx context.Context, profileID, gameID int) (domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.evaluations {
		if s.evaluations[i].ProfileID == profileID && s.evaluations[i].GameID == gameID {
			return s.evaluations[i], nil
		}
	}
	return domain.Evaluation{}, domain.ErrNotFound
}

func (s *Store) UpdateEvaluation(ctx context.Context, ev domain.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.evaluations {
		if s.evaluations[i].ID == ev.ID {
			s.evaluations[i] = ev
			s.dirtyEvaluations = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) DeleteEvaluation(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.evaluations {
		if s.evaluations[i].ID == id {
			s.evaluations = slices.Delete(s.evaluations, i, i+1)
			s.dirtyEvaluations = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) ListEvaluations(ctx context.Context) ([]domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.evaluations), nil
}

func (s *Store) ListEvaluationsByGame(ctx context.Context, gameID int) ([]domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Evaluation
	for i := range s.evaluations {
		if s.evaluations[i].GameID == gameID {
			out = append(out, s.evaluations[i])
		}
	}
	return out, nil
}

func (s *Store) ListEvaluationsByProfile(ctx context.Context, profileID int) ([]domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Evaluation
	for i := range s.evaluations {
		if s.evaluations[i].ProfileID == profileID {
			out = append(out, s.evaluations[i])
		}
	}
	return out, nil
}
