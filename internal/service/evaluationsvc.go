package service

import (
	"context"
	"errors"
	"math"

	"gameshelf/internal/domain"
)

type EvaluationService struct {
	Profiles    ProfilesStore
	Games       GamesStore
	Evaluations EvaluationsStore
}

// Rate records a profile's first evaluation of a game. Ratings are
// create-once: a second evaluation for the same pair is a conflict and the
// caller must edit the existing one instead.
func (s *EvaluationService) Rate(ctx context.Context, profileID, gameID int, score float64, reviewText string) (domain.Evaluation, error) {
	if _, err := s.Profiles.GetProfile(ctx, profileID); err != nil {
		return domain.Evaluation{}, err
	}
	if _, err := s.Games.GetGame(ctx, gameID); err != nil {
		return domain.Evaluation{}, err
	}
	if err := domain.ValidateScore(score); err != nil {
		return domain.Evaluation{}, err
	}

	if _, err := s.Evaluations.GetEvaluationByPair(ctx, profileID, gameID); err == nil {
		return domain.Evaluation{}, domain.ErrAlreadyEvaluated
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Evaluation{}, err
	}

	ev, err := s.Evaluations.CreateEvaluation(ctx, domain.Evaluation{
		ProfileID:  profileID,
		GameID:     gameID,
		Score:      score,
		ReviewText: reviewText,
	})
	if err != nil {
		return domain.Evaluation{}, err
	}
	if err := s.RecomputeGameRating(ctx, gameID); err != nil {
		return domain.Evaluation{}, err
	}
	return ev, nil
}

func (s *EvaluationService) Edit(ctx context.Context, evaluationID int, p domain.EditEvaluationParams) (domain.Evaluation, error) {
	if err := p.Validate(); err != nil {
		return domain.Evaluation{}, err
	}

	ev, err := s.Evaluations.GetEvaluation(ctx, evaluationID)
	if err != nil {
		return domain.Evaluation{}, err
	}

	if p.Score != nil {
		ev.Score = *p.Score
	}
	if p.ReviewText != nil {
		ev.ReviewText = *p.ReviewText
	}

	if err := s.Evaluations.UpdateEvaluation(ctx, ev); err != nil {
		return domain.Evaluation{}, err
	}
	if err := s.RecomputeGameRating(ctx, ev.GameID); err != nil {
		return domain.Evaluation{}, err
	}
	return ev, nil
}

func (s *EvaluationService) Remove(ctx context.Context, evaluationID int) error {
	ev, err := s.Evaluations.GetEvaluation(ctx, evaluationID)
	if err != nil {
		return err
	}
	if err := s.Evaluations.DeleteEvaluation(ctx, ev.ID); err != nil {
		return err
	}
	return s.RecomputeGameRating(ctx, ev.GameID)
}

// RemoveByPair resolves the evaluation for (profileID, gameID) and removes it.
func (s *EvaluationService) RemoveByPair(ctx context.Context, profileID, gameID int) error {
	ev, err := s.Evaluations.GetEvaluationByPair(ctx, profileID, gameID)
	if err != nil {
		return err
	}
	return s.Remove(ctx, ev.ID)
}

func (s *EvaluationService) Get(ctx context.Context, evaluationID int) (domain.Evaluation, error) {
	return s.Evaluations.GetEvaluation(ctx, evaluationID)
}

func (s *EvaluationService) List(ctx context.Context) ([]domain.Evaluation, error) {
	return s.Evaluations.ListEvaluations(ctx)
}

func (s *EvaluationService) ListByGame(ctx context.Context, gameID int) ([]domain.Evaluation, error) {
	if _, err := s.Games.GetGame(ctx, gameID); err != nil {
		return nil, err
	}
	return s.Evaluations.ListEvaluationsByGame(ctx, gameID)
}

func (s *EvaluationService) ListByProfile(ctx context.Context, profileID int) ([]domain.Evaluation, error) {
	if _, err := s.Profiles.GetProfile(ctx, profileID); err != nil {
		return nil, err
	}
	return s.Evaluations.ListEvaluationsByProfile(ctx, profileID)
}

// RecomputeGameRating rebuilds a game's average rating from every evaluation
// that references it. The aggregate is always fully recomputed, never
// adjusted in place, so it cannot drift from the underlying scores.
func (s *EvaluationService) RecomputeGameRating(ctx context.Context, gameID int) error {
	game, err := s.Games.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	evs, err := s.Evaluations.ListEvaluationsByGame(ctx, gameID)
	if err != nil {
		return err
	}

	game.AverageRating = meanScore(evs)
	return s.Games.UpdateGame(ctx, game)
}

func meanScore(evs []domain.Evaluation) float64 {
	if len(evs) == 0 {
		return 0.0
	}
	var total float64
	for _, ev := range evs {
		total += ev.Score
	}
	return math.Round(total/float64(len(evs))*100) / 100
}
