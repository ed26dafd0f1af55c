package service

import (
	"context"

	"gameshelf/internal/domain"
)

// Store contracts consumed by the services. The jsonfile store implements
// all three; tests may substitute narrower fakes.

type ProfilesStore interface {
	CreateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
	GetProfile(ctx context.Context, id int) (domain.Profile, error)
	GetProfileByDisplayName(ctx context.Context, name string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, p domain.Profile) error
	DeleteProfile(ctx context.Context, id int) error
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
}

type GamesStore interface {
	CreateGame(ctx context.Context, g domain.Game) (domain.Game, error)
	GetGame(ctx context.Context, id int) (domain.Game, error)
	GetGameByTitle(ctx context.Context, title string) (domain.Game, error)
	UpdateGame(ctx context.Context, g domain.Game) error
	DeleteGame(ctx context.Context, id int) error
	ListGames(ctx context.Context) ([]domain.Game, error)
}

type EvaluationsStore interface {
	CreateEvaluation(ctx context.Context, ev domain.Evaluation) (domain.Evaluation, error)
	GetEvaluation(ctx context.Context, id int) (domain.Evaluation, error)
	GetEvaluationByPair(ctx context.Context, profileID, gameID int) (domain.Evaluation, error)
	UpdateEvaluation(ctx context.Context, ev domain.Evaluation) error
	DeleteEvaluation(ctx context.Context, id int) error
	ListEvaluations(ctx context.Context) ([]domain.Evaluation, error)
	ListEvaluationsByGame(ctx context.Context, gameID int) ([]domain.Evaluation, error)
	ListEvaluationsByProfile(ctx context.Context, profileID int) ([]domain.Evaluation, error)
}
