package service

import (
	"context"
	"testing"

	"gameshelf/internal/domain"
	"gameshelf/internal/store/jsonfile"
)

// The jsonfile store is already in-memory, so the services are exercised
// against the real thing instead of stubs.
type testEnv struct {
	store       *jsonfile.Store
	profiles    *ProfileService
	games       *GameService
	evaluations *EvaluationService
	library     *LibraryService
	favorites   *FavoriteService
	follows     *FollowService
	cascade     *CascadeService
	integrity   *IntegrityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := jsonfile.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	evaluations := &EvaluationService{Profiles: st, Games: st, Evaluations: st}
	return &testEnv{
		store:       st,
		profiles:    &ProfileService{Profiles: st},
		games:       &GameService{Games: st},
		evaluations: evaluations,
		library:     &LibraryService{Profiles: st, Games: st},
		favorites:   &FavoriteService{Profiles: st, Games: st},
		follows:     &FollowService{Profiles: st},
		cascade: &CascadeService{
			Profiles:    st,
			Games:       st,
			Evaluations: st,
			Ratings:     evaluations,
		},
		integrity: &IntegrityService{Profiles: st, Games: st, Evaluations: st},
	}
}

func (e *testEnv) createProfile(t *testing.T, name string) domain.Profile {
	t.Helper()
	p, err := e.profiles.Create(context.Background(), domain.CreateProfileParams{DisplayName: name})
	if err != nil {
		t.Fatalf("create profile %q: %v", name, err)
	}
	return p
}

func (e *testEnv) createGame(t *testing.T, title string) domain.Game {
	t.Helper()
	g, err := e.games.Create(context.Background(), domain.CreateGameParams{Title: title, Genre: "RPG"})
	if err != nil {
		t.Fatalf("create game %q: %v", title, err)
	}
	return g
}

func (e *testEnv) gameRating(t *testing.T, gameID int) float64 {
	t.Helper()
	g, err := e.games.Get(context.Background(), gameID)
	if err != nil {
		t.Fatalf("get game %d: %v", gameID, err)
	}
	return g.AverageRating
}
