package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gameshelf/internal/config"
	"gameshelf/internal/service"
	"gameshelf/internal/store/jsonfile"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gameshelf",
		Short:        "Maintain a gameshelf data directory",
		Long:         "Gameshelf manages the JSON data directory behind the game-cataloging app:\nseeding a fresh catalog and auditing referential integrity and derived fields.",
		SilenceUsage: true,
	}
	root.AddCommand(newSeedCmd(), newCheckCmd())
	return root
}

// app is the composition root: one store, every service wired to it. All
// flushing and logging happens here; the services never touch disk or log.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	store  *jsonfile.Store

	profiles    *service.ProfileService
	games       *service.GameService
	evaluations *service.EvaluationService
	library     *service.LibraryService
	favorites   *service.FavoriteService
	follows     *service.FollowService
	cascade     *service.CascadeService
	integrity   *service.IntegrityService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	st, err := jsonfile.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	evaluations := &service.EvaluationService{Profiles: st, Games: st, Evaluations: st}
	return &app{
		cfg:         cfg,
		logger:      newLogger(cfg),
		store:       st,
		profiles:    &service.ProfileService{Profiles: st},
		games:       &service.GameService{Games: st},
		evaluations: evaluations,
		library:     &service.LibraryService{Profiles: st, Games: st},
		favorites:   &service.FavoriteService{Profiles: st, Games: st},
		follows:     &service.FollowService{Profiles: st},
		cascade: &service.CascadeService{
			Profiles:    st,
			Games:       st,
			Evaluations: st,
			Ratings:     evaluations,
		},
		integrity: &service.IntegrityService{Profiles: st, Games: st, Evaluations: st},
	}, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProd() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
