package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gameshelf/internal/domain"
)

const (
	profilesFile    = "profiles.json"
	gamesFile       = "games.json"
	evaluationsFile = "evaluations.json"
)

// Store keeps every collection in memory and snapshots each one to a
// human-readable JSON array in dir. Mutations only mark the owning
// collection dirty; nothing touches disk until Flush.
type Store struct {
	dir string

	mu          sync.RWMutex
	profiles    []domain.Profile
	games       []domain.Game
	evaluations []domain.Evaluation

	dirtyProfiles    bool
	dirtyGames       bool
	dirtyEvaluations bool
}

// Open loads the snapshot files from dir. Missing or empty files load as
// empty collections; a file that exists but does not parse is an error.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir}
	if err := loadFile(filepath.Join(dir, profilesFile), &s.profiles); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, gamesFile), &s.games); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, evaluationsFile), &s.evaluations); err != nil {
		return nil, err
	}
	return s, nil
}

// Flush writes every dirty collection to its snapshot file and clears the
// dirty flags. Collections that have not changed are left untouched.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirtyProfiles {
		if err := writeFile(filepath.Join(s.dir, profilesFile), s.profiles); err != nil {
			return err
		}
		s.dirtyProfiles = false
	}
	if s.dirtyGames {
		if err := writeFile(filepath.Join(s.dir, gamesFile), s.games); err != nil {
			return err
		}
		s.dirtyGames = false
	}
	if s.dirtyEvaluations {
		if err := writeFile(filepath.Join(s.dir, evaluationsFile), s.evaluations); err != nil {
			return err
		}
		s.dirtyEvaluations = false
	}
	return nil
}

func loadFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeFile[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// nextID allocates max(existing ids)+1, or 1 for an empty collection.
// Ids of deleted records are never reused within a session.
func nextID[T any](items []T, id func(T) int) int {
	maxID := 0
	for _, it := range items {
		if id(it) > maxID {
			maxID = id(it)
		}
	}
	return maxID + 1
}
