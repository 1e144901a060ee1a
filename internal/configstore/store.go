package configstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Profile holds the build and query settings that persist between runs.
// MaxDepth counts full moves, not plies. MaxGames of 0 means unlimited.
type Profile struct {
	MinElo    int       `json:"min_elo"`
	MinGames  int       `json:"min_games"`
	MaxDepth  int       `json:"max_depth"`
	MaxGames  int       `json:"max_games"`
	Strategy  string    `json:"strategy"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store struct {
	path string
	mu   sync.Mutex
	prof Profile
}

func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}

	store := &Store{path: path}
	if err := store.loadOrInit(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) Get(ctx context.Context) (Profile, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prof, nil
}

func (s *Store) Update(ctx context.Context, prof Profile) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	prof = clampProfile(prof)
	prof.UpdatedAt = time.Now().UTC()
	s.prof = prof
	return s.saveLocked()
}

func (s *Store) loadOrInit() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.prof = defaultProfile()
			return s.saveLocked()
		}
		return fmt.Errorf("read profile: %w", err)
	}

	if err := json.Unmarshal(data, &s.prof); err != nil {
		return fmt.Errorf("parse profile: %w", err)
	}

	s.prof = clampProfile(s.prof)
	return nil
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.prof, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

func clampProfile(prof Profile) Profile {
	def := defaultProfile()
	if prof.MinElo <= 0 {
		prof.MinElo = def.MinElo
	}
	if prof.MinGames <= 0 {
		prof.MinGames = def.MinGames
	}
	if prof.MaxDepth <= 0 {
		prof.MaxDepth = def.MaxDepth
	}
	if prof.MaxGames < 0 {
		prof.MaxGames = 0
	}
	switch prof.Strategy {
	case "weighted", "first", "shortlist":
	default:
		prof.Strategy = def.Strategy
	}
	return prof
}

func defaultProfile() Profile {
	return Profile{
		MinElo:    2200,
		MinGames:  5,
		MaxDepth:  15,
		MaxGames:  0,
		Strategy:  "weighted",
		UpdatedAt: time.Now().UTC(),
	}
}
