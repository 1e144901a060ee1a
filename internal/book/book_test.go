package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	b := NewBuilder(Config{MinElo: 2000, MinGames: 1, MaxPlies: 10})
	b.Add(testRecord(ResultWhiteWon, "e2e4", "e7e5", "g1f3"))
	b.Add(testRecord(ResultDraw, "e2e4", "c7c5"))
	table, _ := b.Build()

	path := filepath.Join(t.TempDir(), "book.json")
	if err := table.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.MinElo != table.MinElo || loaded.MinGames != table.MinGames || loaded.MaxPlies != table.MaxPlies {
		t.Fatalf("config fields changed: got %d/%d/%d", loaded.MinElo, loaded.MinGames, loaded.MaxPlies)
	}
	if loaded.Games != 2 {
		t.Fatalf("games: got %d want 2", loaded.Games)
	}
	if len(loaded.Entries) != len(table.Entries) {
		t.Fatalf("entries: got %d want %d", len(loaded.Entries), len(table.Entries))
	}

	e, ok := loaded.Lookup("e2e4")
	if !ok {
		t.Fatal("lookup e2e4 failed after load")
	}
	if len(e.Candidates) != 2 {
		t.Fatalf("e2e4 candidates: got %d want 2", len(e.Candidates))
	}
}

func TestLoadRejectsDuplicateKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	data := `{
  "min_elo": 2200,
  "min_games": 5,
  "max_plies": 30,
  "games": 1,
  "entries": [
    {"key": "e2e4", "candidates": [{"uci": "e7e5", "weight": 50}], "games": 1, "avg_score": 0.5},
    {"key": "e2e4", "candidates": [{"uci": "c7c5", "weight": 50}], "games": 1, "avg_score": 0.5}
  ]
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
	if !strings.Contains(err.Error(), "duplicate key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFindJoinsHistory(t *testing.T) {
	tbl := &Table{Entries: []Entry{
		{Key: "", Candidates: []Candidate{{UCI: "e2e4", Weight: 50}}},
		{Key: "e2e4 e7e5", Candidates: []Candidate{{UCI: "g1f3", Weight: 50}}},
	}}
	if err := tbl.index(); err != nil {
		t.Fatal(err)
	}

	if _, ok := tbl.Find(nil); !ok {
		t.Fatal("empty history should find the start entry")
	}
	if _, ok := tbl.Find([]string{"e2e4", "e7e5"}); !ok {
		t.Fatal("two-move history not found")
	}
	if _, ok := tbl.Find([]string{"e2e4"}); ok {
		t.Fatal("unknown history should not be found")
	}
}
