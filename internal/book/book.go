// Package book builds and serves a weighted opening book aggregated from
// recorded games. Positions are keyed by the space-joined UCI move sequence
// that reaches them from the starting position; the empty key is the
// starting position itself.
package book

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// maxCandidates bounds how many moves survive per position.
const maxCandidates = 5

// Candidate is one playable move with its selection weight.
type Candidate struct {
	UCI    string `json:"uci"`
	Weight int    `json:"weight"`
}

// Entry is a position with its surviving candidates. Games and AvgScore
// describe the kept candidates only and exist for inspection, not lookup.
type Entry struct {
	Key        string      `json:"key"`
	Candidates []Candidate `json:"candidates"`
	Games      int         `json:"games"`
	AvgScore   float64     `json:"avg_score"`
}

// Table is the finished book. Entries are ordered by key length, then key,
// so that serialized output is stable across rebuilds from the same input.
type Table struct {
	MinElo   int     `json:"min_elo"`
	MinGames int     `json:"min_games"`
	MaxPlies int     `json:"max_plies"`
	Games    int     `json:"games"`
	Entries  []Entry `json:"entries"`

	byKey map[string]*Entry
}

func (t *Table) index() error {
	t.byKey = make(map[string]*Entry, len(t.Entries))
	for i := range t.Entries {
		e := &t.Entries[i]
		if _, ok := t.byKey[e.Key]; ok {
			return fmt.Errorf("book: duplicate key %q", e.Key)
		}
		t.byKey[e.Key] = e
	}
	return nil
}

// Lookup returns the entry for a position key, if the book knows it.
func (t *Table) Lookup(key string) (*Entry, bool) {
	e, ok := t.byKey[key]
	return e, ok
}

// Find looks up the position reached by playing history from the start.
func (t *Table) Find(history []string) (*Entry, bool) {
	return t.Lookup(strings.Join(history, " "))
}

// Save writes the book as indented JSON. Output depends only on the table
// contents, so identical input games produce identical files.
func (t *Table) Save(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode book: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write book: %w", err)
	}
	return nil
}

// Load reads a book written by Save and rebuilds the lookup index.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read book: %w", err)
	}
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode book %s: %w", path, err)
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return &t, nil
}
