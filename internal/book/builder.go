package book

import (
	"sort"

	"github.com/notnil/chess"
)

// Config controls which games and positions make it into the book.
// MaxPlies is counted in half-moves.
type Config struct {
	MinElo   int
	MinGames int
	MaxPlies int
}

// DefaultConfig matches a book built from strong modern games: both
// players rated 2200+, a move needs 5 sightings, 15 full moves deep.
func DefaultConfig() Config {
	return Config{MinElo: 2200, MinGames: 5, MaxPlies: 30}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MinElo <= 0 {
		c.MinElo = d.MinElo
	}
	if c.MinGames <= 0 {
		c.MinGames = d.MinGames
	}
	if c.MaxPlies <= 0 {
		c.MaxPlies = d.MaxPlies
	}
	return c
}

// Stats reports what the builder saw and kept.
type Stats struct {
	Games      int
	Admitted   int
	Truncated  int
	Positions  int
	Candidates int
}

type moveStats struct {
	byUCI map[string]*MoveStat
	order []*MoveStat
}

func (ms *moveStats) stat(uci string) *MoveStat {
	if st, ok := ms.byUCI[uci]; ok {
		return st
	}
	st := &MoveStat{UCI: uci}
	ms.byUCI[uci] = st
	ms.order = append(ms.order, st)
	return st
}

// Builder accumulates records one at a time and reduces them into a Table.
// It is not safe for concurrent use.
type Builder struct {
	cfg       Config
	filter    Filter
	positions map[string]*moveStats
	stats     Stats
}

func NewBuilder(cfg Config) *Builder {
	cfg = cfg.withDefaults()
	return &Builder{
		cfg:       cfg,
		filter:    Filter{MinElo: cfg.MinElo},
		positions: make(map[string]*moveStats),
	}
}

// Add replays one record and credits each move to the position it was
// played from. Outcomes count from the mover's perspective: a move scores
// a win when the side that played it went on to win, whichever color that
// was. A move that does not decode or is not legal in its position ends
// the replay there; whatever was already counted stays.
func (b *Builder) Add(rec Record) {
	b.stats.Games++
	if !b.filter.Admit(rec) {
		return
	}
	b.stats.Admitted++

	winner, decisive := winnerColor(rec.Result)

	limit := len(rec.MovesUCI)
	if limit > b.cfg.MaxPlies {
		limit = b.cfg.MaxPlies
	}

	game := chess.NewGame()
	notation := chess.UCINotation{}
	key := ""
	for i := 0; i < limit; i++ {
		uci := rec.MovesUCI[i]
		pos := game.Position()
		mv, err := notation.Decode(pos, uci)
		if err != nil {
			b.stats.Truncated++
			break
		}
		mover := pos.Turn()
		if err := game.Move(mv); err != nil {
			b.stats.Truncated++
			break
		}

		st := b.position(key).stat(uci)
		st.Count++
		switch {
		case !decisive:
			st.Draws++
		case mover == winner:
			st.Wins++
		default:
			st.Losses++
		}

		if key == "" {
			key = uci
		} else {
			key += " " + uci
		}
	}
}

func (b *Builder) position(key string) *moveStats {
	if ms, ok := b.positions[key]; ok {
		return ms
	}
	ms := &moveStats{byUCI: make(map[string]*MoveStat)}
	b.positions[key] = ms
	return ms
}

// Build reduces everything accumulated so far into a finished table and
// resets the builder. Per position: moves below MinGames go, the rest sort
// by score then count (ties keep first-seen order), the top five stay.
// Positions left with no candidates are dropped entirely.
func (b *Builder) Build() (*Table, Stats) {
	t := &Table{
		MinElo:   b.cfg.MinElo,
		MinGames: b.cfg.MinGames,
		MaxPlies: b.cfg.MaxPlies,
		Games:    b.stats.Admitted,
	}

	keys := make([]string, 0, len(b.positions))
	for key := range b.positions {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})

	for _, key := range keys {
		entry, ok := b.reduce(key, b.positions[key])
		if !ok {
			continue
		}
		t.Entries = append(t.Entries, entry)
		b.stats.Positions++
		b.stats.Candidates += len(entry.Candidates)
	}

	if err := t.index(); err != nil {
		panic(err)
	}

	stats := b.stats
	b.positions = make(map[string]*moveStats)
	b.stats = Stats{}
	return t, stats
}

func (b *Builder) reduce(key string, ms *moveStats) (Entry, bool) {
	kept := make([]*MoveStat, 0, len(ms.order))
	for _, st := range ms.order {
		if st.Count >= b.cfg.MinGames {
			kept = append(kept, st)
		}
	}
	if len(kept) == 0 {
		return Entry{}, false
	}

	sort.SliceStable(kept, func(i, j int) bool {
		si, sj := kept[i].Score(), kept[j].Score()
		if si != sj {
			return si > sj
		}
		return kept[i].Count > kept[j].Count
	})
	if len(kept) > maxCandidates {
		kept = kept[:maxCandidates]
	}

	entry := Entry{Key: key, Candidates: make([]Candidate, 0, len(kept))}
	var weighted float64
	for _, st := range kept {
		entry.Candidates = append(entry.Candidates, Candidate{UCI: st.UCI, Weight: st.Weight()})
		entry.Games += st.Count
		weighted += st.Score() * float64(st.Count)
	}
	if entry.Games > 0 {
		entry.AvgScore = weighted / float64(entry.Games)
	}
	return entry, true
}
