package book

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Issue is one problem found in a table.
type Issue struct {
	Key    string
	Move   string
	Detail string
}

// Report summarizes a table audit.
type Report struct {
	Positions  int
	Candidates int
	Issues     []Issue
}

func (r Report) OK() bool { return len(r.Issues) == 0 }

// Validate checks that every entry is reachable by legal play from the
// starting position, every candidate is legal where it is stored, and
// weights stay within [0, 100].
func (t *Table) Validate() Report {
	var rep Report
	seen := make(map[string]bool, len(t.Entries))
	for _, e := range t.Entries {
		rep.Positions++
		rep.Candidates += len(e.Candidates)

		if seen[e.Key] {
			rep.Issues = append(rep.Issues, Issue{Key: e.Key, Detail: "duplicate key"})
			continue
		}
		seen[e.Key] = true

		if len(e.Candidates) == 0 {
			rep.Issues = append(rep.Issues, Issue{Key: e.Key, Detail: "no candidates"})
			continue
		}
		if len(e.Candidates) > maxCandidates {
			rep.Issues = append(rep.Issues, Issue{
				Key:    e.Key,
				Detail: fmt.Sprintf("%d candidates, limit %d", len(e.Candidates), maxCandidates),
			})
		}

		pos, err := replayKey(e.Key)
		if err != nil {
			rep.Issues = append(rep.Issues, Issue{Key: e.Key, Detail: err.Error()})
			continue
		}

		legal := make(map[string]bool)
		for _, uci := range LegalUCIs(pos) {
			legal[uci] = true
		}
		for _, c := range e.Candidates {
			if c.Weight < 0 || c.Weight > 100 {
				rep.Issues = append(rep.Issues, Issue{
					Key:    e.Key,
					Move:   c.UCI,
					Detail: fmt.Sprintf("weight %d out of range", c.Weight),
				})
			}
			if !legal[c.UCI] {
				rep.Issues = append(rep.Issues, Issue{Key: e.Key, Move: c.UCI, Detail: "not legal in position"})
			}
		}
	}
	return rep
}

func replayKey(key string) (*chess.Position, error) {
	game := chess.NewGame()
	notation := chess.UCINotation{}
	for _, uci := range strings.Fields(key) {
		mv, err := notation.Decode(game.Position(), uci)
		if err != nil {
			return nil, fmt.Errorf("bad move %q: %w", uci, err)
		}
		if err := game.Move(mv); err != nil {
			return nil, fmt.Errorf("illegal move %q", uci)
		}
	}
	return game.Position(), nil
}
