package book

import (
	"strconv"
	"strings"
)

// Filter decides which records contribute to the book at all.
type Filter struct {
	MinElo int
}

// Admit reports whether the record clears the rating floor and carries a
// terminal result. A missing or non-numeric Elo header rejects the game.
func (f Filter) Admit(rec Record) bool {
	if !ratingOK(rec.WhiteElo, f.MinElo) || !ratingOK(rec.BlackElo, f.MinElo) {
		return false
	}
	switch rec.Result {
	case ResultWhiteWon, ResultBlackWon, ResultDraw:
		return true
	}
	return false
}

func ratingOK(raw string, min int) bool {
	elo, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return elo >= min
}
