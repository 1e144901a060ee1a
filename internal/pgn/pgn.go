// Package pgn streams game records out of PGN input.
package pgn

import (
	"errors"
	"fmt"
	"io"

	"github.com/notnil/chess"

	"janus/internal/book"
)

// Read scans games from r and hands each one to fn as a Record. Games
// without moves are skipped. An error from fn stops the scan and comes
// back as is.
func Read(r io.Reader, fn func(book.Record) error) error {
	scanner := chess.NewScanner(r)
	for scanner.Scan() {
		g := scanner.Next()
		if g == nil {
			continue
		}
		rec := recordFromGame(g)
		if len(rec.MovesUCI) == 0 {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("scan pgn: %w", err)
	}
	return nil
}

// ReadAll collects every record in r.
func ReadAll(r io.Reader) ([]book.Record, error) {
	var out []book.Record
	err := Read(r, func(rec book.Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

func recordFromGame(g *chess.Game) book.Record {
	rec := book.Record{
		White:    tag(g, "White"),
		Black:    tag(g, "Black"),
		WhiteElo: tag(g, "WhiteElo"),
		BlackElo: tag(g, "BlackElo"),
		Result:   tag(g, "Result"),
	}
	if rec.Result == "" {
		rec.Result = resultString(g.Outcome())
	}

	notation := chess.UCINotation{}
	moves := g.Moves()
	positions := g.Positions()
	rec.MovesUCI = make([]string, 0, len(moves))
	for i, mv := range moves {
		rec.MovesUCI = append(rec.MovesUCI, notation.Encode(positions[i], mv))
	}
	return rec
}

func tag(g *chess.Game, name string) string {
	if tp := g.GetTagPair(name); tp != nil {
		return tp.Value
	}
	return ""
}

func resultString(outcome chess.Outcome) string {
	switch outcome {
	case chess.WhiteWon:
		return book.ResultWhiteWon
	case chess.BlackWon:
		return book.ResultBlackWon
	case chess.Draw:
		return book.ResultDraw
	}
	return "*"
}
