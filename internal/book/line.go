package book

import "github.com/notnil/chess"

// LegalUCIs encodes every legal move in pos as UCI text.
func LegalUCIs(pos *chess.Position) []string {
	moves := pos.ValidMoves()
	notation := chess.UCINotation{}
	out := make([]string, 0, len(moves))
	for _, mv := range moves {
		out = append(out, notation.Encode(pos, mv))
	}
	return out
}

// MainLine follows the book's first choice from the starting position for
// up to maxPlies half-moves, stopping when the book runs out.
func (t *Table) MainLine(maxPlies int) []string {
	p := NewPicker(t, nil)
	game := chess.NewGame()
	notation := chess.UCINotation{}
	line := make([]string, 0, 8)

	for {
		if maxPlies > 0 && len(line) >= maxPlies {
			break
		}
		pos := game.Position()
		uci, ok := p.PickFirst(line, LegalUCIs(pos))
		if !ok {
			break
		}
		mv, err := notation.Decode(pos, uci)
		if err != nil {
			break
		}
		if err := game.Move(mv); err != nil {
			break
		}
		line = append(line, uci)
	}
	return line
}
