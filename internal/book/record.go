package book

import "github.com/notnil/chess"

const (
	ResultWhiteWon = "1-0"
	ResultBlackWon = "0-1"
	ResultDraw     = "1/2-1/2"
)

// Record is one finished game as fed to the builder. Elo fields keep the
// raw header text so that malformed ratings can be rejected, not guessed.
type Record struct {
	White    string
	Black    string
	WhiteElo string
	BlackElo string
	Result   string
	MovesUCI []string
}

func winnerColor(result string) (chess.Color, bool) {
	switch result {
	case ResultWhiteWon:
		return chess.White, true
	case ResultBlackWon:
		return chess.Black, true
	}
	return chess.NoColor, false
}
