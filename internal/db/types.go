package db

import (
	"strings"

	"janus/internal/book"
)

type GameRow struct {
	ID         int64  `db:"id"`
	ImportedAt string `db:"imported_at"`
	Source     string `db:"source"`
	White      string `db:"white"`
	Black      string `db:"black"`
	WhiteElo   string `db:"white_elo"`
	BlackElo   string `db:"black_elo"`
	Result     string `db:"result"`
	MovesUCI   string `db:"moves_uci"`
	PlyCount   int    `db:"ply_count"`
}

func (r GameRow) Record() book.Record {
	return book.Record{
		White:    r.White,
		Black:    r.Black,
		WhiteElo: r.WhiteElo,
		BlackElo: r.BlackElo,
		Result:   r.Result,
		MovesUCI: strings.Fields(r.MovesUCI),
	}
}
