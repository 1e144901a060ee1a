package db

import (
	"context"
	"strings"

	"janus/internal/book"
)

// Add one game to the archive. Returns the inserted games ID.
func (s *Store) InsertRecord(ctx context.Context, source string, rec book.Record) (int64, error) {
	row := GameRow{
		Source:   source,
		White:    rec.White,
		Black:    rec.Black,
		WhiteElo: rec.WhiteElo,
		BlackElo: rec.BlackElo,
		Result:   rec.Result,
		MovesUCI: strings.Join(rec.MovesUCI, " "),
	}
	res, err := s.db.NamedExecContext(ctx, `
		INSERT INTO games (source, white, black, white_elo, black_elo, result, moves_uci)
		VALUES (:source, :white, :black, :white_elo, :black_elo, :result, :moves_uci)
	`, row)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertRecords adds a batch of games in one transaction.
func (s *Store) InsertRecords(ctx context.Context, source string, recs []book.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO games (source, white, black, white_elo, black_elo, result, moves_uci)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range recs {
		if _, err = stmt.ExecContext(ctx, source, rec.White, rec.Black, rec.WhiteElo, rec.BlackElo, rec.Result, strings.Join(rec.MovesUCI, " ")); err != nil {
			return err
		}
	}
	err = tx.Commit()
	return err
}

// ListRecords returns archived games oldest first. limit <= 0 means all;
// a negative LIMIT is unbounded in sqlite.
func (s *Store) ListRecords(ctx context.Context, limit int) ([]book.Record, error) {
	if limit <= 0 {
		limit = -1
	}
	var rows []GameRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, source, white, black, white_elo, black_elo, result, moves_uci
		FROM games
		ORDER BY id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	out := make([]book.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Record())
	}
	return out, nil
}

func (s *Store) CountRecords(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM games`)
	return count, err
}
