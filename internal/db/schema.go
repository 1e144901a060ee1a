package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// note: as per SQLite's manual suggestions, we do not use 'AUTOINCREMENT' on
// the 'INTEGER PRIMARY KEY' column. The default behaviour of such columns is
// nearly identical anyway, with less overhead.
//
// Ratings and results keep the exact header text the PGN carried; games are
// filtered when a book is built, not when they are imported.
var schema_stmts = []string{
	`PRAGMA journal_mode=WAL;`,
	`PRAGMA foreign_keys=ON;`,
	`CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY,
		imported_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
		source TEXT NOT NULL DEFAULT '',
		white TEXT NOT NULL DEFAULT '',
		black TEXT NOT NULL DEFAULT '',
		white_elo TEXT NOT NULL DEFAULT '',
		black_elo TEXT NOT NULL DEFAULT '',
		result TEXT NOT NULL DEFAULT '',
		moves_uci TEXT NOT NULL DEFAULT '',
		ply_count INTEGER NOT NULL GENERATED ALWAYS AS (length(moves_uci) - length(replace(moves_uci, ' ', '')) + CASE WHEN moves_uci = '' THEN 0 ELSE 1 END) STORED
		CHECK (trim(moves_uci) = moves_uci)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_games_imported_at ON games(imported_at);`,
	`CREATE INDEX IF NOT EXISTS idx_games_source ON games(source);`,
	`CREATE INDEX IF NOT EXISTS idx_games_result ON games(result);`,
}

type Store struct {
	db *sqlx.DB
}

func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// keep it predictable; this is a single-writer archive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	for _, stmt := range schema_stmts {
		db.MustExec(stmt)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
