package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"janus/internal/book"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestInsertAndListRecords(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	recs := []book.Record{
		{White: "Alpha", Black: "Beta", WhiteElo: "2500", BlackElo: "2450", Result: "1-0", MovesUCI: []string{"e2e4", "e7e5"}},
		{White: "Gamma", Black: "Delta", WhiteElo: "2300", BlackElo: "2320", Result: "1/2-1/2", MovesUCI: []string{"d2d4", "d7d5"}},
	}
	require.NoError(t, store.InsertRecords(ctx, "test.pgn", recs))

	got, err := store.ListRecords(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, recs, got)

	count, err := store.CountRecords(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestListRecordsLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for _, uci := range []string{"e2e4", "d2d4", "c2c4"} {
		_, err := store.InsertRecord(ctx, "test.pgn", book.Record{
			White: "A", Black: "B", WhiteElo: "2200", BlackElo: "2200",
			Result: "1-0", MovesUCI: []string{uci},
		})
		require.NoError(t, err)
	}

	got, err := store.ListRecords(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, []string{"e2e4"}, got[0].MovesUCI, "oldest game first")
}

func TestInsertRecordID(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	rec := book.Record{White: "A", Black: "B", WhiteElo: "2200", BlackElo: "2200", Result: "0-1", MovesUCI: []string{"e2e4"}}
	first, err := store.InsertRecord(ctx, "x.pgn", rec)
	require.NoError(t, err)
	second, err := store.InsertRecord(ctx, "x.pgn", rec)
	require.NoError(t, err)
	require.Greater(t, second, first)
}

func TestRawHeadersSurviveStorage(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	rec := book.Record{White: "A", Black: "B", WhiteElo: "unknown", BlackElo: "", Result: "*", MovesUCI: []string{"e2e4"}}
	_, err := store.InsertRecord(ctx, "junk.pgn", rec)
	require.NoError(t, err)

	got, err := store.ListRecords(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "unknown", got[0].WhiteElo)
	require.Equal(t, "*", got[0].Result)
}
