package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"

	"janus/internal/book"
	"janus/internal/config"
	"janus/internal/configstore"
	"janus/internal/db"
	"janus/internal/pgn"
)

var errCapReached = errors.New("game cap reached")

func main() {
	pgnPath := flag.String("pgn", "", "PGN file to read games from")
	dbPath := flag.String("db", "", "sqlite game archive (default from JANUS_GAMES_DB_PATH)")
	outPath := flag.String("out", "", "book output path (default from JANUS_BOOK_PATH)")
	txtPath := flag.String("txt", "", "annotated text output path (default: book path with .txt)")
	profilePath := flag.String("profile", "", "profile path (default from JANUS_PROFILE_PATH)")
	minElo := flag.Int("min-elo", 0, "minimum rating for both players (default from profile)")
	minGames := flag.Int("min-games", 0, "minimum games per kept move (default from profile)")
	maxDepth := flag.Int("max-depth", 0, "book depth in full moves (default from profile)")
	maxGames := flag.Int("max-games", 0, "stop after this many games, 0 reads all (default from profile)")
	doImport := flag.Bool("import", false, "import -pgn games into the archive and exit")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Parse()

	cfg := config.FromEnv()
	ctx := context.Background()

	profPath := *profilePath
	if profPath == "" {
		profPath = cfg.ProfilePath
	}
	profiles, err := configstore.New(profPath)
	if err != nil {
		log.Fatal(err)
	}
	prof, err := profiles.Get(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if *minElo > 0 {
		prof.MinElo = *minElo
	}
	if *minGames > 0 {
		prof.MinGames = *minGames
	}
	if *maxDepth > 0 {
		prof.MaxDepth = *maxDepth
	}
	if *maxGames > 0 {
		prof.MaxGames = *maxGames
	}

	prog := &progress{out: termenv.NewOutput(os.Stderr), quiet: *quiet}

	if *doImport {
		if *pgnPath == "" {
			log.Fatal("-import needs -pgn")
		}
		n, err := importGames(ctx, cfg, *dbPath, *pgnPath, prog)
		if err != nil {
			log.Fatal(err)
		}
		prog.done()
		log.Printf("imported %d games into archive", n)
		return
	}

	builder := book.NewBuilder(book.Config{
		MinElo:   prof.MinElo,
		MinGames: prof.MinGames,
		MaxPlies: 2 * prof.MaxDepth,
	})

	// archive first, then the PGN file; -pgn alone skips the archive.
	remaining := prof.MaxGames
	if *pgnPath == "" || *dbPath != "" {
		n, err := addFromArchive(ctx, cfg, *dbPath, builder, remaining)
		if err != nil {
			log.Fatal(err)
		}
		if prof.MaxGames > 0 {
			remaining = prof.MaxGames - n
		}
	}
	if *pgnPath != "" && (prof.MaxGames == 0 || remaining > 0) {
		if err := addFromPGN(*pgnPath, builder, remaining, prog); err != nil {
			log.Fatal(err)
		}
	}
	prog.done()

	table, stats := builder.Build()

	out := *outPath
	if out == "" {
		out = cfg.BookPath
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		log.Fatal(err)
	}
	if err := table.Save(out); err != nil {
		log.Fatal(err)
	}

	txt := *txtPath
	if txt == "" {
		txt = strings.TrimSuffix(out, filepath.Ext(out)) + ".txt"
	}
	if err := writeAnnotated(table, txt); err != nil {
		log.Fatal(err)
	}

	if err := profiles.Update(ctx, prof); err != nil {
		log.Printf("profile save: %v", err)
	}

	styled := termenv.NewOutput(os.Stdout)
	fmt.Printf("%s %s\n", styled.String("book written:").Foreground(termenv.ANSIGreen).Bold(), out)
	fmt.Printf("  %d games read, %d admitted, %d truncated\n", stats.Games, stats.Admitted, stats.Truncated)
	fmt.Printf("  %d positions, %d candidates\n", stats.Positions, stats.Candidates)
}

func addFromPGN(path string, builder *book.Builder, maxGames int, prog *progress) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	read := 0
	err = pgn.Read(f, func(rec book.Record) error {
		builder.Add(rec)
		read++
		prog.tick()
		if maxGames > 0 && read >= maxGames {
			return errCapReached
		}
		return nil
	})
	if err != nil && !errors.Is(err, errCapReached) {
		return err
	}
	return nil
}

func addFromArchive(ctx context.Context, cfg config.Config, dbPath string, builder *book.Builder, maxGames int) (int, error) {
	path := dbPath
	if path == "" {
		path = cfg.GamesDBPath
	}
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("no game archive at %s; pass -pgn or run -import first", path)
	}
	store, err := db.Open(path)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	recs, err := store.ListRecords(ctx, maxGames)
	if err != nil {
		return 0, err
	}
	log.Printf("archive: %d games", len(recs))
	for _, rec := range recs {
		builder.Add(rec)
	}
	return len(recs), nil
}

func importGames(ctx context.Context, cfg config.Config, dbPath, pgnPath string, prog *progress) (int, error) {
	path := dbPath
	if path == "" {
		path = cfg.GamesDBPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	store, err := db.Open(path)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	f, err := os.Open(pgnPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	source := filepath.Base(pgnPath)
	total := 0
	batch := make([]book.Record, 0, 1000)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := store.InsertRecords(ctx, source, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	err = pgn.Read(f, func(rec book.Record) error {
		batch = append(batch, rec)
		prog.tick()
		if len(batch) == cap(batch) {
			return flush()
		}
		return nil
	})
	if err != nil {
		return total, err
	}
	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}

func writeAnnotated(table *book.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := table.WriteAnnotated(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type progress struct {
	out   *termenv.Output
	quiet bool
	n     int
}

func (p *progress) tick() {
	p.n++
	if p.quiet || p.n%1000 != 0 {
		return
	}
	p.out.ClearLine()
	fmt.Fprintf(p.out, "\r%d games", p.n)
}

func (p *progress) done() {
	if p.quiet || p.n < 1000 {
		return
	}
	p.out.ClearLine()
	fmt.Fprint(p.out, "\r")
}
