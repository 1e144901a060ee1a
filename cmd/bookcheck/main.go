package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/notnil/chess"

	"janus/internal/book"
	"janus/internal/config"
	"janus/internal/configstore"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed for the sample pick (0 seeds from the clock)")
	strategy := flag.String("strategy", "", "pick strategy: weighted, first or shortlist (default from profile)")
	plies := flag.Int("plies", 20, "half-moves of main line to print")
	flag.Parse()

	cfg := config.FromEnv()
	path := cfg.BookPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	t, err := book.Load(path)
	if err != nil {
		fmt.Println("load error:", err)
		os.Exit(1)
	}

	out := termenv.NewOutput(os.Stdout)

	rep := t.Validate()
	if !rep.OK() {
		fmt.Printf("%s %d issues in %s\n", out.String("FAIL").Foreground(termenv.ANSIRed).Bold(), len(rep.Issues), path)
		for _, issue := range rep.Issues {
			key := issue.Key
			if key == "" {
				key = "(start)"
			}
			if issue.Move != "" {
				fmt.Printf("  %s %s: %s\n", key, issue.Move, issue.Detail)
			} else {
				fmt.Printf("  %s: %s\n", key, issue.Detail)
			}
		}
		os.Exit(1)
	}
	fmt.Printf("%s %d positions, %d candidates\n", out.String("ok:").Foreground(termenv.ANSIGreen), rep.Positions, rep.Candidates)

	line := t.MainLine(*plies)
	if len(line) > 0 {
		fmt.Println("main line:", strings.Join(line, " "))
	}

	strat := *strategy
	if strat == "" {
		if _, statErr := os.Stat(cfg.ProfilePath); statErr == nil {
			if profiles, err := configstore.New(cfg.ProfilePath); err == nil {
				if prof, err := profiles.Get(context.Background()); err == nil {
					strat = prof.Strategy
				}
			}
		}
	}
	if strat == "" {
		strat = "weighted"
	}

	var src rand.Source
	if *seed != 0 {
		src = rand.NewSource(*seed)
	}
	picker := book.NewPicker(t, src)
	legal := book.LegalUCIs(chess.StartingPosition())

	var move string
	var ok bool
	switch strat {
	case "first":
		move, ok = picker.PickFirst(nil, legal)
	case "shortlist":
		move, ok = picker.PickShortlist(nil, legal)
	default:
		move, ok = picker.Pick(nil, legal)
	}
	fmt.Println("startpos move:", move, "ok:", ok)
}
