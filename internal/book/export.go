package book

import (
	"bufio"
	"fmt"
	"io"
)

// WriteAnnotated renders the book as a readable text listing, one block
// per position with its kept candidates and their weights.
func (t *Table) WriteAnnotated(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# opening book: %d positions from %d games\n", len(t.Entries), t.Games)
	fmt.Fprintf(bw, "# min elo %d, min games %d, max plies %d\n", t.MinElo, t.MinGames, t.MaxPlies)
	for _, e := range t.Entries {
		key := e.Key
		if key == "" {
			key = "(start)"
		}
		fmt.Fprintf(bw, "\n%s  games=%d avg=%.3f\n", key, e.Games, e.AvgScore)
		for _, c := range e.Candidates {
			fmt.Fprintf(bw, "  %-7s %3d\n", c.UCI, c.Weight)
		}
	}
	return bw.Flush()
}
