package book

import (
	"math/rand"
	"sort"
	"time"
)

// Picker selects moves from a table. It owns its randomness, so one Picker
// serves one goroutine; the Table behind it is read-only and can be shared
// by any number of pickers.
type Picker struct {
	table *Table
	rng   *rand.Rand
}

// NewPicker wraps a table with a random source. A nil source seeds from
// the clock; tests pass their own to get reproducible draws.
func NewPicker(t *Table, src rand.Source) *Picker {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Picker{table: t, rng: rand.New(src)}
}

// Pick draws a move for the position reached by history, weighted by the
// stored candidate weights. Candidates with zero weight or outside legal
// never come back. The second result is false when nothing survives.
func (p *Picker) Pick(history, legal []string) (string, bool) {
	survivors, total := p.surviving(history, legal)
	if len(survivors) == 0 {
		return "", false
	}
	r := p.rng.Intn(total) + 1
	for _, c := range survivors {
		r -= c.Weight
		if r <= 0 {
			return c.UCI, true
		}
	}
	return survivors[0].UCI, true
}

// PickFirst returns the first surviving candidate in stored order. Same
// position, same book, same answer every time.
func (p *Picker) PickFirst(history, legal []string) (string, bool) {
	survivors, _ := p.surviving(history, legal)
	if len(survivors) == 0 {
		return "", false
	}
	return survivors[0].UCI, true
}

// PickShortlist draws only among candidates within 25 weight points of the
// best one, with the gap to the best compressed so near-equals stay live.
func (p *Picker) PickShortlist(history, legal []string) (string, bool) {
	survivors, _ := p.surviving(history, legal)
	if len(survivors) == 0 {
		return "", false
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].Weight != survivors[j].Weight {
			return survivors[i].Weight > survivors[j].Weight
		}
		return survivors[i].UCI < survivors[j].UCI
	})

	best := survivors[0].Weight
	cut := len(survivors)
	for i, c := range survivors {
		if c.Weight < best-25 {
			cut = i
			break
		}
	}
	short := survivors[:cut]
	if len(short) == 1 {
		return short[0].UCI, true
	}

	floor := best - 30
	total := 0
	weights := make([]int, len(short))
	for i, c := range short {
		w := c.Weight - floor
		if w < 1 {
			w = 1
		}
		weights[i] = w
		total += w
	}

	r := p.rng.Intn(total) + 1
	for i, c := range short {
		r -= weights[i]
		if r <= 0 {
			return c.UCI, true
		}
	}
	return short[0].UCI, true
}

func (p *Picker) surviving(history, legal []string) ([]Candidate, int) {
	e, ok := p.table.Find(history)
	if !ok {
		return nil, 0
	}
	legalSet := make(map[string]bool, len(legal))
	for _, uci := range legal {
		legalSet[uci] = true
	}
	out := make([]Candidate, 0, len(e.Candidates))
	total := 0
	for _, c := range e.Candidates {
		if c.Weight <= 0 || !legalSet[c.UCI] {
			continue
		}
		out = append(out, c)
		total += c.Weight
	}
	return out, total
}
