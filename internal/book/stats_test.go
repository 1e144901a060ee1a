package book

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		stat MoveStat
		want float64
	}{
		{name: "unplayed", stat: MoveStat{}, want: 0.5},
		{name: "all wins", stat: MoveStat{Wins: 10, Count: 10}, want: 1.0},
		{name: "all losses", stat: MoveStat{Losses: 10, Count: 10}, want: 0.0},
		{name: "all draws", stat: MoveStat{Draws: 4, Count: 4}, want: 0.5},
		{name: "mixed", stat: MoveStat{Wins: 25, Draws: 10, Losses: 15, Count: 50}, want: 0.6},
	}

	for _, tt := range tests {
		if got := tt.stat.Score(); got != tt.want {
			t.Fatalf("%s: got %v want %v", tt.name, got, tt.want)
		}
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name string
		stat MoveStat
		want int
	}{
		{name: "unplayed", stat: MoveStat{}, want: 25},
		{name: "ten wins", stat: MoveStat{Wins: 10, Count: 10}, want: 73},
		{name: "fifty mixed", stat: MoveStat{Wins: 25, Draws: 10, Losses: 15, Count: 50}, want: 69},
		{name: "four draws", stat: MoveStat{Draws: 4, Count: 4}, want: 41},
	}

	for _, tt := range tests {
		if got := tt.stat.Weight(); got != tt.want {
			t.Fatalf("%s: got %d want %d", tt.name, got, tt.want)
		}
	}
}

func TestWeightBounds(t *testing.T) {
	for count := 0; count <= 5000; count += 7 {
		stat := MoveStat{Wins: count, Count: count}
		w := stat.Weight()
		if w < 0 || w > 100 {
			t.Fatalf("count %d: weight %d out of range", count, w)
		}
	}
}

func TestPopularityMonotonic(t *testing.T) {
	prev := popularity(0)
	if prev != 0 {
		t.Fatalf("popularity(0) = %d, want 0", prev)
	}
	for count := 1; count <= 2000; count++ {
		cur := popularity(count)
		if cur < prev {
			t.Fatalf("popularity(%d) = %d, below popularity(%d) = %d", count, cur, count-1, prev)
		}
		prev = cur
	}
}

func TestPopularitySaturates(t *testing.T) {
	if got := popularity(1000); got != 100 {
		t.Fatalf("popularity(1000) = %d, want 100", got)
	}
}
