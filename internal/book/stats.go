package book

import "math"

// MoveStat accumulates outcomes for one move in one position. Wins and
// losses are counted from the mover's side, whichever color that is.
type MoveStat struct {
	UCI    string
	Wins   int
	Draws  int
	Losses int
	Count  int
}

// Score is the mover's expected result in [0, 1]. An unplayed move scores
// a neutral 0.5.
func (s *MoveStat) Score() float64 {
	if s.Count == 0 {
		return 0.5
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(s.Count)
}

// Weight folds popularity and performance into a single [0, 100] value.
func (s *MoveStat) Weight() int {
	perf := int(s.Score() * 100)
	return clampWeight((popularity(s.Count) + perf) / 2)
}

// popularity grows logarithmically with the sample size and saturates
// at the weight ceiling.
func popularity(count int) int {
	return clampWeight(int(20 * math.Log(float64(count)+1)))
}

func clampWeight(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
