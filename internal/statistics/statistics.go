// Package statistics aggregates outcomes across completed games.
package statistics

import (
	"fmt"
	"math"

	"github.com/lox/wordlebot/internal/words"
)

// GameResult is the outcome of a single completed game.
type GameResult struct {
	Secret words.Word
	Won    bool
	Rounds int // winning round when won, guesses issued when lost
	Err    error
}

// Statistics tracks aggregate results over many independent games.
type Statistics struct {
	maxRounds int

	Played    int
	Wins      int
	Failures  int
	Histogram []int // wins per round, index 0 = round 1
	sumRounds int   // rounds across wins only
}

// New creates statistics for games with the given round budget.
func New(maxRounds int) *Statistics {
	return &Statistics{
		maxRounds: maxRounds,
		Histogram: make([]int, maxRounds),
	}
}

// Add incorporates one game result.
func (s *Statistics) Add(r GameResult) {
	s.Played++
	if !r.Won {
		s.Failures++
		return
	}
	s.Wins++
	s.sumRounds += r.Rounds
	if r.Rounds >= 1 && r.Rounds <= s.maxRounds {
		s.Histogram[r.Rounds-1]++
	}
}

// WinRate returns the fraction of games won.
func (s *Statistics) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played)
}

// MeanRounds returns the mean winning round among won games.
func (s *Statistics) MeanRounds() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.sumRounds) / float64(s.Wins)
}

// MaxBucket returns the largest histogram bucket, used to scale bar charts.
func (s *Statistics) MaxBucket() int {
	max := 0
	for _, n := range s.Histogram {
		if n > max {
			max = n
		}
	}
	return max
}

// Validate checks the internal accounting is consistent.
func (s *Statistics) Validate() error {
	if s.Wins+s.Failures != s.Played {
		return fmt.Errorf("wins (%d) + failures (%d) != played (%d)", s.Wins, s.Failures, s.Played)
	}
	total := 0
	for _, n := range s.Histogram {
		total += n
	}
	if total != s.Wins {
		return fmt.Errorf("histogram total (%d) != wins (%d)", total, s.Wins)
	}
	if s.Wins > 0 {
		mean := s.MeanRounds()
		if mean < 1 || mean > float64(s.maxRounds) || math.IsNaN(mean) {
			return fmt.Errorf("mean rounds %.2f outside [1, %d]", mean, s.maxRounds)
		}
	}
	return nil
}
