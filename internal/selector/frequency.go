package selector

import (
	"github.com/lox/wordlebot/internal/words"
)

// Frequency scores each candidate by summing, per position, how often its
// letter occupies that position across the current candidate set. A letter
// repeated within a word scores only its first occurrence, since duplicates
// narrow the set less than a fresh letter would. Ties break lexicographically.
type Frequency struct {
	opening words.Word
}

// NewFrequency creates the frequency strategy with the given round-1 opener.
// An empty opener disables the override.
func NewFrequency(opening words.Word) *Frequency {
	return &Frequency{opening: opening}
}

func (f *Frequency) Name() string { return "frequency" }

func (f *Frequency) Select(cands, pool []words.Word, round int) (words.Word, error) {
	if w, done, err := shortcut(cands, round, f.opening); done {
		return w, err
	}

	counts := positionCounts(cands)
	best := cands[0]
	bestScore := wordScore(cands[0], counts)
	for _, w := range cands[1:] {
		s := wordScore(w, counts)
		if s > bestScore || (s == bestScore && w < best) {
			best = w
			bestScore = s
		}
	}
	return best, nil
}

// positionCounts tallies how often each letter appears at each position
// across the candidate set.
func positionCounts(cands []words.Word) [words.Length][26]int {
	var counts [words.Length][26]int
	for _, w := range cands {
		for i := 0; i < words.Length; i++ {
			counts[i][w[i]-'A']++
		}
	}
	return counts
}

func wordScore(w words.Word, counts [words.Length][26]int) int {
	var seen [26]bool
	score := 0
	for i := 0; i < words.Length; i++ {
		c := w[i] - 'A'
		if seen[c] {
			continue
		}
		seen[c] = true
		score += counts[i][c]
	}
	return score
}
