package selector

import (
	"math"

	"github.com/lox/wordlebot/internal/feedback"
	"github.com/lox/wordlebot/internal/words"
)

// patternSpace is the number of distinct feedback patterns for a word.
var patternSpace = int(math.Pow(3, words.Length))

// Partition ranks each guess by how many distinct feedback patterns it
// produces across the candidate set. More partitions means the answer is
// pinned down faster regardless of which candidate is the secret. Guesses are
// drawn from the full pool so high-information splitter words stay available,
// until few enough candidates remain that only a word which could actually
// win is worth playing. Ties break lexicographically.
type Partition struct {
	opening words.Word
}

// NewPartition creates the partition strategy with the given round-1 opener.
func NewPartition(opening words.Word) *Partition {
	return &Partition{opening: opening}
}

func (p *Partition) Name() string { return "partition" }

func (p *Partition) Select(cands, pool []words.Word, round int) (words.Word, error) {
	if w, done, err := shortcut(cands, round, p.opening); done {
		return w, err
	}

	guesses := pool
	if len(cands) <= tryToWinThreshold || len(guesses) == 0 {
		guesses = cands
	}

	best := guesses[0]
	bestParts := Partitions(guesses[0], cands)
	for _, w := range guesses[1:] {
		parts := Partitions(w, cands)
		if parts > bestParts || (parts == bestParts && w < best) {
			best = w
			bestParts = parts
		}
	}
	return best, nil
}

// Partitions counts the distinct feedback patterns guess produces over the
// candidate set.
func Partitions(guess words.Word, cands []words.Word) int {
	seen := make([]bool, patternSpace)
	n := 0
	for _, c := range cands {
		k := feedback.Score(guess, c).Key()
		if !seen[k] {
			seen[k] = true
			n++
		}
	}
	return n
}
