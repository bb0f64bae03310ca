// Package selector chooses the next guess from the surviving candidates.
//
// Two interchangeable strategies are provided. The default "frequency"
// strategy scores candidates by positional letter frequency; "partition"
// ranks guesses by how many distinct feedback patterns they split the
// candidate set into. Both are deterministic: identical inputs always produce
// the identical guess.
package selector

import (
	"errors"
	"fmt"

	"github.com/lox/wordlebot/internal/words"
)

// DefaultOpening is the fixed round-1 guess. Scoring the entire pool comes
// out the same every game, so the opener is precomputed rather than
// recomputed; RAISE covers five high-frequency letters in strong positions.
const DefaultOpening = words.Word("RAISE")

// tryToWinThreshold is the candidate count below which the partition strategy
// stops probing with non-candidates and only guesses words that could win.
const tryToWinThreshold = 10

// ErrNoGuess indicates selection was asked to pick from an empty candidate
// set.
var ErrNoGuess = errors.New("no eligible guess")

// Strategy picks the next guess. cands is the surviving candidate set, pool
// the full allowed-guess dictionary, round the 1-based round index.
type Strategy interface {
	Name() string
	Select(cands, pool []words.Word, round int) (words.Word, error)
}

// New builds a strategy by name, as configured in solver config or flags.
func New(name string, opening words.Word) (Strategy, error) {
	switch name {
	case "", "frequency":
		return NewFrequency(opening), nil
	case "partition":
		return NewPartition(opening), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// shortcut handles the selections every strategy shares: error on an empty
// set, the sole survivor, and the fixed opener.
func shortcut(cands []words.Word, round int, opening words.Word) (words.Word, bool, error) {
	switch {
	case len(cands) == 0:
		return "", true, ErrNoGuess
	case len(cands) == 1:
		// Never burn a round scoring a singleton.
		return cands[0], true, nil
	case round == 1 && opening != "":
		return opening, true, nil
	}
	return "", false, nil
}
