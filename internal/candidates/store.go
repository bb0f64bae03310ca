// Package candidates tracks the set of words still consistent with every
// piece of feedback seen in the current game.
package candidates

import (
	"errors"
	"fmt"

	"github.com/lox/wordlebot/internal/feedback"
	"github.com/lox/wordlebot/internal/words"
)

// ErrNoCandidates indicates the accumulated feedback ruled out every word.
// With honestly generated feedback this cannot happen, so it signals either a
// mistyped response from a human oracle or a filtering bug. It ends the
// current game but must never abort a batch of independent games.
var ErrNoCandidates = errors.New("no candidates remain")

// Store holds the surviving candidate set for one game. Stores are not safe
// for concurrent use; give each game its own.
type Store struct {
	current []words.Word
}

// NewStore creates a store seeded with the full universe.
func NewStore(universe []words.Word) *Store {
	s := &Store{}
	s.Reset(universe)
	return s
}

// Reset restores the candidate set to the full universe. Called once at the
// start of each game.
func (s *Store) Reset(universe []words.Word) {
	s.current = make([]words.Word, len(universe))
	copy(s.current, universe)
}

// Filter removes every candidate that could not have produced fb for guess.
// The true secret always survives an honest filter: it is consistent with its
// own feedback by definition. An empty result returns ErrNoCandidates and
// leaves the set empty.
func (s *Store) Filter(guess words.Word, fb feedback.Feedback) error {
	kept := s.current[:0]
	for _, c := range s.current {
		if feedback.Consistent(c, guess, fb) {
			kept = append(kept, c)
		}
	}
	s.current = kept
	if len(s.current) == 0 {
		return fmt.Errorf("%w after guess %s (%s)", ErrNoCandidates, guess, fb)
	}
	return nil
}

// Size returns the number of surviving candidates.
func (s *Store) Size() int { return len(s.current) }

// Words returns the surviving candidates. The slice is owned by the store;
// callers must not mutate it.
func (s *Store) Words() []words.Word { return s.current }
