// Package words defines the Word type and the dictionaries the solver draws
// guesses and answers from.
package words

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the fixed word length for the standard game.
const Length = 5

// ErrInvalidWord indicates a word of the wrong length or with characters
// outside A-Z.
var ErrInvalidWord = errors.New("invalid word")

// Word is a Length-letter uppercase word. Construct via Parse so the length
// and alphabet invariants hold everywhere downstream.
type Word string

// Parse normalizes s to uppercase and validates it as a Word.
func Parse(s string) (Word, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != Length {
		return "", fmt.Errorf("%w: %q is %d letters, want %d", ErrInvalidWord, s, len(s), Length)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidWord, s, s[i])
		}
	}
	return Word(s), nil
}

// MustParse is Parse for fixtures and constants; it panics on invalid input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseAll parses a list of raw strings into Words.
func ParseAll(raw []string) ([]Word, error) {
	out := make([]Word, 0, len(raw))
	for _, s := range raw {
		w, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (w Word) String() string { return string(w) }

// Contains reports whether the word has the given letter anywhere.
func (w Word) Contains(c byte) bool {
	return strings.IndexByte(string(w), c) >= 0
}
