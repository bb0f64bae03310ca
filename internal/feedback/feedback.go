// Package feedback computes and parses per-letter verdicts for a guess
// scored against a secret.
package feedback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/wordlebot/internal/words"
)

// Verdict is the per-letter outcome of a guess.
type Verdict uint8

const (
	// Miss means the letter does not appear in the secret, after accounting
	// for occurrences consumed by hits and presents elsewhere.
	Miss Verdict = iota
	// Present means the letter appears in the secret at another position.
	Present
	// Hit means the letter matches the secret at this position.
	Hit
)

// Response codes used when feedback is exchanged as text. These match the
// colours of the game tiles: black, yellow, green.
const (
	codeMiss    = 'b'
	codePresent = 'y'
	codeHit     = 'g'

	tileMiss    = "⬛"
	tilePresent = "🟨"
	tileHit     = "🟩"
)

// ErrInvalidFeedback indicates a feedback string of the wrong length or with
// unknown symbols.
var ErrInvalidFeedback = errors.New("invalid feedback")

// Feedback is the ordered verdict for each letter of a guess.
type Feedback [words.Length]Verdict

// Score computes the feedback for guess against secret using the standard
// two-pass algorithm. The first pass resolves hits and counts the remaining
// secret letters; the second pass awards presents only while unconsumed
// occurrences remain. Resolving hits first means a letter the secret holds
// once is never credited twice, however often it appears in the guess.
func Score(guess, secret words.Word) Feedback {
	var fb Feedback
	var counts [26]int

	for i := 0; i < words.Length; i++ {
		if guess[i] == secret[i] {
			fb[i] = Hit
		} else {
			counts[secret[i]-'A']++
		}
	}
	for i := 0; i < words.Length; i++ {
		if fb[i] == Hit {
			continue
		}
		c := int(guess[i] - 'A')
		if counts[c] > 0 {
			fb[i] = Present
			counts[c]--
		} else {
			fb[i] = Miss
		}
	}
	return fb
}

// Consistent reports whether candidate could still be the secret given that
// guess produced fb. It scores the guess against the candidate with the same
// two-pass semantics as Score, so simulated play and filtering can never
// diverge.
func Consistent(candidate, guess words.Word, fb Feedback) bool {
	return Score(guess, candidate) == fb
}

// AllHit reports whether every verdict is a Hit, i.e. the guess solved the
// game.
func (f Feedback) AllHit() bool {
	for _, v := range f {
		if v != Hit {
			return false
		}
	}
	return true
}

// Key encodes the feedback as a base-3 integer in [0, 3^Length). Two guesses
// partition the candidate set identically iff their keys match, which is what
// the partition-counting strategy relies on.
func (f Feedback) Key() int {
	k := 0
	for _, v := range f {
		k = k*3 + int(v)
	}
	return k
}

// String renders the feedback as a Length-character b/y/g code.
func (f Feedback) String() string {
	var b strings.Builder
	for _, v := range f {
		switch v {
		case Hit:
			b.WriteByte(codeHit)
		case Present:
			b.WriteByte(codePresent)
		default:
			b.WriteByte(codeMiss)
		}
	}
	return b.String()
}

// Tiles renders the feedback as coloured emoji tiles.
func (f Feedback) Tiles() string {
	var b strings.Builder
	for _, v := range f {
		switch v {
		case Hit:
			b.WriteString(tileHit)
		case Present:
			b.WriteString(tilePresent)
		default:
			b.WriteString(tileMiss)
		}
	}
	return b.String()
}

// Parse decodes a feedback string supplied by an external oracle. It accepts
// the b/y/g letter codes in either case and the emoji tile forms.
func Parse(s string) (Feedback, error) {
	var fb Feedback
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != words.Length {
		return fb, fmt.Errorf("%w: %q is %d symbols, want %d", ErrInvalidFeedback, s, len(runes), words.Length)
	}
	for i, r := range runes {
		switch r {
		case codeMiss, 'B', '⬛', '⬜':
			fb[i] = Miss
		case codePresent, 'Y', '🟨':
			fb[i] = Present
		case codeHit, 'G', '🟩':
			fb[i] = Hit
		default:
			return Feedback{}, fmt.Errorf("%w: unknown symbol %q in %q", ErrInvalidFeedback, r, s)
		}
	}
	return fb, nil
}
