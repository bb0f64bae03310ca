package game

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lox/wordlebot/internal/feedback"
	"github.com/lox/wordlebot/internal/words"
)

// Oracle supplies the feedback for a guess. In simulation the oracle knows
// the secret and scores locally; in interactive play it relays the guess to a
// human or a remote game and parses the response.
type Oracle interface {
	Feedback(guess words.Word) (feedback.Feedback, error)
}

// Simulated scores guesses against a known secret.
type Simulated struct {
	secret words.Word
}

// NewSimulated creates an oracle for the given secret.
func NewSimulated(secret words.Word) *Simulated {
	return &Simulated{secret: secret}
}

func (o *Simulated) Feedback(guess words.Word) (feedback.Feedback, error) {
	return feedback.Score(guess, o.secret), nil
}

// Secret exposes the answer, for reporting after a lost game.
func (o *Simulated) Secret() words.Word { return o.secret }

// Console prompts a human for each guess's feedback on stdin/stdout.
// Malformed responses are reported and re-prompted rather than ending the
// game.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a console oracle reading responses from in.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (o *Console) Feedback(guess words.Word) (feedback.Feedback, error) {
	for {
		fmt.Fprintf(o.out, "Guess: %s\nWas it right? (b/y/g per letter) ", guess)
		if !o.in.Scan() {
			if err := o.in.Err(); err != nil {
				return feedback.Feedback{}, err
			}
			return feedback.Feedback{}, io.EOF
		}
		fb, err := feedback.Parse(o.in.Text())
		if err != nil {
			fmt.Fprintf(o.out, "Unable to parse response, try again! (%v)\n", err)
			continue
		}
		return fb, nil
	}
}
