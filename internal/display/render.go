// Package display renders rounds, share blocks and run statistics for the
// terminal. The core never presents anything itself; everything here consumes
// what the controller and simulator emit.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lox/wordlebot/internal/feedback"
	"github.com/lox/wordlebot/internal/game"
	"github.com/lox/wordlebot/internal/statistics"
	"github.com/lox/wordlebot/internal/words"
)

// barMaxLength caps histogram bars; larger buckets are scaled down.
const barMaxLength = 10

// Renderer writes human-facing output. With emoji disabled (or a terminal
// that can't show colour) tiles degrade to the b/y/g letter codes.
type Renderer struct {
	out   io.Writer
	emoji bool
}

// NewRenderer creates a renderer. noEmoji forces the plain-letter forms;
// otherwise emoji tiles are used when the terminal supports colour at all.
func NewRenderer(out io.Writer, noEmoji bool) *Renderer {
	emoji := !noEmoji && termenv.ColorProfile() != termenv.Ascii
	return &Renderer{out: out, emoji: emoji}
}

// Tiles renders a feedback pattern.
func (r *Renderer) Tiles(fb feedback.Feedback) string {
	if r.emoji {
		return fb.Tiles()
	}
	return fb.String()
}

// Round prints one completed round.
func (r *Renderer) Round(round int, rd game.Round) {
	fmt.Fprintf(r.out, "Round %d, guess: %s %s", round, rd.Guess, r.Tiles(rd.Feedback))
	if rd.Remaining > 0 {
		fmt.Fprintf(r.out, "  (%d remaining)", rd.Remaining)
	}
	fmt.Fprintln(r.out)
}

// ShareBlock prints the familiar post-game summary: "Wordle bot 3/6" and one
// tile row per guess, or X/6 for a loss.
func (r *Renderer) ShareBlock(g *game.Game, maxRounds int) {
	score := "X"
	if g.Status == game.Won {
		score = fmt.Sprintf("%d", g.WinningRound())
	}
	fmt.Fprintf(r.out, "\nWordle bot %s/%d\n\n", score, maxRounds)
	for _, rd := range g.Rounds {
		fmt.Fprintln(r.out, r.Tiles(rd.Feedback))
	}
}

// Outcome prints the terminal state of a game.
func (r *Renderer) Outcome(g *game.Game, secret words.Word) {
	switch {
	case g.Status == game.Won:
		fmt.Fprintln(r.out, SuccessStyle.Render(fmt.Sprintf("Solved in %d!", g.WinningRound())))
	case g.Cause != nil:
		fmt.Fprintln(r.out, ErrorStyle.Render(fmt.Sprintf("Gave up: %v", g.Cause)))
	case secret != "":
		fmt.Fprintln(r.out, ErrorStyle.Render(fmt.Sprintf("Out of tries, the answer was %s", secret)))
	default:
		fmt.Fprintln(r.out, ErrorStyle.Render("Out of tries, we lost!"))
	}
}

// Statistics prints the aggregate summary and round-distribution histogram
// for a batch run.
func (r *Renderer) Statistics(stats *statistics.Statistics) {
	fmt.Fprintln(r.out, HeaderStyle.Render("\nSTATISTICS"))
	fmt.Fprintf(r.out, "Played: %d, Win %%: %.0f%%, Won: %d, Failed: %d, Mean: %.1f\n",
		stats.Played, stats.WinRate()*100, stats.Wins, stats.Failures, stats.MeanRounds())

	maxBucket := stats.MaxBucket()
	scaled := maxBucket > barMaxLength
	barChar := "X"
	if r.emoji {
		barChar = "🟩"
	}
	for i, n := range stats.Histogram {
		length := n
		if scaled {
			length = n * barMaxLength / maxBucket
			if length == 0 && n > 0 {
				length = 1
			}
		}
		fmt.Fprintf(r.out, "%d: %d %s\n", i+1, n, strings.Repeat(barChar, length))
	}
}

// Results prints each game's per-word outcome line.
func (r *Renderer) Results(results []statistics.GameResult) {
	for _, res := range results {
		if res.Won {
			fmt.Fprintf(r.out, "%s: %d\n", res.Secret, res.Rounds)
		} else {
			fmt.Fprintf(r.out, "%s: X\n", res.Secret)
		}
	}
}
