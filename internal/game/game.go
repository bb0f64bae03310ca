// Package game drives the round-by-round solving loop for a single game.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/wordlebot/internal/candidates"
	"github.com/lox/wordlebot/internal/feedback"
	"github.com/lox/wordlebot/internal/selector"
	"github.com/lox/wordlebot/internal/words"
)

// DefaultMaxRounds is the standard round budget.
const DefaultMaxRounds = 6

// Status is the lifecycle state of a game.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Round records one guess, the feedback it produced, and how many candidates
// survived the subsequent filter.
type Round struct {
	Guess     words.Word
	Feedback  feedback.Feedback
	Remaining int
}

// Game is the transcript and terminal state of one play-through.
type Game struct {
	Rounds []Round
	Status Status
	// Cause is set when the game was lost to a candidate contradiction
	// rather than an exhausted round budget.
	Cause error
}

// RoundsPlayed returns the number of guesses issued.
func (g *Game) RoundsPlayed() int { return len(g.Rounds) }

// WinningRound returns the 1-based round the game was won on, or 0.
func (g *Game) WinningRound() int {
	if g.Status != Won {
		return 0
	}
	return len(g.Rounds)
}

// Config configures a Controller.
type Config struct {
	MaxRounds int
	Strategy  selector.Strategy
	// Preload is consumed as the opening guesses before the strategy runs.
	Preload []words.Word
	Logger  *log.Logger
	// OnRound, when set, observes each round as it completes. Used by the
	// CLI and TUI for rendering; the controller never presents anything
	// itself.
	OnRound func(r Round)
}

// Controller runs games to completion against an oracle. A controller is
// stateless between games; each Play call works on a fresh candidate store,
// so independent games may run on separate controllers in parallel.
type Controller struct {
	cfg Config
}

// NewController creates a controller, applying defaults for zero fields.
func NewController(cfg Config) *Controller {
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	if cfg.Strategy == nil {
		cfg.Strategy = selector.NewFrequency(selector.DefaultOpening)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Controller{cfg: cfg}
}

// Play runs one game. universe seeds the candidate set (the likely-secret
// dictionary), pool is the full allowed-guess dictionary, and oracle supplies
// feedback for each guess. The returned game is terminal: Won, or Lost either
// by budget or with a Cause. Oracle and contradiction errors are returned
// alongside the transcript; they end this game only.
func (c *Controller) Play(universe, pool []words.Word, oracle Oracle) (*Game, error) {
	store := candidates.NewStore(universe)
	g := &Game{Status: InProgress}
	preload := c.cfg.Preload

	for round := 1; round <= c.cfg.MaxRounds; round++ {
		var guess words.Word
		if len(preload) > 0 {
			guess, preload = preload[0], preload[1:]
		} else {
			var err error
			guess, err = c.cfg.Strategy.Select(store.Words(), pool, round)
			if err != nil {
				g.Status = Lost
				g.Cause = err
				return g, err
			}
		}

		fb, err := oracle.Feedback(guess)
		if err != nil {
			g.Status = Lost
			g.Cause = err
			return g, err
		}

		if fb.AllHit() {
			g.Rounds = append(g.Rounds, Round{Guess: guess, Feedback: fb, Remaining: 1})
			g.Status = Won
			c.observe(g.Rounds[len(g.Rounds)-1])
			return g, nil
		}

		if err := store.Filter(guess, fb); err != nil {
			r := Round{Guess: guess, Feedback: fb}
			g.Rounds = append(g.Rounds, r)
			g.Status = Lost
			g.Cause = err
			c.observe(r)
			return g, err
		}

		r := Round{Guess: guess, Feedback: fb, Remaining: store.Size()}
		g.Rounds = append(g.Rounds, r)
		c.cfg.Logger.Debug("round complete",
			"round", round,
			"guess", guess,
			"feedback", fb.String(),
			"remaining", store.Size())
		c.observe(r)
	}

	g.Status = Lost
	return g, nil
}

func (c *Controller) observe(r Round) {
	if c.cfg.OnRound != nil {
		c.cfg.OnRound(r)
	}
}
