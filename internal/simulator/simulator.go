// Package simulator runs batches of independent games, one per target word,
// with feedback generated locally against the known secret.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/wordlebot/internal/game"
	"github.com/lox/wordlebot/internal/selector"
	"github.com/lox/wordlebot/internal/statistics"
	"github.com/lox/wordlebot/internal/words"
)

// Config holds configuration for running simulations.
type Config struct {
	// Targets are the secrets to play, one independent game each.
	Targets []words.Word
	// Universe seeds each game's candidate set.
	Universe []words.Word
	// Pool is the allowed-guess dictionary.
	Pool []words.Word
	// Strategy names the guess-selection policy.
	Strategy string
	Opening  words.Word
	// Preload guesses are played before the strategy runs, every game.
	Preload   []words.Word
	MaxRounds int
	// Workers bounds concurrent games. Games share nothing, so any degree of
	// parallelism is safe.
	Workers int
	Clock   quartz.Clock
	Logger  *log.Logger
	// Progress, when set, is called after each completed game.
	Progress func(done, total int, elapsed time.Duration)
}

// Simulator runs solver simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration, applying defaults.
func New(config Config) *Simulator {
	if config.MaxRounds == 0 {
		config.MaxRounds = game.DefaultMaxRounds
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays one game per target and returns per-game results in target order
// plus the aggregate statistics. A game lost to a contradiction is recorded
// as a failure with its cause; it never aborts the rest of the batch.
func (s *Simulator) Run(ctx context.Context) ([]statistics.GameResult, *statistics.Statistics, error) {
	results := make([]statistics.GameResult, len(s.config.Targets))
	start := s.config.Clock.Now()

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(s.config.Workers)

	done := make(chan int, len(s.config.Targets))
	for i, target := range s.config.Targets {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.playGame(target)
			done <- i
			return nil
		})
	}

	// Drain completions for progress reporting while workers run.
	progressDone := make(chan struct{})
	go func() {
		defer close(progressDone)
		completed := 0
		for range done {
			completed++
			if s.config.Progress != nil {
				s.config.Progress(completed, len(s.config.Targets), s.config.Clock.Since(start))
			}
			if completed == len(s.config.Targets) {
				return
			}
		}
	}()

	err := grp.Wait()
	close(done)
	<-progressDone
	if err != nil {
		return nil, nil, err
	}

	stats := statistics.New(s.config.MaxRounds)
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return results, stats, nil
}

// playGame runs a single isolated game against target. Each game gets its own
// strategy and controller so no state leaks between parallel games.
func (s *Simulator) playGame(target words.Word) statistics.GameResult {
	strat, err := selector.New(s.config.Strategy, s.config.Opening)
	if err != nil {
		return statistics.GameResult{Secret: target, Err: err}
	}
	ctrl := game.NewController(game.Config{
		MaxRounds: s.config.MaxRounds,
		Strategy:  strat,
		Preload:   s.config.Preload,
		Logger:    s.config.Logger,
	})

	g, err := ctrl.Play(s.config.Universe, s.config.Pool, game.NewSimulated(target))
	if err != nil {
		s.config.Logger.Warn("game failed", "secret", target, "error", err)
	}
	return statistics.GameResult{
		Secret: target,
		Won:    g.Status == game.Won,
		Rounds: g.RoundsPlayed(),
		Err:    err,
	}
}
