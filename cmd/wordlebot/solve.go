package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/wordlebot/internal/candidates"
	"github.com/lox/wordlebot/internal/display"
	"github.com/lox/wordlebot/internal/game"
	"github.com/lox/wordlebot/internal/words"
)

type SolveCmd struct {
	SolverOpts
	Word  string   `arg:"" help:"Secret word to solve for"`
	Guess []string `help:"Guesses to play first, in order"`
}

func (c *SolveCmd) Run() error {
	cfg, dict, err := c.load()
	if err != nil {
		return err
	}
	strategy, err := c.strategy(cfg)
	if err != nil {
		return err
	}

	secret, err := words.Parse(c.Word)
	if err != nil {
		return err
	}
	if !dict.IsAllowed(secret) {
		return fmt.Errorf("%s is not in the word list", secret)
	}
	preload, err := parseGuesses(c.Guess, dict)
	if err != nil {
		return err
	}

	renderer := display.NewRenderer(os.Stdout, cfg.Solver.NoEmoji)

	round := 0
	gcfg := game.Config{
		MaxRounds: cfg.Solver.MaxRounds,
		Strategy:  strategy,
		Preload:   preload,
		OnRound: func(r game.Round) {
			round++
			renderer.Round(round, r)
		},
	}
	if c.Debug {
		gcfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.DebugLevel,
			Prefix: "game",
		})
	}

	g, err := game.NewController(gcfg).Play(dict.Answers(), dict.Allowed(), game.NewSimulated(secret))
	renderer.Outcome(g, secret)
	renderer.ShareBlock(g, cfg.Solver.MaxRounds)
	if err != nil && !errors.Is(err, candidates.ErrNoCandidates) {
		return err
	}
	return nil
}
