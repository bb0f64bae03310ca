package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/wordlebot/cmd/wordlebot/shared"
	"github.com/lox/wordlebot/internal/candidates"
	"github.com/lox/wordlebot/internal/client"
	"github.com/lox/wordlebot/internal/display"
	"github.com/lox/wordlebot/internal/game"
	"github.com/lox/wordlebot/internal/tui"
)

type PlayCmd struct {
	SolverOpts
	Server  string   `help:"WebSocket game server URL, solve a remote game instead of prompting"`
	Name    string   `default:"wordlebot" help:"Player name sent to the server"`
	TUI     bool     `help:"Interactive board UI instead of plain prompts"`
	LogJSON bool     `help:"Output JSON logs instead of console format"`
	Guess   []string `help:"Guesses to play first, in order"`
}

func (c *PlayCmd) Run() error {
	cfg, dict, err := c.load()
	if err != nil {
		return err
	}
	strategy, err := c.strategy(cfg)
	if err != nil {
		return err
	}
	preload, err := parseGuesses(c.Guess, dict)
	if err != nil {
		return err
	}

	gcfg := game.Config{
		MaxRounds: cfg.Solver.MaxRounds,
		Strategy:  strategy,
		Preload:   preload,
	}
	if c.Debug {
		gcfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.DebugLevel,
			Prefix: "game",
		})
	}

	renderer := display.NewRenderer(os.Stdout, cfg.Solver.NoEmoji)

	if c.TUI {
		g, err := tui.Run(gcfg, dict.Answers(), dict.Allowed())
		if errors.Is(err, tui.ErrInterrupted) {
			return nil
		}
		if g != nil {
			renderer.ShareBlock(g, cfg.Solver.MaxRounds)
		}
		if err != nil && !errors.Is(err, candidates.ErrNoCandidates) {
			return err
		}
		return nil
	}

	var oracle game.Oracle
	if c.Server != "" {
		remote, err := client.Dial(c.Server, c.Name, shared.SetupLogger(c.Debug, c.LogJSON))
		if err != nil {
			return err
		}
		defer remote.Close()
		oracle = remote
	} else {
		oracle = game.NewConsole(os.Stdin, os.Stdout)
	}

	round := 0
	gcfg.OnRound = func(r game.Round) {
		round++
		renderer.Round(round, r)
	}

	g, err := game.NewController(gcfg).Play(dict.Answers(), dict.Allowed(), oracle)
	renderer.Outcome(g, "")
	renderer.ShareBlock(g, cfg.Solver.MaxRounds)
	if err != nil && !errors.Is(err, candidates.ErrNoCandidates) && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
