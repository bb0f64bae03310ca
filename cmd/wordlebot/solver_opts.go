package main

import (
	"fmt"

	"github.com/lox/wordlebot/internal/config"
	"github.com/lox/wordlebot/internal/selector"
	"github.com/lox/wordlebot/internal/words"
)

// SolverOpts are the flags shared by every command that runs the solver.
// Flags override the config file, which overrides the built-in defaults.
type SolverOpts struct {
	Config      string `default:"wordlebot.hcl" help:"Path to HCL config file"`
	Strategy    string `help:"Guess selection strategy (frequency, partition)"`
	Opening     string `help:"Fixed opening guess"`
	Rounds      int    `help:"Guess budget per game"`
	AnswersFile string `help:"File of likely answers, one per line"`
	AllowedFile string `help:"File of additional allowed guesses, one per line"`
	NoEmoji     bool   `help:"Plain ASCII output"`
	Debug       bool   `short:"d" help:"Enable debug logging"`
}

func (o *SolverOpts) load() (*config.SolverConfig, *words.Dictionary, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return nil, nil, err
	}

	if o.Strategy != "" {
		cfg.Solver.Strategy = o.Strategy
	}
	if o.Opening != "" {
		cfg.Solver.Opening = o.Opening
	}
	if o.Rounds > 0 {
		cfg.Solver.MaxRounds = o.Rounds
	}
	if o.AnswersFile != "" {
		cfg.Solver.AnswersFile = o.AnswersFile
	}
	if o.AllowedFile != "" {
		cfg.Solver.AllowedFile = o.AllowedFile
	}
	if o.NoEmoji {
		cfg.Solver.NoEmoji = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var dict *words.Dictionary
	if cfg.Solver.AnswersFile != "" || cfg.Solver.AllowedFile != "" {
		dict, err = words.Load(cfg.Solver.AnswersFile, cfg.Solver.AllowedFile)
	} else {
		dict, err = words.Embedded()
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, dict, nil
}

func (o *SolverOpts) strategy(cfg *config.SolverConfig) (selector.Strategy, error) {
	return selector.New(cfg.Solver.Strategy, cfg.OpeningWord())
}

// parseGuesses parses preload guesses and rejects any word the dictionary
// would not accept as a guess.
func parseGuesses(raw []string, dict *words.Dictionary) ([]words.Word, error) {
	ws, err := words.ParseAll(raw)
	if err != nil {
		return nil, err
	}
	for _, w := range ws {
		if !dict.IsAllowed(w) {
			return nil, fmt.Errorf("%s is not in the word list", w)
		}
	}
	return ws, nil
}
