package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/wordlebot/internal/display"
	"github.com/lox/wordlebot/internal/fileutil"
	"github.com/lox/wordlebot/internal/randutil"
	"github.com/lox/wordlebot/internal/simulator"
	"github.com/lox/wordlebot/internal/statistics"
	"github.com/lox/wordlebot/internal/words"
)

// defaultTestSet is a spread of past answers covering the awkward cases:
// repeated letters, rare consonant clusters, and words that survive many
// rounds of filtering.
var defaultTestSet = []string{
	"REBUS", "BOOST", "TRUSS", "SIEGE", "TIGER", "BANAL", "SLUMP",
	"CRANK", "GORGE", "QUERY", "DRINK", "FAVOR", "ABBEY", "TANGY",
	"PANIC", "SOLAR", "SHIRE", "PROXY", "POINT", "ROBOT", "PRICK",
	"WINCE", "CRIMP", "KNOLL", "SUGAR", "WHACK", "MOUNT",
}

type BatchCmd struct {
	Words []string `arg:"" optional:"" help:"Secret words to solve, defaults to the built-in test set"`
	SolverOpts
	All     bool     `help:"Solve every word in the answer list"`
	Sample  int      `help:"Solve a random sample of N answers"`
	Seed    int64    `default:"1" help:"Seed for --sample"`
	Workers int      `help:"Concurrent games"`
	Guess   []string `help:"Guesses to play first, every game"`
	Output  string   `help:"Also write per-word results to a file"`
}

func (c *BatchCmd) Run() error {
	cfg, dict, err := c.load()
	if err != nil {
		return err
	}
	if c.Workers > 0 {
		cfg.Batch.Workers = c.Workers
	}
	preload, err := parseGuesses(c.Guess, dict)
	if err != nil {
		return err
	}

	var targets []words.Word
	switch {
	case c.All:
		targets = dict.Answers()
	case c.Sample > 0:
		targets = sampleAnswers(dict.Answers(), c.Sample, c.Seed)
	case len(c.Words) > 0:
		targets, err = words.ParseAll(c.Words)
	case len(cfg.Batch.TestSet) > 0:
		targets, err = words.ParseAll(cfg.Batch.TestSet)
	default:
		targets, err = words.ParseAll(defaultTestSet)
	}
	if err != nil {
		return err
	}
	for _, t := range targets {
		if !dict.IsAllowed(t) {
			return fmt.Errorf("%s is not in the word list", t)
		}
	}

	level := log.WarnLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "batch"})

	sim := simulator.New(simulator.Config{
		Targets:   targets,
		Universe:  dict.Answers(),
		Pool:      dict.Allowed(),
		Strategy:  cfg.Solver.Strategy,
		Opening:   cfg.OpeningWord(),
		Preload:   preload,
		MaxRounds: cfg.Solver.MaxRounds,
		Workers:   cfg.Batch.Workers,
		Logger:    logger,
		Progress: func(done, total int, elapsed time.Duration) {
			if done%100 == 0 || done == total {
				logger.Info("progress", "done", done, "total", total, "elapsed", elapsed.Round(time.Millisecond))
			}
		},
	})

	results, stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	renderer := display.NewRenderer(os.Stdout, cfg.Solver.NoEmoji)
	renderer.Results(results)
	renderer.Statistics(stats)

	if c.Output != "" {
		if err := writeResults(c.Output, results); err != nil {
			return err
		}
		logger.Info("results written", "path", c.Output)
	}
	return nil
}

// sampleAnswers picks n answers without replacement, deterministically for a
// given seed so runs are reproducible.
func sampleAnswers(answers []words.Word, n int, seed int64) []words.Word {
	if n >= len(answers) {
		return answers
	}
	rng := randutil.New(seed)
	shuffled := make([]words.Word, len(answers))
	copy(shuffled, answers)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// writeResults saves per-word outcomes as "WORD: n" lines, X for a loss.
// The write is atomic so a watcher never sees a half-written file.
func writeResults(path string, results []statistics.GameResult) error {
	var b strings.Builder
	for _, res := range results {
		if res.Won {
			fmt.Fprintf(&b, "%s: %d\n", res.Secret, res.Rounds)
		} else {
			fmt.Fprintf(&b, "%s: X\n", res.Secret)
		}
	}
	return fileutil.WriteFileAtomic(path, []byte(b.String()), 0o644)
}
