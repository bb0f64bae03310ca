// Package config loads solver configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/wordlebot/internal/words"
)

// SolverConfig represents the complete solver configuration.
type SolverConfig struct {
	Solver SolverSettings `hcl:"solver,block"`
	Batch  *BatchSettings `hcl:"batch,block"`
}

// SolverSettings contains the core solving policy.
type SolverSettings struct {
	Strategy    string `hcl:"strategy,optional"`
	Opening     string `hcl:"opening,optional"`
	MaxRounds   int    `hcl:"max_rounds,optional"`
	AnswersFile string `hcl:"answers_file,optional"`
	AllowedFile string `hcl:"allowed_file,optional"`
	NoEmoji     bool   `hcl:"no_emoji,optional"`
}

// BatchSettings configures batch simulation runs.
type BatchSettings struct {
	Workers int      `hcl:"workers,optional"`
	TestSet []string `hcl:"test_set,optional"`
}

// DefaultConfig returns the default solver configuration.
func DefaultConfig() *SolverConfig {
	return &SolverConfig{
		Solver: SolverSettings{
			Strategy:  "frequency",
			Opening:   "RAISE",
			MaxRounds: 6,
		},
		Batch: &BatchSettings{
			Workers: 4,
		},
	}
}

// Load loads solver configuration from an HCL file. A missing file yields
// the defaults.
func Load(filename string) (*SolverConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config SolverConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Solver.Strategy == "" {
		config.Solver.Strategy = "frequency"
	}
	if config.Solver.Opening == "" {
		config.Solver.Opening = "RAISE"
	}
	if config.Solver.MaxRounds == 0 {
		config.Solver.MaxRounds = 6
	}
	if config.Batch == nil {
		config.Batch = &BatchSettings{}
	}
	if config.Batch.Workers == 0 {
		config.Batch.Workers = 4
	}

	return &config, nil
}

// Validate validates the solver configuration.
func (c *SolverConfig) Validate() error {
	switch c.Solver.Strategy {
	case "frequency", "partition":
	default:
		return fmt.Errorf("invalid strategy %q", c.Solver.Strategy)
	}
	if _, err := words.Parse(c.Solver.Opening); err != nil {
		return fmt.Errorf("invalid opening: %w", err)
	}
	if c.Solver.MaxRounds < 1 {
		return fmt.Errorf("max_rounds must be positive, got %d", c.Solver.MaxRounds)
	}
	if c.Batch != nil {
		if c.Batch.Workers < 1 {
			return fmt.Errorf("batch workers must be positive, got %d", c.Batch.Workers)
		}
		for _, w := range c.Batch.TestSet {
			if _, err := words.Parse(w); err != nil {
				return fmt.Errorf("invalid test set word: %w", err)
			}
		}
	}
	return nil
}

// OpeningWord returns the configured opening as a parsed Word, falling back
// to the default when unset or invalid.
func (c *SolverConfig) OpeningWord() words.Word {
	w, err := words.Parse(c.Solver.Opening)
	if err != nil {
		return words.Word("RAISE")
	}
	return w
}
