package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wordlebot/internal/words"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordlebot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "frequency", cfg.Solver.Strategy)
	assert.Equal(t, "RAISE", cfg.Solver.Opening)
	assert.Equal(t, 6, cfg.Solver.MaxRounds)
	require.NotNil(t, cfg.Batch)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
solver {
  strategy   = "partition"
  opening    = "soare"
  max_rounds = 8
  no_emoji   = true
}

batch {
  workers  = 8
  test_set = ["crank", "query"]
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "partition", cfg.Solver.Strategy)
	assert.Equal(t, words.Word("SOARE"), cfg.OpeningWord())
	assert.Equal(t, 8, cfg.Solver.MaxRounds)
	assert.True(t, cfg.Solver.NoEmoji)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, []string{"crank", "query"}, cfg.Batch.TestSet)
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
solver {
  strategy = "partition"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "partition", cfg.Solver.Strategy)
	assert.Equal(t, "RAISE", cfg.Solver.Opening)
	assert.Equal(t, 6, cfg.Solver.MaxRounds)
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestLoadMalformedConfig(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `solver { strategy = `))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*SolverConfig)
		wantErr bool
	}{
		{"defaults", func(*SolverConfig) {}, false},
		{"bad strategy", func(c *SolverConfig) { c.Solver.Strategy = "minimax" }, true},
		{"bad opening", func(c *SolverConfig) { c.Solver.Opening = "TOOLONGWORD" }, true},
		{"zero rounds", func(c *SolverConfig) { c.Solver.MaxRounds = 0 }, true},
		{"zero workers", func(c *SolverConfig) { c.Batch.Workers = 0 }, true},
		{"bad test set word", func(c *SolverConfig) { c.Batch.TestSet = []string{"abc"} }, true},
		{"valid test set", func(c *SolverConfig) { c.Batch.TestSet = []string{"crank"} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOpeningWordFallback(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Solver.Opening = ""
	assert.Equal(t, words.Word("RAISE"), cfg.OpeningWord())
}
