package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wordlebot/internal/feedback"
	"github.com/lox/wordlebot/internal/game"
	"github.com/lox/wordlebot/internal/statistics"
	"github.com/lox/wordlebot/internal/words"
)

func wonGame(rounds int) *game.Game {
	g := &game.Game{Status: game.Won}
	for i := 0; i < rounds; i++ {
		r := game.Round{Guess: words.MustParse("CRANK"), Remaining: rounds - i}
		if i == rounds-1 {
			r.Feedback = feedback.Score(r.Guess, r.Guess)
			r.Remaining = 1
		}
		g.Rounds = append(g.Rounds, r)
	}
	return g
}

func TestTilesPlainForm(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	r := NewRenderer(&out, true)
	fb := feedback.Score(words.MustParse("RAISE"), words.MustParse("SOLAR"))
	assert.Equal(t, fb.String(), r.Tiles(fb))
}

func TestRound(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	r := NewRenderer(&out, true)
	fb := feedback.Score(words.MustParse("RAISE"), words.MustParse("SOLAR"))
	r.Round(1, game.Round{Guess: words.MustParse("RAISE"), Feedback: fb, Remaining: 3})

	assert.Contains(t, out.String(), "Round 1, guess: RAISE")
	assert.Contains(t, out.String(), "(3 remaining)")
}

func TestShareBlockWin(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	r := NewRenderer(&out, true)
	r.ShareBlock(wonGame(3), 6)

	assert.Contains(t, out.String(), "Wordle bot 3/6")
	assert.Equal(t, 2, strings.Count(out.String(), "bbbbb"), "one tile row per round")
	assert.Equal(t, 1, strings.Count(out.String(), "ggggg"))
}

func TestShareBlockLoss(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	r := NewRenderer(&out, true)
	g := &game.Game{Status: game.Lost, Rounds: wonGame(6).Rounds}
	r.ShareBlock(g, 6)

	assert.Contains(t, out.String(), "Wordle bot X/6")
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	r := NewRenderer(&out, true)
	r.Outcome(wonGame(4), "")
	assert.Contains(t, out.String(), "Solved in 4!")

	out.Reset()
	r = NewRenderer(&out, true)
	r.Outcome(&game.Game{Status: game.Lost}, words.MustParse("KNOLL"))
	assert.Contains(t, out.String(), "KNOLL")
}

func TestStatisticsHistogramScaled(t *testing.T) {
	t.Parallel()

	stats := statistics.New(6)
	for i := 0; i < 40; i++ {
		stats.Add(statistics.GameResult{Secret: "CRANK", Won: true, Rounds: 3})
	}
	stats.Add(statistics.GameResult{Secret: "KNOLL", Won: true, Rounds: 5})
	require.NoError(t, stats.Validate())

	var out strings.Builder
	r := NewRenderer(&out, true)
	r.Statistics(stats)

	lines := strings.Split(out.String(), "\n")
	var bucket3, bucket5 string
	for _, l := range lines {
		if strings.HasPrefix(l, "3: ") {
			bucket3 = l
		}
		if strings.HasPrefix(l, "5: ") {
			bucket5 = l
		}
	}
	require.NotEmpty(t, bucket3)
	require.NotEmpty(t, bucket5)

	// The dominant bucket is capped at ten bars; the single win still shows
	// at least one.
	assert.Equal(t, 10, strings.Count(bucket3, "X"))
	assert.Equal(t, 1, strings.Count(bucket5, "X"))
	assert.Contains(t, out.String(), "Played: 41")
}

func TestResults(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	r := NewRenderer(&out, true)
	r.Results([]statistics.GameResult{
		{Secret: "CRANK", Won: true, Rounds: 3},
		{Secret: "KNOLL", Won: false, Rounds: 6},
	})

	assert.Contains(t, out.String(), "CRANK: 3")
	assert.Contains(t, out.String(), "KNOLL: X")
}
