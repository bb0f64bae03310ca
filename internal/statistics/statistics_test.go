package statistics

import (
	"testing"
)

func TestStatisticsEmpty(t *testing.T) {
	stats := New(6)

	if stats.WinRate() != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate())
	}
	if stats.MeanRounds() != 0 {
		t.Errorf("Expected mean rounds of 0 for empty stats, got %f", stats.MeanRounds())
	}
	if stats.MaxBucket() != 0 {
		t.Errorf("Expected max bucket of 0 for empty stats, got %d", stats.MaxBucket())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Empty stats should validate: %v", err)
	}
}

func TestStatisticsAdd(t *testing.T) {
	stats := New(6)

	stats.Add(GameResult{Secret: "CRANK", Won: true, Rounds: 3})
	stats.Add(GameResult{Secret: "QUERY", Won: true, Rounds: 3})
	stats.Add(GameResult{Secret: "ABBEY", Won: true, Rounds: 5})
	stats.Add(GameResult{Secret: "KNOLL", Won: false, Rounds: 6})

	if stats.Played != 4 {
		t.Errorf("Expected 4 played, got %d", stats.Played)
	}
	if stats.Wins != 3 {
		t.Errorf("Expected 3 wins, got %d", stats.Wins)
	}
	if stats.Failures != 1 {
		t.Errorf("Expected 1 failure, got %d", stats.Failures)
	}
	if stats.WinRate() != 0.75 {
		t.Errorf("Expected win rate 0.75, got %f", stats.WinRate())
	}
	if got := stats.MeanRounds(); got != (3.0+3.0+5.0)/3.0 {
		t.Errorf("Expected mean rounds %.4f, got %.4f", (3.0+3.0+5.0)/3.0, got)
	}
	if stats.Histogram[2] != 2 {
		t.Errorf("Expected 2 wins in round 3, got %d", stats.Histogram[2])
	}
	if stats.Histogram[4] != 1 {
		t.Errorf("Expected 1 win in round 5, got %d", stats.Histogram[4])
	}
	if stats.MaxBucket() != 2 {
		t.Errorf("Expected max bucket 2, got %d", stats.MaxBucket())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Stats should validate: %v", err)
	}
}

func TestStatisticsLossesOutsideHistogram(t *testing.T) {
	stats := New(6)

	stats.Add(GameResult{Secret: "SIEGE", Won: false, Rounds: 6})
	stats.Add(GameResult{Secret: "TIGER", Won: false, Rounds: 2})

	total := 0
	for _, n := range stats.Histogram {
		total += n
	}
	if total != 0 {
		t.Errorf("Losses must not land in the histogram, got total %d", total)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Stats should validate: %v", err)
	}
}

func TestStatisticsValidateCatchesDrift(t *testing.T) {
	stats := New(6)
	stats.Add(GameResult{Secret: "CRANK", Won: true, Rounds: 2})

	// Tampering with a bucket breaks the wins/histogram ledger.
	stats.Histogram[0]++
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error after histogram drift")
	}

	stats = New(6)
	stats.Add(GameResult{Secret: "CRANK", Won: true, Rounds: 2})
	stats.Failures++
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error after failure drift")
	}
}
