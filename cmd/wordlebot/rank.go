package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/wordlebot/internal/selector"
	"github.com/lox/wordlebot/internal/words"
)

type RankCmd struct {
	SolverOpts
	Top int `default:"10" help:"Number of openers to show"`
}

type openerScore struct {
	word       words.Word
	partitions int
}

// Run scores every allowed guess by how many distinct feedback patterns it
// produces over the answer list, the same measure the partition strategy
// optimises within a game.
func (c *RankCmd) Run() error {
	_, dict, err := c.load()
	if err != nil {
		return err
	}

	level := log.WarnLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "rank"})

	answers := dict.Answers()
	pool := dict.Allowed()
	logger.Debug("ranking openers", "pool", len(pool), "answers", len(answers))

	scores := make([]openerScore, 0, len(pool))
	for _, w := range pool {
		scores = append(scores, openerScore{word: w, partitions: selector.Partitions(w, answers)})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].partitions != scores[j].partitions {
			return scores[i].partitions > scores[j].partitions
		}
		return scores[i].word < scores[j].word
	})

	top := c.Top
	if top > len(scores) {
		top = len(scores)
	}
	for i, s := range scores[:top] {
		avg := float64(len(answers)) / float64(s.partitions)
		fmt.Printf("%2d. %s  %d patterns, %.1f answers per pattern\n", i+1, s.word, s.partitions, avg)
	}
	return nil
}
