package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Solve a puzzle interactively, feedback comes from you"`
	Solve   SolveCmd         `cmd:"" help:"Solve for a known secret word"`
	Batch   BatchCmd         `cmd:"" help:"Run the solver over a batch of secret words"`
	Rank    RankCmd          `cmd:"" help:"Rank opening guesses by how well they split the answer list"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wordlebot"),
		kong.Description("Automated Wordle solver"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
