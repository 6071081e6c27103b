package main

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lox/blackjackforbots/internal/console"
	"github.com/lox/blackjackforbots/internal/strategy"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version    kong.VersionFlag `help:"Show version"`
	Simulate   SimulateCmd      `cmd:"" help:"Run trials of strategies against tables and rules"`
	Play       PlayCmd          `cmd:"" help:"Play one session and print every round"`
	Strategies StrategiesCmd    `cmd:"" help:"List the built-in strategies"`
	Rules      RulesCmd         `cmd:"" help:"Show the table and rules combinations of a session file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjackforbots"),
		kong.Description("Blackjack strategy simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":    version,
			"strategies": strings.Join(strategy.Names(), ", "),
		},
	)
	if cli.NoColor {
		console.DisableColor()
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
