package main

import (
	"fmt"
	"os"

	"github.com/lox/blackjackforbots/internal/console"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/strategy"
)

type PlayCmd struct {
	Config      string `short:"c" type:"existingfile" help:"Session file (.hcl, .json, .yaml)"`
	Index       int    `default:"0" help:"Which table and rules combination to play (see the rules command)"`
	Strategy    string `short:"s" default:"basic" help:"Strategy to play (${strategies})"`
	Seed        int64  `help:"Shoe seed (0 keeps the table deckNumber)"`
	Interactive bool   `short:"i" help:"Make the decisions yourself"`
}

func (c *PlayCmd) Run(g *Globals) error {
	logger := g.Logger()

	combos, err := loadCombinations(c.Config)
	if err != nil {
		return err
	}
	if c.Index < 0 || c.Index >= len(combos) {
		return fmt.Errorf("combination %d out of range (0-%d)", c.Index, len(combos)-1)
	}
	tr := combos[c.Index]
	if c.Seed != 0 {
		tr = tr.WithSeed(c.Seed)
	}

	var s game.Strategy
	if c.Interactive {
		s = console.NewHuman(os.Stdin, os.Stdout)
	} else {
		factory, err := strategy.Factory(c.Strategy, strategy.Options{Logger: g.StrategyLogger(), Seed: tr.DeckNumber})
		if err != nil {
			return err
		}
		s = factory()
	}

	logger.Info("Playing", "strategy", s.Name(), "rules", tr.String(), "seed", tr.DeckNumber)

	table := game.NewTable(tr, s,
		game.WithLogger(logger),
		game.WithSubscriber(console.NewObserver(os.Stdout, g.Verbose || c.Interactive)),
	)
	summary, err := table.PlaySession()
	if err != nil {
		return err
	}

	fmt.Printf("\nNet %+d over %d hands\n", summary.Net(), summary.HandsPlayed)
	for _, cat := range payout.Categories {
		if n := summary.Tally.Count(cat); n > 0 {
			fmt.Printf("  %-22s %d\n", cat.Label(), n)
		}
	}
	return nil
}
