// Package strategy holds the built-in player strategies and a registry to
// look them up by name.
package strategy

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/game"
)

// Options are passed to every strategy constructor.
type Options struct {
	Logger *log.Logger
	// Seed drives strategies that make random choices.
	Seed int64
}

func (o Options) logger(prefix string) *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger.WithPrefix(prefix)
}

// Constructor builds a strategy from options.
type Constructor func(opts Options) game.Strategy

type entry struct {
	build       Constructor
	description string
}

var registry = map[string]entry{
	"basic":      {func(o Options) game.Strategy { return NewBasic(o) }, "Basic strategy chart with flat minimum bets"},
	"dealer":     {func(o Options) game.Strategy { return NewDealer(o) }, "Plays like the dealer: hit below 17"},
	"stand":      {func(o Options) game.Strategy { return NewStand(o) }, "Never draws"},
	"random":     {func(o Options) game.Strategy { return NewRandom(o) }, "Random legal decisions and bets"},
	"martingale": {func(o Options) game.Strategy { return NewMartingale(o) }, "Basic strategy, doubling the bet after each loss"},
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns a one-line description of a registered strategy.
func Describe(name string) string {
	return registry[name].description
}

// Factory returns a factory building fresh instances of the named strategy.
func Factory(name string, opts Options) (game.StrategyFactory, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return func() game.Strategy { return e.build(opts) }, nil
}

// flatBet bets the table minimum.
func flatBet(info game.GameInfo) int {
	return min(info.MinBet, info.Bankroll)
}
