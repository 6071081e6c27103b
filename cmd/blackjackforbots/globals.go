package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/quiet"
	"github.com/lox/blackjackforbots/internal/rules"
)

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `short:"v" help:"Debug logging"`
	Quiet   bool `short:"q" help:"Only log warnings and errors"`
	NoColor bool `env:"NO_COLOR" help:"Disable coloured output"`
}

func (g *Globals) level() log.Level {
	switch {
	case g.Verbose:
		return log.DebugLevel
	case g.Quiet:
		return log.WarnLevel
	default:
		return log.InfoLevel
	}
}

// Logger returns the command logger on stderr.
func (g *Globals) Logger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: g.level()})
}

// StrategyLogger returns a logger writing through the quiet gate, so batch
// runs drop strategy output.
func (g *Globals) StrategyLogger() *log.Logger {
	return log.NewWithOptions(quiet.Default(), log.Options{Level: g.level()})
}

// signalContext is cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// loadCombinations reads a session file, or the default table and rules
// when path is empty.
func loadCombinations(path string) ([]rules.TableRules, error) {
	session := &rules.Session{}
	if path != "" {
		var err error
		if session, err = rules.Load(path); err != nil {
			return nil, err
		}
	}
	return session.Combinations()
}
