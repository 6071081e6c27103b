package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/blackjackforbots/internal/quiet"
	"github.com/lox/blackjackforbots/internal/report"
	"github.com/lox/blackjackforbots/internal/rules"
	"github.com/lox/blackjackforbots/internal/strategy"
	"github.com/lox/blackjackforbots/internal/trial"
	"golang.org/x/term"
)

type SimulateCmd struct {
	Config     string   `short:"c" type:"existingfile" help:"Session file (.hcl, .json, .yaml) with table and rules blocks"`
	Strategy   []string `short:"s" default:"basic" help:"Strategy to analyse, can be repeated (${strategies})"`
	Trials     int      `short:"n" default:"1000" help:"Trials per table, rules and strategy"`
	Workers    int      `default:"0" help:"Trials run at once (0 = one per CPU)"`
	Confidence float64  `default:"0.95" help:"Confidence level of the earnings interval"`

	Summary string `help:"Write the summary CSV to this file"`
	Raw     string `help:"Write per-trial earnings CSV to this file"`
	Force   bool   `help:"Overwrite existing output files"`

	NoProgress bool `help:"Hide the progress bars"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	logger := g.Logger()

	if c.Trials < 1 {
		return fmt.Errorf("%w: --trials must be at least 1", rules.ErrInvalidConfig)
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("%w: --confidence must be between 0 and 1", rules.ErrInvalidConfig)
	}

	files := report.Files{Summary: c.Summary, Raw: c.Raw}
	if !c.Force && files.Exists() {
		return errors.New("output file exists, use --force to overwrite")
	}

	combos, err := loadCombinations(c.Config)
	if err != nil {
		return err
	}

	var bars *progressLine
	if !c.NoProgress && !g.Quiet && term.IsTerminal(int(os.Stderr.Fd())) {
		bars = newProgressLine(os.Stderr)
	}

	var cfgs []trial.Config
	for _, tr := range combos {
		for _, name := range c.Strategy {
			factory, err := strategy.Factory(name, strategy.Options{
				Logger: g.StrategyLogger(),
				Seed:   tr.DeckNumber,
			})
			if err != nil {
				return err
			}
			cfg := trial.Config{
				Rules:      tr,
				Factory:    factory,
				Trials:     c.Trials,
				Workers:    c.Workers,
				Confidence: c.Confidence,
				Logger:     logger,
				Gate:       quiet.Default(),
			}
			if bars != nil {
				cfg.Progress = bars.Track(fmt.Sprintf("%s %s", name, tr.Name))
			}
			cfgs = append(cfgs, cfg)
		}
	}

	logger.Info("Starting simulation", "analyses", len(cfgs), "trials", c.Trials)

	ctx, cancel := signalContext()
	defer cancel()

	results, err := trial.RunAll(ctx, cfgs)
	if err != nil {
		return err
	}

	fmt.Println(report.RenderSummary(results))
	fmt.Println(report.RenderOutcomes(results))

	if err := files.Write(results); err != nil {
		return err
	}
	if c.Summary != "" || c.Raw != "" {
		logger.Info("Wrote results", "summary", c.Summary, "raw", c.Raw)
	}
	return nil
}
