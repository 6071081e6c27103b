// Package trial runs many independent sessions of a strategy and
// aggregates their earnings and hand outcomes.
package trial

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/quiet"
	"github.com/lox/blackjackforbots/internal/rules"
	"github.com/lox/blackjackforbots/internal/runid"
	"github.com/lox/blackjackforbots/internal/statistics"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrStrategyPanic wraps a panic recovered from a strategy.
	ErrStrategyPanic = errors.New("strategy panicked")
	// ErrNoStrategy is returned when a factory produces nil.
	ErrNoStrategy = errors.New("strategy factory returned nil")
)

// Config holds configuration for one analysis.
type Config struct {
	Rules   rules.TableRules
	Factory game.StrategyFactory
	Trials  int
	// Workers bounds the trials run at once; 0 uses GOMAXPROCS.
	Workers int
	// Confidence is the interval level; 0 uses statistics.DefaultConfidence.
	Confidence float64

	Logger *log.Logger
	Clock  quartz.Clock
	// Gate, when set, is held for the whole batch.
	Gate *quiet.Gate
	// Progress is called after each finished trial. Calls are serialised.
	Progress func(done, total int)
	// TableOptions adds options to the table of one trial.
	TableOptions func(index int, seed int64) []game.Option
}

// TrialError identifies the trial that aborted a batch.
type TrialError struct {
	Index    int
	Seed     int64
	Strategy string
	Err      error
}

func (e *TrialError) Error() string {
	return fmt.Sprintf("trial %d (seed %d, strategy %q): %v", e.Index, e.Seed, e.Strategy, e.Err)
}

func (e *TrialError) Unwrap() error { return e.Err }

// Result is the record of one finished trial.
type Result struct {
	Index       int
	Seed        int64
	Strategy    string
	Net         int
	Rounds      int
	HandsPlayed int
	Reason      game.EndReason
	Tally       payout.Tally
}

// AnalysisResult is the merged outcome of every trial of one analysis.
// It is not modified after Run returns.
type AnalysisResult struct {
	RunID    string
	Strategy string
	Rules    rules.TableRules

	Trials      []Result
	Tally       payout.Tally
	HandsPlayed int
	Summary     statistics.Summary
	Elapsed     time.Duration

	earnings statistics.Sample
}

// Earnings returns the net earnings of each trial, in trial order.
func (r *AnalysisResult) Earnings() []float64 {
	return r.earnings.Values()
}

// Run plays cfg.Trials sessions. Trial i uses shoe seed DeckNumber+i and a
// fresh strategy from the factory. Any failing trial aborts the batch.
func Run(ctx context.Context, cfg Config) (*AnalysisResult, error) {
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("%w: at least one trial is required", rules.ErrInvalidConfig)
	}
	if cfg.Factory == nil {
		return nil, fmt.Errorf("%w: strategy factory is required", rules.ErrInvalidConfig)
	}
	if _, err := rules.New(cfg.Rules.TableConfig, cfg.Rules.Casino); err != nil {
		return nil, err
	}
	cfg = withDefaults(cfg)

	id, err := runid.New()
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger.With("run", id)

	if cfg.Gate != nil {
		release := cfg.Gate.Acquire()
		defer release()
	}

	start := cfg.Clock.Now()
	logger.Debug("Starting analysis", "rules", cfg.Rules.String(), "trials", cfg.Trials, "workers", cfg.Workers)

	slots := make([]Result, cfg.Trials)
	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Trials {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runTrial(cfg, i)
			if err != nil {
				return err
			}
			slots[i] = res

			mu.Lock()
			done++
			if cfg.Progress != nil {
				cfg.Progress(done, cfg.Trials)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Debug("Analysis aborted", "error", err)
		return nil, err
	}

	result := &AnalysisResult{
		RunID:  id,
		Rules:  cfg.Rules,
		Trials: slots,
	}
	result.Strategy = slots[0].Strategy

	for i := range slots {
		result.earnings.Add(float64(slots[i].Net))
		result.Tally.Merge(&slots[i].Tally)
		result.HandsPlayed += slots[i].HandsPlayed
	}
	result.Summary = result.earnings.Summarize(cfg.Confidence)
	result.Elapsed = cfg.Clock.Since(start)

	logger.Info("Analysis complete",
		"strategy", result.Strategy,
		"rules", cfg.Rules.String(),
		"trials", cfg.Trials,
		"mean", fmt.Sprintf("%.2f", result.Summary.Mean),
		"elapsed", result.Elapsed.Round(time.Millisecond))
	return result, nil
}

// RunAll runs each configuration in turn, stopping at the first failure.
func RunAll(ctx context.Context, cfgs []Config) ([]*AnalysisResult, error) {
	results := make([]*AnalysisResult, 0, len(cfgs))
	for _, cfg := range cfgs {
		res, err := Run(ctx, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Confidence <= 0 || cfg.Confidence >= 1 {
		cfg.Confidence = statistics.DefaultConfidence
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	return cfg
}

// runTrial plays one session. Strategy panics become TrialErrors.
func runTrial(cfg Config, index int) (res Result, err error) {
	seed := cfg.Rules.DeckNumber + int64(index)
	name := ""
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = &TrialError{Index: index, Seed: seed, Strategy: name, Err: fmt.Errorf("%w: %v", ErrStrategyPanic, r)}
		}
	}()

	strategy := cfg.Factory()
	if strategy == nil {
		return Result{}, &TrialError{Index: index, Seed: seed, Err: ErrNoStrategy}
	}
	name = strategy.Name()

	opts := []game.Option{game.WithLogger(cfg.Logger), game.WithClock(cfg.Clock)}
	if cfg.TableOptions != nil {
		opts = append(opts, cfg.TableOptions(index, seed)...)
	}

	table := game.NewTable(cfg.Rules.WithSeed(seed), strategy, opts...)
	summary, err := table.PlaySession()
	if err != nil {
		return Result{}, &TrialError{Index: index, Seed: seed, Strategy: name, Err: err}
	}

	return Result{
		Index:       index,
		Seed:        seed,
		Strategy:    name,
		Net:         summary.Net(),
		Rounds:      summary.Rounds,
		HandsPlayed: summary.HandsPlayed,
		Reason:      summary.Reason,
		Tally:       summary.Tally,
	}, nil
}
