package trial

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/quiet"
	"github.com/lox/blackjackforbots/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dealerMimic bets the minimum and hits below 17.
type dealerMimic struct {
	panicOnRound int
	splitAlways  bool
}

func (d *dealerMimic) PlaceInitialBet(info game.GameInfo) int {
	if d.panicOnRound > 0 && info.Round == d.panicOnRound {
		panic("boom")
	}
	return info.MinBet
}

func (d *dealerMimic) DecideHowToPlayHand(_ game.GameInfo, h hand.View, _ []hand.View, _ deck.Card) game.Decision {
	if d.splitAlways {
		return game.Split
	}
	if h.Score < 17 {
		return game.Hit
	}
	return game.Stand
}

func (d *dealerMimic) DecideToWalkAway(game.GameInfo, []payout.Result, hand.DealerView) bool {
	return false
}

func (d *dealerMimic) Name() string { return "mimic" }

func testConfig(t *testing.T, trials int) Config {
	tr := rules.Default()
	tr.NumRounds = 20
	return Config{
		Rules:   tr,
		Factory: func() game.Strategy { return &dealerMimic{} },
		Trials:  trials,
		Clock:   quartz.NewMock(t),
	}
}

func TestRunAggregates(t *testing.T) {
	res, err := Run(context.Background(), testConfig(t, 25))
	require.NoError(t, err)

	assert.Equal(t, "mimic", res.Strategy)
	assert.Len(t, res.RunID, 26)
	require.Len(t, res.Trials, 25)
	assert.Equal(t, 25, res.Summary.N)
	assert.True(t, res.Summary.HasInterval())

	hands := 0
	for i, tr := range res.Trials {
		assert.Equal(t, i, tr.Index)
		assert.Equal(t, int64(1+i), tr.Seed, "seed is base plus trial index")
		assert.Equal(t, 20, tr.Rounds)
		hands += tr.HandsPlayed
	}
	assert.Equal(t, hands, res.HandsPlayed)
	assert.Equal(t, res.HandsPlayed, res.Tally.Total())

	earnings := res.Earnings()
	require.Len(t, earnings, 25)
	for i, v := range earnings {
		assert.Equal(t, float64(res.Trials[i].Net), v)
	}

	mean := res.Summary.Mean
	assert.InDelta(t, mean-res.Summary.CILow, res.Summary.CIHigh-mean, 1e-9)
}

func TestSingleTrialHasUndefinedInterval(t *testing.T) {
	res, err := Run(context.Background(), testConfig(t, 1))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res.Summary.CILow))
	assert.True(t, math.IsNaN(res.Summary.CIHigh))
	assert.False(t, res.Summary.HasInterval())
}

func TestRunIsDeterministic(t *testing.T) {
	serial := testConfig(t, 40)
	serial.Workers = 1
	parallel := testConfig(t, 40)
	parallel.Workers = 8

	a, err := Run(context.Background(), serial)
	require.NoError(t, err)
	b, err := Run(context.Background(), parallel)
	require.NoError(t, err)
	c, err := Run(context.Background(), parallel)
	require.NoError(t, err)

	assert.Equal(t, a.Earnings(), b.Earnings())
	assert.Equal(t, b.Earnings(), c.Earnings())
	assert.Equal(t, a.Tally.Counts(), c.Tally.Counts())
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestBaseSeedChangesResults(t *testing.T) {
	a, err := Run(context.Background(), testConfig(t, 10))
	require.NoError(t, err)

	cfg := testConfig(t, 10)
	cfg.Rules = cfg.Rules.WithSeed(1000)
	b, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, a.Earnings(), b.Earnings())
}

func TestStrategyPanicAbortsBatch(t *testing.T) {
	gate := quiet.New(&bytes.Buffer{})
	cfg := testConfig(t, 10)
	cfg.Gate = gate
	cfg.Factory = func() game.Strategy { return &dealerMimic{panicOnRound: 3} }

	_, err := Run(context.Background(), cfg)
	require.ErrorIs(t, err, ErrStrategyPanic)

	var te *TrialError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "mimic", te.Strategy)
	assert.Equal(t, int64(te.Index)+1, te.Seed)
	assert.Equal(t, 0, gate.Holds(), "gate is released when the batch fails")
}

func TestIllegalDecisionAbortsBatch(t *testing.T) {
	cfg := testConfig(t, 5)
	cfg.Workers = 1
	cfg.Factory = func() game.Strategy { return &dealerMimic{splitAlways: true} }

	_, err := Run(context.Background(), cfg)
	require.ErrorIs(t, err, game.ErrIllegalDecision)

	var te *TrialError
	require.ErrorAs(t, err, &te)
}

func TestGateHeldDuringBatch(t *testing.T) {
	gate := quiet.New(&bytes.Buffer{})
	cfg := testConfig(t, 3)
	cfg.Gate = gate
	var suppressed atomic.Bool
	cfg.Progress = func(int, int) {
		suppressed.Store(gate.Suppressed())
	}

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, suppressed.Load())
	assert.False(t, gate.Suppressed())
}

func TestProgressIsReported(t *testing.T) {
	cfg := testConfig(t, 12)
	var calls []int
	cfg.Progress = func(done, total int) {
		assert.Equal(t, 12, total)
		calls = append(calls, done)
	}

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, calls, 12)
	for i, done := range calls {
		assert.Equal(t, i+1, done)
	}
}

func TestTableOptionsPerTrial(t *testing.T) {
	cfg := testConfig(t, 4)
	var settled atomic.Int64
	cfg.TableOptions = func(index int, seed int64) []game.Option {
		assert.Equal(t, int64(index)+1, seed)
		return []game.Option{game.WithSubscriber(game.SubscriberFunc(func(e game.Event) {
			if _, ok := e.(game.RoundSettledEvent); ok {
				settled.Add(1)
			}
		}))}
	}

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(4*20), settled.Load())
}

func TestRunValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no trials", func(c *Config) { c.Trials = 0 }},
		{"no factory", func(c *Config) { c.Factory = nil }},
		{"bad limits", func(c *Config) { c.Rules.MinBet = 1000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, 2)
			tt.modify(&cfg)
			_, err := Run(context.Background(), cfg)
			assert.ErrorIs(t, err, rules.ErrInvalidConfig)
		})
	}
}

func TestNilStrategy(t *testing.T) {
	cfg := testConfig(t, 2)
	cfg.Factory = func() game.Strategy { return nil }
	_, err := Run(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrNoStrategy)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, testConfig(t, 5))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAll(t *testing.T) {
	var cfgs []Config
	for i := range 3 {
		cfg := testConfig(t, 4)
		cfg.Rules.Name = fmt.Sprintf("t%d", i)
		cfgs = append(cfgs, cfg)
	}

	results, err := RunAll(context.Background(), cfgs)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "t2", results[2].Rules.Name)
}
