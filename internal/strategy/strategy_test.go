package strategy

import (
	"context"
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/rules"
	"github.com/lox/blackjackforbots/internal/trial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func infoWith(bankroll int) game.GameInfo {
	return game.GameInfo{
		Bankroll: bankroll,
		MinBet:   10,
		MaxBet:   100,
		Round:    1,
		Casino:   rules.DefaultCasinoRules(),
	}
}

func view(cards string) hand.View {
	return hand.NewPlayerHand(10, deck.MustParseCards(cards)...).View()
}

func up(s string) deck.Card {
	return deck.MustParseCards(s)[0]
}

func TestChart(t *testing.T) {
	tests := []struct {
		name   string
		hand   string
		dealer string
		want   game.Decision
	}{
		{"split aces", "AcAd", "Ts", game.Split},
		{"split eights vs ace", "8c8d", "As", game.Split},
		{"stand tens", "TcKd", "6s", game.Stand},
		{"fives double", "5c5d", "6s", game.DoubleDown},
		{"nines stand vs seven", "9c9d", "7s", game.Stand},
		{"nines split vs eight", "9c9d", "8s", game.Split},
		{"hard 16 vs ten hits", "Tc6d", "Ts", game.Hit},
		{"hard 16 vs six stands", "Tc6d", "6s", game.Stand},
		{"hard 12 vs three hits", "Tc2d", "3s", game.Hit},
		{"hard 12 vs four stands", "Tc2d", "4s", game.Stand},
		{"hard 11 doubles", "6c5d", "Ts", game.DoubleDown},
		{"hard 11 vs ace hits", "6c5d", "As", game.Hit},
		{"hard 9 vs two hits", "5c4d", "2s", game.Hit},
		{"hard 9 vs three doubles", "5c4d", "3s", game.DoubleDown},
		{"hard 8 hits", "5c3d", "6s", game.Hit},
		{"soft 18 vs nine hits", "Ac7d", "9s", game.Hit},
		{"soft 18 vs two stands", "Ac7d", "2s", game.Stand},
		{"soft 18 vs four doubles", "Ac7d", "4s", game.DoubleDown},
		{"soft 17 vs three doubles", "Ac6d", "3s", game.DoubleDown},
		{"soft 13 vs four hits", "Ac2d", "4s", game.Hit},
		{"soft 19 stands", "Ac8d", "6s", game.Stand},
		{"three card soft 18 vs five stands", "Ac3d4h", "5s", game.Stand},
		{"three card hard 11 hits", "2c4d5h", "6s", game.Hit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chart(infoWith(1000), view(tt.hand), up(tt.dealer)))
		})
	}
}

func TestChartRespectsBankroll(t *testing.T) {
	assert.Equal(t, game.Hit, Chart(infoWith(5), view("6c5d"), up("Ts")))
	assert.Equal(t, game.Hit, Chart(infoWith(5), view("8c8d"), up("Ts")))
	assert.Equal(t, game.Stand, Chart(infoWith(5), view("Ac7d"), up("4s")))
}

func TestRandomIsLegalAndReproducible(t *testing.T) {
	a := NewRandom(Options{Seed: 3})
	b := NewRandom(Options{Seed: 3})
	info := infoWith(1000)

	for range 200 {
		h := view("8c8d")
		da := a.DecideHowToPlayHand(info, h, nil, up("6s"))
		assert.Equal(t, da, b.DecideHowToPlayHand(info, h, nil, up("6s")))
		assert.Contains(t, game.Legal(info, h), da)

		bet := a.PlaceInitialBet(info)
		assert.Equal(t, bet, b.PlaceInitialBet(info))
		assert.GreaterOrEqual(t, bet, 10)
		assert.LessOrEqual(t, bet, 100)
	}

	assert.Equal(t, 60, a.PlaceInitialBet(game.GameInfo{MinBet: 60, MaxBet: 100, Bankroll: 60}))
}

func TestRandomSequenceFollowsTableSeed(t *testing.T) {
	bets := func(seed int64) []int {
		r := NewRandom(Options{Seed: 3})
		info := infoWith(1000)
		info.Seed = seed
		out := make([]int, 50)
		for i := range out {
			out[i] = r.PlaceInitialBet(info)
		}
		return out
	}

	assert.Equal(t, bets(1), bets(1))
	assert.NotEqual(t, bets(1), bets(2), "each trial table gets its own sequence")
}

func TestMartingaleProgression(t *testing.T) {
	m := NewMartingale(Options{})
	info := infoWith(1000)

	assert.Equal(t, 10, m.PlaceInitialBet(info))
	assert.False(t, m.DecideToWalkAway(info, []payout.Result{{Bet: 10}}, hand.DealerView{}))
	assert.Equal(t, 20, m.PlaceInitialBet(info))
	m.DecideToWalkAway(info, []payout.Result{{Bet: 20}}, hand.DealerView{})
	assert.Equal(t, 40, m.PlaceInitialBet(info))
	m.DecideToWalkAway(info, []payout.Result{{Bet: 40, Payout: 80}}, hand.DealerView{})
	assert.Equal(t, 10, m.PlaceInitialBet(info))

	// A push keeps the current bet.
	m.DecideToWalkAway(info, []payout.Result{{Bet: 10}, {Bet: 10, Payout: 20}}, hand.DealerView{})
	assert.Equal(t, 10, m.PlaceInitialBet(info))

	capped := infoWith(30)
	for range 3 {
		bet := m.PlaceInitialBet(capped)
		m.DecideToWalkAway(capped, []payout.Result{{Bet: bet}}, hand.DealerView{})
	}
	assert.Equal(t, 30, m.PlaceInitialBet(capped), "bet is limited by the bankroll")
}

func TestMartingaleWalksAwayWhenAhead(t *testing.T) {
	m := NewMartingale(Options{})
	m.PlaceInitialBet(infoWith(1000))
	assert.False(t, m.DecideToWalkAway(infoWith(1400), nil, hand.DealerView{}))
	assert.True(t, m.DecideToWalkAway(infoWith(1500), nil, hand.DealerView{}))
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"basic", "dealer", "martingale", "random", "stand"}, Names())
	for _, name := range Names() {
		assert.NotEmpty(t, Describe(name))

		factory, err := Factory(name, Options{Seed: 1})
		require.NoError(t, err)
		first, second := factory(), factory()
		assert.Equal(t, name, first.Name())
		assert.NotSame(t, first, second, "factory must build fresh instances")
	}

	_, err := Factory("counting", Options{})
	assert.ErrorContains(t, err, "unknown strategy")

	_, err = Factory("BASIC", Options{})
	assert.NoError(t, err)
}

func TestBuiltinsPlayFullSessions(t *testing.T) {
	tr := rules.Default()
	tr.NumRounds = 50

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			factory, err := Factory(name, Options{Seed: 9})
			require.NoError(t, err)

			res, err := trial.Run(context.Background(), trial.Config{Rules: tr, Factory: factory, Trials: 20})
			require.NoError(t, err)
			assert.Equal(t, name, res.Strategy)
			assert.Equal(t, 20, res.Summary.N)
		})
	}
}
