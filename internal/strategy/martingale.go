package strategy

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
)

// Martingale plays the basic strategy chart and doubles its opening bet
// after every losing round, resetting to the minimum after a win. It walks
// away once it is up by half its starting bankroll.
type Martingale struct {
	logger *log.Logger

	start   int
	lastBet int
	nextBet int
}

// NewMartingale creates a new Martingale strategy.
func NewMartingale(opts Options) *Martingale {
	return &Martingale{logger: opts.logger("martingale")}
}

func (m *Martingale) Name() string { return "martingale" }

func (m *Martingale) PlaceInitialBet(info game.GameInfo) int {
	if m.start == 0 {
		m.start = info.Bankroll
	}
	bet := min(max(m.nextBet, info.MinBet), info.MaxBet, info.Bankroll)
	m.lastBet = bet
	return bet
}

func (m *Martingale) DecideHowToPlayHand(info game.GameInfo, current hand.View, _ []hand.View, dealerUp deck.Card) game.Decision {
	return Chart(info, current, dealerUp)
}

func (m *Martingale) DecideToWalkAway(info game.GameInfo, results []payout.Result, _ hand.DealerView) bool {
	net := 0
	for _, r := range results {
		net += r.Net()
	}

	switch {
	case net < 0:
		m.nextBet = m.lastBet * 2
	case net > 0:
		m.nextBet = info.MinBet
	}

	if m.start > 0 && info.Bankroll >= m.start+m.start/2 {
		m.logger.Info("Walking away", "bankroll", info.Bankroll, "round", info.Round)
		return true
	}
	return false
}
