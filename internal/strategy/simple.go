package strategy

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
)

// Dealer mirrors the house: hit below 17, never double or split.
type Dealer struct {
	logger *log.Logger
}

// NewDealer creates a new Dealer strategy.
func NewDealer(opts Options) *Dealer {
	return &Dealer{logger: opts.logger("dealer")}
}

func (d *Dealer) Name() string { return "dealer" }

func (d *Dealer) PlaceInitialBet(info game.GameInfo) int { return flatBet(info) }

func (d *Dealer) DecideHowToPlayHand(_ game.GameInfo, current hand.View, _ []hand.View, _ deck.Card) game.Decision {
	if current.Score < 17 {
		return game.Hit
	}
	return game.Stand
}

func (d *Dealer) DecideToWalkAway(game.GameInfo, []payout.Result, hand.DealerView) bool {
	return false
}

// Stand never takes a card and relies on the dealer busting.
type Stand struct {
	logger *log.Logger
}

// NewStand creates a new Stand strategy.
func NewStand(opts Options) *Stand {
	return &Stand{logger: opts.logger("stand")}
}

func (s *Stand) Name() string { return "stand" }

func (s *Stand) PlaceInitialBet(info game.GameInfo) int { return flatBet(info) }

func (s *Stand) DecideHowToPlayHand(game.GameInfo, hand.View, []hand.View, deck.Card) game.Decision {
	return game.Stand
}

func (s *Stand) DecideToWalkAway(game.GameInfo, []payout.Result, hand.DealerView) bool {
	return false
}
