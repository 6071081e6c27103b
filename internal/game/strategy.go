package game

import (
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/rules"
)

// GameInfo is what a strategy knows about the table when it is asked to act.
// It is accurate as of the call.
type GameInfo struct {
	TableName string
	Bankroll  int
	MinBet    int
	MaxBet    int
	// Round is 1-based. During the walk-away check it is the round just played.
	Round     int
	MaxRounds int
	NumDecks  int
	// Seed is the table's shoe seed. Each trial of an analysis has its own.
	Seed      int64
	Casino    rules.CasinoRules
}

// Strategy plays the player's side of the table. The engine calls it
// synchronously; an instance is used by one table only.
type Strategy interface {
	// PlaceInitialBet returns the opening bet for a round.
	PlaceInitialBet(info GameInfo) int
	// DecideHowToPlayHand chooses a decision for current, one of hands.
	DecideHowToPlayHand(info GameInfo, current hand.View, hands []hand.View, dealerUp deck.Card) Decision
	// DecideToWalkAway is asked after each settled round that did not
	// reach the round limit or leave the bankroll below the minimum bet.
	// Those forced stops end the session without asking.
	DecideToWalkAway(info GameInfo, results []payout.Result, dealer hand.DealerView) bool
	// Name identifies the strategy in reports.
	Name() string
}

// StrategyFactory builds a fresh strategy instance.
type StrategyFactory func() Strategy
