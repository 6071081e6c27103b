package strategy

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
)

// Basic plays the multi-deck basic strategy chart for a dealer standing on
// soft 17, falling back to hit or stand when a double or split is not
// allowed.
type Basic struct {
	logger *log.Logger
}

// NewBasic creates a new Basic strategy.
func NewBasic(opts Options) *Basic {
	return &Basic{logger: opts.logger("basic")}
}

func (b *Basic) Name() string { return "basic" }

func (b *Basic) PlaceInitialBet(info game.GameInfo) int {
	return flatBet(info)
}

func (b *Basic) DecideHowToPlayHand(info game.GameInfo, current hand.View, _ []hand.View, dealerUp deck.Card) game.Decision {
	d := Chart(info, current, dealerUp)
	b.logger.Debug("Decision", "hand", current.Cards, "score", current.Score, "up", dealerUp, "decision", d)
	return d
}

func (b *Basic) DecideToWalkAway(game.GameInfo, []payout.Result, hand.DealerView) bool {
	return false
}

// Chart returns the basic strategy play for a hand against the dealer's
// up card. Only legal decisions are returned.
func Chart(info game.GameInfo, h hand.View, dealerUp deck.Card) game.Decision {
	up := dealerUp.Rank.MaxScore()

	if h.IsPair() && game.CanSplit(info, h) && splitPair(h.Cards[0].Rank, up) {
		return game.Split
	}
	if h.Soft {
		return soft(info, h, up)
	}
	return hard(info, h, up)
}

func splitPair(r deck.Rank, up int) bool {
	switch r.MinScore() {
	case 1, 8:
		return true
	case 2, 3, 7:
		return up >= 2 && up <= 7
	case 4:
		return up == 5 || up == 6
	case 6:
		return up >= 2 && up <= 6
	case 9:
		return up != 7 && up != 10 && up != 11
	default:
		return false
	}
}

func soft(info game.GameInfo, h hand.View, up int) game.Decision {
	switch {
	case h.Score >= 19:
		return game.Stand
	case h.Score == 18:
		if up >= 3 && up <= 6 && game.CanDouble(info, h) {
			return game.DoubleDown
		}
		if up >= 9 {
			return game.Hit
		}
		return game.Stand
	case h.Score == 17:
		return doubleOrHit(info, h, up >= 3 && up <= 6)
	case h.Score >= 15:
		return doubleOrHit(info, h, up >= 4 && up <= 6)
	case h.Score >= 13:
		return doubleOrHit(info, h, up == 5 || up == 6)
	default:
		return game.Hit
	}
}

func hard(info game.GameInfo, h hand.View, up int) game.Decision {
	switch {
	case h.Score >= 17:
		return game.Stand
	case h.Score >= 13:
		if up <= 6 {
			return game.Stand
		}
		return game.Hit
	case h.Score == 12:
		if up >= 4 && up <= 6 {
			return game.Stand
		}
		return game.Hit
	case h.Score == 11:
		return doubleOrHit(info, h, up <= 10)
	case h.Score == 10:
		return doubleOrHit(info, h, up <= 9)
	case h.Score == 9:
		return doubleOrHit(info, h, up >= 3 && up <= 6)
	default:
		return game.Hit
	}
}

func doubleOrHit(info game.GameInfo, h hand.View, double bool) game.Decision {
	if double && game.CanDouble(info, h) {
		return game.DoubleDown
	}
	return game.Hit
}
