package hand

import (
	"errors"
	"fmt"

	"github.com/lox/blackjackforbots/internal/deck"
)

// ErrNotSplittable means the hand is not a pair of equal rank.
var ErrNotSplittable = errors.New("hand is not a splittable pair")

// PlayerHand is one live player hand: its cards, the money riding on it and
// how it came to be.
type PlayerHand struct {
	Hand
	bet       int
	fromSplit bool
	doubled   bool
	closed    bool
	decisions int
}

// NewPlayerHand returns an empty hand carrying bet.
func NewPlayerHand(bet int, cards ...deck.Card) *PlayerHand {
	return &PlayerHand{Hand: New(cards...), bet: bet}
}

// Bet returns the amount riding on the hand.
func (p *PlayerHand) Bet() int { return p.bet }

// FromSplit reports whether the hand was created by splitting a pair.
func (p *PlayerHand) FromSplit() bool { return p.fromSplit }

// Doubled reports whether the bet was doubled down.
func (p *PlayerHand) Doubled() bool { return p.doubled }

// Closed reports whether the hand takes no further decisions.
func (p *PlayerHand) Closed() bool { return p.closed }

// Decisions returns how many decisions have been applied to the hand.
func (p *PlayerHand) Decisions() int { return p.decisions }

// IsBlackjack reports a natural: two cards totalling 21, not from a split.
func (p *PlayerHand) IsBlackjack() bool {
	return !p.fromSplit && p.is21With2()
}

// IsPair reports whether the hand is exactly two cards of the same rank.
func (p *PlayerHand) IsPair() bool {
	return len(p.cards) == 2 && p.cards[0].Rank == p.cards[1].Rank
}

// Close marks the hand as finished.
func (p *PlayerHand) Close() { p.closed = true }

// RecordDecision counts one applied decision.
func (p *PlayerHand) RecordDecision() { p.decisions++ }

// DoubleBet doubles the amount riding on the hand.
func (p *PlayerHand) DoubleBet() {
	p.bet *= 2
	p.doubled = true
}

// Split turns a pair into two one-card hands carrying the same bet.
func (p *PlayerHand) Split() (*PlayerHand, *PlayerHand, error) {
	if !p.IsPair() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotSplittable, &p.Hand)
	}
	left := &PlayerHand{Hand: New(p.cards[0]), bet: p.bet, fromSplit: true}
	right := &PlayerHand{Hand: New(p.cards[1]), bet: p.bet, fromSplit: true}
	return left, right, nil
}

// View returns an immutable snapshot of the hand.
func (p *PlayerHand) View() View {
	score, soft := Score(p.cards)
	return View{
		Cards:     p.Cards(),
		Score:     score,
		Soft:      soft,
		Bet:       p.bet,
		FromSplit: p.fromSplit,
		Doubled:   p.doubled,
		Closed:    p.closed,
		Decisions: p.decisions,
		Bust:      score > Target,
		Blackjack: p.IsBlackjack(),
	}
}

// View is a read-only snapshot of a player hand handed to strategies and
// observers.
type View struct {
	Cards     []deck.Card
	Score     int
	Soft      bool
	Bet       int
	FromSplit bool
	Doubled   bool
	Closed    bool
	Decisions int
	Bust      bool
	Blackjack bool
}

// IsPair reports whether the snapshot is two cards of equal rank.
func (v View) IsPair() bool {
	return len(v.Cards) == 2 && v.Cards[0].Rank == v.Cards[1].Rank
}

// Views snapshots a list of hands in order.
func Views(hands []*PlayerHand) []View {
	views := make([]View, len(hands))
	for i, h := range hands {
		views[i] = h.View()
	}
	return views
}
