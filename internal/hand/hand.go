// Package hand scores blackjack hands and tracks the per-hand state the
// round engine needs: bets and split lineage for the player, the hole card
// for the dealer.
package hand

import (
	"strings"

	"github.com/lox/blackjackforbots/internal/deck"
)

// Target is the best total a hand can reach.
const Target = 21

// Score returns the best total for cards and whether an ace is counted as
// eleven in it. Every ace counts as eleven while that stays at or under 21;
// otherwise at most one ace counts as eleven, and if even that busts all
// aces count as one.
func Score(cards []deck.Card) (score int, soft bool) {
	hard, aces := 0, 0
	for _, c := range cards {
		hard += c.Rank.MinScore()
		if c.IsAce() {
			aces++
		}
	}
	if aces == 0 {
		return hard, false
	}

	if all := hard + 10*aces; all <= Target {
		return all, true
	}
	if one := hard + 10; one <= Target {
		return one, true
	}
	return hard, false
}

// Hand is an ordered sequence of cards in draw order.
type Hand struct {
	cards []deck.Card
}

// New returns a hand holding cards.
func New(cards ...deck.Card) Hand {
	return Hand{cards: append([]deck.Card(nil), cards...)}
}

// Add appends a card to the hand.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in draw order.
func (h *Hand) Cards() []deck.Card {
	return append([]deck.Card(nil), h.cards...)
}

// Len returns the number of cards.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Score returns the best total of the hand.
func (h *Hand) Score() int {
	s, _ := Score(h.cards)
	return s
}

// IsSoft reports whether the best total counts an ace as eleven.
func (h *Hand) IsSoft() bool {
	_, soft := Score(h.cards)
	return soft
}

// HardScore counts every ace as one.
func (h *Hand) HardScore() int {
	total := 0
	for _, c := range h.cards {
		total += c.Rank.MinScore()
	}
	return total
}

// IsBust reports whether the best total is over 21.
func (h *Hand) IsBust() bool {
	return h.Score() > Target
}

func (h *Hand) is21With2() bool {
	return len(h.cards) == 2 && h.Score() == Target
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
