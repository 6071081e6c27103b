package game

import (
	"fmt"

	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/rules"
)

// Reason explains why d may not be played on h with the given bankroll.
// It returns "" when the decision is legal.
func Reason(d Decision, h hand.View, bankroll int, casino rules.CasinoRules) string {
	if h.Closed {
		return "hand is closed"
	}

	switch d {
	case Hit, Stand:
		return ""

	case DoubleDown:
		switch {
		case h.Decisions > 0:
			return "double down is only allowed as the first decision"
		case len(h.Cards) != 2:
			return fmt.Sprintf("double down needs exactly two cards, hand has %d", len(h.Cards))
		case h.FromSplit && !casino.AllowDoubleAfterSplit:
			return "double after split is not allowed"
		case bankroll < h.Bet:
			return fmt.Sprintf("bankroll %d cannot cover %d", bankroll, h.Bet)
		}
		return ""

	case Split:
		switch {
		case !h.IsPair():
			return "split needs exactly two cards of equal rank"
		case h.FromSplit && !casino.AllowResplit:
			return "resplitting is not allowed"
		case bankroll < h.Bet:
			return fmt.Sprintf("bankroll %d cannot cover %d", bankroll, h.Bet)
		}
		return ""
	}
	return "unknown decision"
}

// Legal lists the decisions the table accepts for h.
func Legal(info GameInfo, h hand.View) []Decision {
	var out []Decision
	for _, d := range Decisions {
		if Reason(d, h, info.Bankroll, info.Casino) == "" {
			out = append(out, d)
		}
	}
	return out
}

// CanDouble reports whether DoubleDown is legal for h.
func CanDouble(info GameInfo, h hand.View) bool {
	return Reason(DoubleDown, h, info.Bankroll, info.Casino) == ""
}

// CanSplit reports whether Split is legal for h.
func CanSplit(info GameInfo, h hand.View) bool {
	return Reason(Split, h, info.Bankroll, info.Casino) == ""
}
