package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalDecision is wrapped by IllegalDecisionError.
	ErrIllegalDecision = errors.New("illegal decision")
	// ErrIllegalBet is wrapped by IllegalBetError.
	ErrIllegalBet = errors.New("illegal bet")
)

// IllegalDecisionError is returned when a strategy asks for a decision the
// hand does not allow.
type IllegalDecisionError struct {
	Decision  Decision
	HandIndex int
	Reason    string
}

func (e *IllegalDecisionError) Error() string {
	return fmt.Sprintf("illegal decision %s on hand %d: %s", e.Decision, e.HandIndex, e.Reason)
}

func (e *IllegalDecisionError) Unwrap() error { return ErrIllegalDecision }

// IllegalBetError is returned when an opening bet is outside the table
// limits or the bankroll.
type IllegalBetError struct {
	Bet      int
	Min      int
	Max      int
	Bankroll int
}

func (e *IllegalBetError) Error() string {
	return fmt.Sprintf("illegal bet %d: limits %d-%d, bankroll %d", e.Bet, e.Min, e.Max, e.Bankroll)
}

func (e *IllegalBetError) Unwrap() error { return ErrIllegalBet }
