package game

import "fmt"

// State is a step of the round state machine.
type State int

const (
	// Ready is the state of a table that has not played a round yet.
	Ready State = iota
	AwaitBet
	InitialDeal
	PlayerTurn
	DealerTurn
	Settlement
	WalkAwayCheck
	SessionEnd
)

func (s State) String() string {
	switch s {
	case Ready:
		return "Ready"
	case AwaitBet:
		return "AwaitBet"
	case InitialDeal:
		return "InitialDeal"
	case PlayerTurn:
		return "PlayerTurn"
	case DealerTurn:
		return "DealerTurn"
	case Settlement:
		return "Settlement"
	case WalkAwayCheck:
		return "WalkAwayCheck"
	case SessionEnd:
		return "SessionEnd"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EndReason records why a session stopped.
type EndReason int

const (
	EndMaxRounds EndReason = iota
	EndBankrupt
	EndWalkedAway
)

func (r EndReason) String() string {
	switch r {
	case EndMaxRounds:
		return "max rounds"
	case EndBankrupt:
		return "bankroll below minimum bet"
	case EndWalkedAway:
		return "walked away"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}
