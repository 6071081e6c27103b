// Package rules holds the casino rules and table limits a session is played
// under, and loads them from session files.
package rules

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// CasinoRules are the house payout and dealing rules.
type CasinoRules struct {
	Description string

	// BlackjackPayoutRatio is the profit paid per unit bet on a natural.
	BlackjackPayoutRatio float64
	// PushPayoutRatio is the bonus paid per unit bet on a tie; 0 returns the bet only.
	PushPayoutRatio float64

	DealerHitsSoft17 bool

	// DeckPenetrationPercent is the share of the shoe dealt before the
	// discards are shuffled back in.
	DeckPenetrationPercent int

	// UseRealRulesWhenOutOfCards lets the shoe open a fresh deck when every
	// card is in play.
	UseRealRulesWhenOutOfCards bool

	AllowResplit          bool
	AllowDoubleAfterSplit bool
}

// DefaultCasinoRules returns the built-in house rule set.
func DefaultCasinoRules() CasinoRules {
	return CasinoRules{
		Description:                "Default house rules",
		BlackjackPayoutRatio:       2.0,
		PushPayoutRatio:            0.5,
		DealerHitsSoft17:           false,
		DeckPenetrationPercent:     100,
		UseRealRulesWhenOutOfCards: false,
		AllowResplit:               true,
		AllowDoubleAfterSplit:      true,
	}
}

// Validate checks the casino rules for values the engine cannot honour.
func (c CasinoRules) Validate() error {
	if c.BlackjackPayoutRatio < 0 {
		return fmt.Errorf("%w: rules %q: blackjack payout ratio must not be negative", ErrInvalidConfig, c.Description)
	}
	if c.PushPayoutRatio < 0 {
		return fmt.Errorf("%w: rules %q: push payout ratio must not be negative", ErrInvalidConfig, c.Description)
	}
	if c.DeckPenetrationPercent < 0 || c.DeckPenetrationPercent > 100 {
		return fmt.Errorf("%w: rules %q: deck penetration must be between 0 and 100, got %d",
			ErrInvalidConfig, c.Description, c.DeckPenetrationPercent)
	}
	return nil
}

// TableConfig holds the limits of one table.
type TableConfig struct {
	Name         string
	InitialMoney int
	MinBet       int
	MaxBet       int
	NumDecks     int
	NumRounds    int
	// DeckNumber seeds the shoe; trial i of an analysis uses DeckNumber+i.
	DeckNumber int64
}

// DefaultTable returns the table used when no session file is given.
func DefaultTable() TableConfig {
	return TableConfig{
		Name:         "default",
		InitialMoney: 1000,
		MinBet:       10,
		MaxBet:       100,
		NumDecks:     6,
		NumRounds:    100,
		DeckNumber:   1,
	}
}

// Validate checks the table limits.
func (t TableConfig) Validate() error {
	switch {
	case t.InitialMoney <= 0:
		return fmt.Errorf("%w: table %q: initial money must be positive", ErrInvalidConfig, t.Name)
	case t.MinBet <= 0:
		return fmt.Errorf("%w: table %q: minimum bet must be positive", ErrInvalidConfig, t.Name)
	case t.InitialMoney < t.MinBet:
		return fmt.Errorf("%w: table %q: initial money %d is below the minimum bet %d", ErrInvalidConfig, t.Name, t.InitialMoney, t.MinBet)
	case t.MinBet > t.MaxBet:
		return fmt.Errorf("%w: table %q: minimum bet %d exceeds maximum bet %d", ErrInvalidConfig, t.Name, t.MinBet, t.MaxBet)
	case t.NumDecks < 1:
		return fmt.Errorf("%w: table %q: at least one deck is required", ErrInvalidConfig, t.Name)
	case t.NumRounds < 1:
		return fmt.Errorf("%w: table %q: at least one round is required", ErrInvalidConfig, t.Name)
	}
	return nil
}

// TableRules is the read-only combination of table limits and casino rules
// a session is played under.
type TableRules struct {
	TableConfig
	Casino CasinoRules
}

// New validates and combines table limits with casino rules.
func New(table TableConfig, casino CasinoRules) (TableRules, error) {
	if err := table.Validate(); err != nil {
		return TableRules{}, err
	}
	if err := casino.Validate(); err != nil {
		return TableRules{}, err
	}
	return TableRules{TableConfig: table, Casino: casino}, nil
}

// Default returns the default table under the default house rules.
func Default() TableRules {
	return TableRules{TableConfig: DefaultTable(), Casino: DefaultCasinoRules()}
}

// WithSeed returns a copy of the rules with a different shoe seed.
func (r TableRules) WithSeed(seed int64) TableRules {
	r.DeckNumber = seed
	return r
}

func (r TableRules) String() string {
	return fmt.Sprintf("%s / %s", r.Name, r.Casino.Description)
}
