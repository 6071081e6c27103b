package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in catalog order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in catalog order.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// MinScore is the value of the rank when aces count as one.
func (r Rank) MinScore() int {
	switch {
	case r == Ace:
		return 1
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

// MaxScore is the value of the rank when aces count as eleven.
func (r Rank) MaxScore() int {
	if r == Ace {
		return 11
	}
	return r.MinScore()
}

// Card represents a playing card. Copy identifies which physical deck of a
// multi-deck shoe the card came from, so value-equal cards stay distinct.
type Card struct {
	Suit Suit
	Rank Rank
	Copy int
}

// NewCard creates a new card from the first deck copy
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// SameFace reports whether two cards show the same rank and suit,
// regardless of which deck copy they belong to.
func (c Card) SameFace(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// ParseCards parses compact notation such as "AsKdTc" into cards.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %q", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, err
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, NewCard(suit, rank))
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures; it panics on malformed input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(b byte) (Rank, error) {
	switch b {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	}
	if b >= '2' && b <= '9' {
		return Rank(b - '0'), nil
	}
	return 0, fmt.Errorf("invalid rank: %c", b)
}

func parseSuit(b byte) (Suit, error) {
	switch b {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	}
	return 0, fmt.Errorf("invalid suit: %c", b)
}
