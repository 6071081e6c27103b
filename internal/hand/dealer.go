package hand

import "github.com/lox/blackjackforbots/internal/deck"

// DealerHand is the dealer's single hand. The second card stays hidden until
// Reveal is called.
type DealerHand struct {
	Hand
	revealed bool
}

// NewDealerHand returns a dealer hand holding cards, hole card hidden.
func NewDealerHand(cards ...deck.Card) *DealerHand {
	return &DealerHand{Hand: New(cards...)}
}

// UpCard returns the dealer's face-up card.
func (d *DealerHand) UpCard() deck.Card {
	return d.cards[0]
}

// Reveal turns the hole card face up.
func (d *DealerHand) Reveal() { d.revealed = true }

// Revealed reports whether the hole card is face up.
func (d *DealerHand) Revealed() bool { return d.revealed }

// IsBlackjack reports a dealer natural.
func (d *DealerHand) IsBlackjack() bool {
	return d.is21With2()
}

// ShouldHit applies the house drawing rule: draw below 17, and on a soft 17
// only when the dealer hits soft 17.
func (d *DealerHand) ShouldHit(hitsSoft17 bool) bool {
	score, soft := Score(d.cards)
	if score < 17 {
		return true
	}
	return score == 17 && soft && hitsSoft17
}

// View returns what is visible of the dealer hand.
func (d *DealerHand) View() DealerView {
	if !d.revealed && len(d.cards) > 1 {
		up := d.cards[:1]
		score, soft := Score(up)
		return DealerView{Cards: append([]deck.Card(nil), up...), Score: score, Soft: soft}
	}
	score, soft := Score(d.cards)
	return DealerView{
		Cards:     d.Cards(),
		Score:     score,
		Soft:      soft,
		Revealed:  d.revealed,
		Bust:      score > Target,
		Blackjack: d.IsBlackjack(),
	}
}

// DealerView is a read-only snapshot of the visible dealer cards.
type DealerView struct {
	Cards     []deck.Card
	Score     int
	Soft      bool
	Revealed  bool
	Bust      bool
	Blackjack bool
}
