package hand

import (
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/stretchr/testify/assert"
)

func TestDealerShouldHit(t *testing.T) {
	tests := []struct {
		name       string
		cards      string
		hitsSoft17 bool
		want       bool
	}{
		{"sixteen", "Tc6d", false, true},
		{"hard seventeen", "Tc7d", false, false},
		{"hard seventeen h17", "Tc7d", true, false},
		{"soft seventeen s17", "Ac6d", false, false},
		{"soft seventeen h17", "Ac6d", true, true},
		{"soft eighteen h17", "Ac7d", true, false},
		{"three card soft seventeen", "Ac2d4h", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDealerHand(deck.MustParseCards(tt.cards)...)
			assert.Equal(t, tt.want, d.ShouldHit(tt.hitsSoft17))
		})
	}
}

func TestDealerViewHidesHoleCard(t *testing.T) {
	d := NewDealerHand(deck.MustParseCards("AcQd")...)
	v := d.View()
	assert.Len(t, v.Cards, 1)
	assert.Equal(t, 11, v.Score)
	assert.False(t, v.Revealed)
	assert.False(t, v.Blackjack)

	d.Reveal()
	v = d.View()
	assert.Len(t, v.Cards, 2)
	assert.True(t, v.Revealed)
	assert.True(t, v.Blackjack)
	assert.Equal(t, deck.Ace, d.UpCard().Rank)
}
