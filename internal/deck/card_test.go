package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AsKs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
			},
		},
		{
			name:  "mixed suits",
			input: "Ah Td 7c",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: Ten},
				{Suit: Clubs, Rank: Seven},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqD",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AxKs", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRankScores(t *testing.T) {
	tests := []struct {
		rank     Rank
		min, max int
	}{
		{Two, 2, 2},
		{Nine, 9, 9},
		{Ten, 10, 10},
		{Jack, 10, 10},
		{Queen, 10, 10},
		{King, 10, 10},
		{Ace, 1, 11},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			assert.Equal(t, tt.min, tt.rank.MinScore())
			assert.Equal(t, tt.max, tt.rank.MaxScore())
		})
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♣", NewCard(Clubs, Ace).String())
	assert.Equal(t, "Q♦", NewCard(Diamonds, Queen).String())
	assert.True(t, NewCard(Hearts, Two).IsRed())
	assert.False(t, NewCard(Spades, Two).IsRed())
}

func TestSameFaceIgnoresDeckCopy(t *testing.T) {
	a := Card{Suit: Clubs, Rank: Ace, Copy: 0}
	b := Card{Suit: Clubs, Rank: Ace, Copy: 3}
	assert.True(t, a.SameFace(b))
	assert.NotEqual(t, a, b)
}
