package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	DisableColor()
}

func TestObserverNarratesRound(t *testing.T) {
	var buf bytes.Buffer
	tr := rules.Default()
	tr.NumRounds = 1
	chooser := deck.NewScriptedChooser(deck.MustParseCards("TcTd9c7h")...)

	table := game.NewTable(tr, &standing{}, game.WithChooser(chooser), game.WithSubscriber(NewObserver(&buf, true)))
	_, err := table.PlaySession()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Round 1: bet 10, bankroll 990")
	assert.Contains(t, out, "dealer gets ??")
	assert.Contains(t, out, "hand 1 [T♣ 9♣] 19 vs T♦: STAND")
	assert.Contains(t, out, "dealer T♦ 7♥ 17")
	assert.Contains(t, out, "PLAYER_WIN, bet 10, paid 20")
	assert.Contains(t, out, "Session over after 1 rounds (max rounds), bankroll 1010")
}

func TestQuietObserverSkipsCards(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(&buf, false)
	o.OnEvent(game.CardDealtEvent{HandIndex: 0, Card: deck.NewCard(deck.Spades, deck.Ace)})
	o.OnEvent(game.StateChangeEvent{From: game.AwaitBet, To: game.InitialDeal})
	assert.Empty(t, buf.String())
}

func TestHumanPrompts(t *testing.T) {
	in := strings.NewReader("5\n20\nsurrender\nsplit\nn\n")
	var out bytes.Buffer
	h := NewHuman(in, &out)

	info := game.GameInfo{Bankroll: 100, MinBet: 10, MaxBet: 50, Casino: rules.DefaultCasinoRules()}
	assert.Equal(t, 20, h.PlaceInitialBet(info))

	pair := hand.NewPlayerHand(20, deck.MustParseCards("8c8d")...).View()
	assert.Equal(t, game.Split, h.DecideHowToPlayHand(info, pair, nil, deck.NewCard(deck.Hearts, deck.Six)))
	assert.True(t, h.DecideToWalkAway(info, nil, hand.DealerView{}))

	assert.Contains(t, out.String(), "Enter a whole number between 10 and 50.")
	assert.Contains(t, out.String(), "Choose one of: hit, stand, double_down, split")

	// Input is exhausted.
	assert.Equal(t, 10, h.PlaceInitialBet(info))
	assert.Equal(t, game.Stand, h.DecideHowToPlayHand(info, pair, nil, deck.NewCard(deck.Hearts, deck.Six)))
	assert.True(t, h.DecideToWalkAway(info, nil, hand.DealerView{}))
}

type standing struct{}

func (standing) Name() string                       { return "standing" }
func (standing) PlaceInitialBet(i game.GameInfo) int { return i.MinBet }
func (standing) DecideHowToPlayHand(game.GameInfo, hand.View, []hand.View, deck.Card) game.Decision {
	return game.Stand
}
func (standing) DecideToWalkAway(game.GameInfo, []payout.Result, hand.DealerView) bool { return false }
