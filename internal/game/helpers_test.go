package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/rules"
)

// scriptedStrategy bets a fixed amount and replays a list of decisions,
// standing once the list runs out.
type scriptedStrategy struct {
	bet       int
	decisions []Decision
	walkAfter int

	seen  []hand.View
	infos []GameInfo
}

func (s *scriptedStrategy) PlaceInitialBet(info GameInfo) int {
	s.infos = append(s.infos, info)
	return s.bet
}

func (s *scriptedStrategy) DecideHowToPlayHand(info GameInfo, current hand.View, _ []hand.View, _ deck.Card) Decision {
	s.seen = append(s.seen, current)
	if len(s.decisions) == 0 {
		return Stand
	}
	d := s.decisions[0]
	s.decisions = s.decisions[1:]
	return d
}

func (s *scriptedStrategy) DecideToWalkAway(info GameInfo, _ []payout.Result, _ hand.DealerView) bool {
	return s.walkAfter > 0 && info.Round >= s.walkAfter
}

func (s *scriptedStrategy) Name() string { return "scripted" }

func testRules(modify func(*rules.TableRules)) rules.TableRules {
	tr := rules.Default()
	tr.NumDecks = 1
	tr.NumRounds = 10
	if modify != nil {
		modify(&tr)
	}
	return tr
}

// scriptedTable deals cards in order: player, dealer up, player, dealer
// hole, then every later draw.
func scriptedTable(t *testing.T, tr rules.TableRules, s Strategy, cards string, opts ...Option) *Table {
	t.Helper()
	chooser := deck.NewScriptedChooser(deck.MustParseCards(cards)...)
	opts = append([]Option{
		WithChooser(chooser),
		WithLogger(log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})),
	}, opts...)
	return NewTable(tr, s, opts...)
}

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}
