package console

import (
	"fmt"
	"io"

	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
)

// Observer writes a running commentary of table events.
type Observer struct {
	w       io.Writer
	verbose bool
}

// NewObserver creates an observer. Verbose observers also print every card
// and state change.
func NewObserver(w io.Writer, verbose bool) *Observer {
	return &Observer{w: w, verbose: verbose}
}

// OnEvent implements game.EventSubscriber.
func (o *Observer) OnEvent(event game.Event) {
	switch e := event.(type) {
	case game.BetPlacedEvent:
		fmt.Fprintf(o.w, "%s bet %d, bankroll %d\n", roundStyle.Render(fmt.Sprintf("Round %d:", e.Round)), e.Bet, e.Bankroll)

	case game.CardDealtEvent:
		if !o.verbose {
			return
		}
		card := RenderCard(e.Card)
		if e.Hidden {
			card = hiddenCard()
		}
		if e.ToDealer() {
			fmt.Fprintf(o.w, "  dealer gets %s\n", card)
		} else {
			fmt.Fprintf(o.w, "  hand %d gets %s\n", e.HandIndex+1, card)
		}

	case game.DecisionEvent:
		fmt.Fprintf(o.w, "  hand %d [%s] %d vs %s: %s\n",
			e.HandIndex+1, RenderCards(e.Hand.Cards), e.Hand.Score, RenderCard(e.DealerUp), e.Decision)

	case game.StateChangeEvent:
		if o.verbose {
			fmt.Fprintln(o.w, infoStyle.Render(fmt.Sprintf("  %s -> %s", e.From, e.To)))
		}

	case game.RoundSettledEvent:
		fmt.Fprintf(o.w, "  dealer %s\n", describeDealer(e.Dealer))
		for i, r := range e.Results {
			fmt.Fprintf(o.w, "  hand %d %s: %s\n", i+1, describeHand(e.Hands[i]), describeResult(r))
		}
		fmt.Fprintln(o.w, infoStyle.Render(fmt.Sprintf("  bankroll %d", e.Bankroll)))

	case game.SessionEndEvent:
		fmt.Fprintf(o.w, "%s after %d rounds (%s), bankroll %d\n",
			roundStyle.Render("Session over"), e.Rounds, e.Reason, e.Bankroll)
	}
}

func describeDealer(d hand.DealerView) string {
	cards := RenderCards(d.Cards)
	if !d.Revealed && len(d.Cards) == 1 {
		cards += " " + hiddenCard()
	}
	switch {
	case d.Blackjack && d.Revealed:
		return cards + " blackjack"
	case d.Bust:
		return fmt.Sprintf("%s %d bust", cards, d.Score)
	default:
		return fmt.Sprintf("%s %d", cards, d.Score)
	}
}

func describeHand(v hand.View) string {
	s := fmt.Sprintf("[%s] %d", RenderCards(v.Cards), v.Score)
	if v.Doubled {
		s += " doubled"
	}
	return s
}

func describeResult(r payout.Result) string {
	text := fmt.Sprintf("%s, bet %d, paid %d", r.Outcome, r.Bet, r.Payout)
	switch r.Outcome {
	case payout.PlayerWin, payout.PlayerWinWithBlackjack:
		return winStyle.Render(text)
	case payout.Push:
		return pushStyle.Render(text)
	default:
		return lossStyle.Render(text)
	}
}
