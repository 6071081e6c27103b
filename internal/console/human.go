package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
)

// Human is a strategy that asks a person at the terminal. When input runs
// out it bets the minimum, stands and walks away.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

// NewHuman reads answers from in and writes prompts to out.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) Name() string { return "human" }

func (h *Human) PlaceInitialBet(info game.GameInfo) int {
	hi := min(info.MaxBet, info.Bankroll)
	for {
		line, ok := h.ask(fmt.Sprintf("Bet (%d-%d, enter for %d): ", info.MinBet, hi, info.MinBet))
		if !ok || line == "" {
			return info.MinBet
		}
		bet, err := strconv.Atoi(line)
		if err == nil && bet >= info.MinBet && bet <= hi {
			return bet
		}
		fmt.Fprintf(h.out, "Enter a whole number between %d and %d.\n", info.MinBet, hi)
	}
}

func (h *Human) DecideHowToPlayHand(info game.GameInfo, current hand.View, _ []hand.View, dealerUp deck.Card) game.Decision {
	legal := game.Legal(info, current)
	names := make([]string, len(legal))
	for i, d := range legal {
		names[i] = strings.ToLower(d.String())
	}

	prompt := fmt.Sprintf("[%s] %d vs %s. %s? ", RenderCards(current.Cards), current.Score, RenderCard(dealerUp), strings.Join(names, "/"))
	for {
		line, ok := h.ask(prompt)
		if !ok {
			return game.Stand
		}
		d, err := game.ParseDecision(line)
		if err == nil && game.Reason(d, current, info.Bankroll, info.Casino) == "" {
			return d
		}
		fmt.Fprintf(h.out, "Choose one of: %s\n", strings.Join(names, ", "))
	}
}

func (h *Human) DecideToWalkAway(info game.GameInfo, _ []payout.Result, _ hand.DealerView) bool {
	line, ok := h.ask(fmt.Sprintf("Bankroll %d. Keep playing? [Y/n] ", info.Bankroll))
	if !ok {
		return true
	}
	return strings.HasPrefix(strings.ToLower(line), "n")
}

func (h *Human) ask(prompt string) (string, bool) {
	if h.eof {
		return "", false
	}
	fmt.Fprint(h.out, prompt)
	if !h.in.Scan() {
		h.eof = true
		fmt.Fprintln(h.out)
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}
