// Package payout settles player hands against the dealer hand.
package payout

import (
	"math"

	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/rules"
)

// Result is the settlement of one player hand.
type Result struct {
	Outcome  Outcome
	Category Category
	Bet      int
	// Payout is the total returned to the player, stake included.
	Payout int
}

// Net is the player's gain or loss on the hand.
func (r Result) Net() int {
	return r.Payout - r.Bet
}

// Calculate settles every player hand against the dealer. The result order
// matches the order of hands.
func Calculate(dealer *hand.DealerHand, hands []*hand.PlayerHand, casino rules.CasinoRules) []Result {
	results := make([]Result, len(hands))
	for i, h := range hands {
		results[i] = Settle(dealer, h, casino)
	}
	return results
}

// Settle settles a single player hand.
func Settle(dealer *hand.DealerHand, h *hand.PlayerHand, casino rules.CasinoRules) Result {
	bet := h.Bet()
	playerBJ := h.IsBlackjack()
	dealerBJ := dealer.IsBlackjack()

	switch {
	case h.IsBust():
		return Result{Outcome: DealerWin, Category: CategoryBust, Bet: bet}
	case dealer.IsBust():
		return Result{Outcome: PlayerWin, Category: CategoryWin, Bet: bet, Payout: bet * 2}
	case playerBJ && dealerBJ:
		return Result{Outcome: Push, Category: CategoryPush, Bet: bet, Payout: bet + Ceil(float64(bet)*casino.PushPayoutRatio)}
	case playerBJ:
		return Result{Outcome: PlayerWinWithBlackjack, Category: CategoryBlackjackWin, Bet: bet,
			Payout: bet + Ceil(float64(bet)*casino.BlackjackPayoutRatio)}
	case dealerBJ:
		return Result{Outcome: DealerWin, Category: CategoryLossToBlackjack, Bet: bet}
	}

	ps, ds := h.Score(), dealer.Score()
	switch {
	case ps > ds:
		return Result{Outcome: PlayerWin, Category: CategoryWin, Bet: bet, Payout: bet * 2}
	case ps < ds:
		return Result{Outcome: DealerWin, Category: CategoryLoss, Bet: bet}
	default:
		return Result{Outcome: Push, Category: CategoryPush, Bet: bet, Payout: bet + Ceil(float64(bet)*casino.PushPayoutRatio)}
	}
}

// ceilEpsilon absorbs float error in products like 10*1.1.
const ceilEpsilon = 1e-9

// Ceil rounds a money amount up to the next whole unit.
func Ceil(x float64) int {
	return int(math.Ceil(x - ceilEpsilon))
}

// Total sums the payouts of a round.
func Total(results []Result) int {
	n := 0
	for _, r := range results {
		n += r.Payout
	}
	return n
}
