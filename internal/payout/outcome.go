package payout

import "fmt"

// Outcome is the result of one player hand against the dealer.
type Outcome int

const (
	DealerWin Outcome = iota
	PlayerWin
	PlayerWinWithBlackjack
	Push
)

func (o Outcome) String() string {
	switch o {
	case DealerWin:
		return "DEALER_WIN"
	case PlayerWin:
		return "PLAYER_WIN"
	case PlayerWinWithBlackjack:
		return "PLAYER_WIN_WITH_BLACKJACK"
	case Push:
		return "PUSH"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Category refines an outcome for the frequency table.
type Category int

const (
	CategoryBlackjackWin Category = iota
	CategoryWin
	CategoryPush
	CategoryLossToBlackjack
	CategoryLoss
	CategoryBust
)

// Categories lists every category in reporting order.
var Categories = [...]Category{
	CategoryBlackjackWin,
	CategoryWin,
	CategoryPush,
	CategoryLossToBlackjack,
	CategoryLoss,
	CategoryBust,
}

func (c Category) String() string {
	switch c {
	case CategoryBlackjackWin:
		return "blackjack_win"
	case CategoryWin:
		return "win"
	case CategoryPush:
		return "push"
	case CategoryLossToBlackjack:
		return "loss_to_blackjack"
	case CategoryLoss:
		return "loss"
	case CategoryBust:
		return "bust"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Label is the human readable column name.
func (c Category) Label() string {
	switch c {
	case CategoryBlackjackWin:
		return "Blackjack wins"
	case CategoryWin:
		return "Wins"
	case CategoryPush:
		return "Pushes"
	case CategoryLossToBlackjack:
		return "Dealer blackjacks"
	case CategoryLoss:
		return "Losses"
	case CategoryBust:
		return "Busts"
	default:
		return c.String()
	}
}

// Tally counts settled hands by category. The zero value is ready to use.
// A Tally is not safe for concurrent use.
type Tally struct {
	counts map[Category]int
}

// Add records one hand.
func (t *Tally) Add(c Category) {
	if t.counts == nil {
		t.counts = make(map[Category]int, len(Categories))
	}
	t.counts[c]++
}

// AddResults records every result of a round.
func (t *Tally) AddResults(results []Result) {
	for _, r := range results {
		t.Add(r.Category)
	}
}

// Merge folds another tally into this one.
func (t *Tally) Merge(other *Tally) {
	if other == nil {
		return
	}
	if t.counts == nil {
		t.counts = make(map[Category]int, len(Categories))
	}
	for c, n := range other.counts {
		t.counts[c] += n
	}
}

// Count returns the number of hands recorded in a category.
func (t *Tally) Count(c Category) int {
	return t.counts[c]
}

// Total returns the number of hands recorded.
func (t *Tally) Total() int {
	n := 0
	for _, v := range t.counts {
		n += v
	}
	return n
}

// Counts returns the per-category counts in reporting order.
func (t *Tally) Counts() []int {
	out := make([]int, len(Categories))
	for i, c := range Categories {
		out[i] = t.counts[c]
	}
	return out
}
