package strategy

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/randutil"
)

// Random makes uniform random legal decisions and bets. Its generator is
// drawn from the option seed and the shoe seed of the table it first plays
// at, so instances at the same table make the same choices and each trial
// of an analysis gets its own sequence.
type Random struct {
	seed   int64
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandom creates a new Random strategy.
func NewRandom(opts Options) *Random {
	return &Random{seed: opts.Seed, logger: opts.logger("random")}
}

func (r *Random) generator(info game.GameInfo) *rand.Rand {
	if r.rng == nil {
		r.rng = randutil.NewStream(r.seed, uint64(info.Seed))
	}
	return r.rng
}

func (r *Random) Name() string { return "random" }

func (r *Random) PlaceInitialBet(info game.GameInfo) int {
	hi := min(info.MaxBet, info.Bankroll)
	if hi <= info.MinBet {
		return info.MinBet
	}
	return info.MinBet + r.generator(info).IntN(hi-info.MinBet+1)
}

func (r *Random) DecideHowToPlayHand(info game.GameInfo, current hand.View, _ []hand.View, _ deck.Card) game.Decision {
	legal := game.Legal(info, current)
	if len(legal) == 0 {
		return game.Stand
	}
	d := legal[r.generator(info).IntN(len(legal))]
	r.logger.Debug("Random decision", "hand", current.Cards, "decision", d)
	return d
}

// DecideToWalkAway leaves one round in fifty.
func (r *Random) DecideToWalkAway(info game.GameInfo, _ []payout.Result, _ hand.DealerView) bool {
	return r.generator(info).IntN(50) == 0
}
