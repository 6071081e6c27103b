package deck

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/randutil"
)

// CardsPerDeck is the size of one physical deck.
const CardsPerDeck = 52

var (
	// ErrShoeExhausted means no drawable card remains even after reshuffling
	// the discards. Under sane table rules this cannot happen.
	ErrShoeExhausted = errors.New("shoe exhausted")

	// ErrForeignCard means a chooser picked a card that is not drawable.
	ErrForeignCard = errors.New("card is not in the drawable pool")

	// ErrNotActive means a discard was attempted for a card that was never dealt.
	ErrNotActive = errors.New("card is not active")
)

// Shoe is the card supply for one table. Every card is in exactly one of
// three pools: drawable, active (dealt into a hand) or discarded.
type Shoe struct {
	decks       int
	extraDecks  int
	seed        int64
	shuffles    uint64
	penetration int
	realRules   bool

	drawable  []Card // top of the shoe is the last element
	active    map[Card]struct{}
	discarded []Card

	chooser Chooser
	logger  *log.Logger
}

// ShoeOption configures a Shoe during creation.
type ShoeOption func(*Shoe)

// WithChooser installs a chooser that may override the default draw order.
func WithChooser(c Chooser) ShoeOption {
	return func(s *Shoe) {
		s.chooser = c
	}
}

// WithPenetration sets the percentage of the shoe that is dealt before the
// discards are shuffled back in. 100 deals the shoe to the last card.
func WithPenetration(percent int) ShoeOption {
	return func(s *Shoe) {
		s.penetration = min(max(percent, 0), 100)
	}
}

// WithRealCasinoFallback lets the shoe open a fresh deck when every card is
// in play and nothing can be reshuffled.
func WithRealCasinoFallback(enabled bool) ShoeOption {
	return func(s *Shoe) {
		s.realRules = enabled
	}
}

// WithLogger sets the logger used for reshuffle diagnostics.
func WithLogger(logger *log.Logger) ShoeOption {
	return func(s *Shoe) {
		if logger != nil {
			s.logger = logger.WithPrefix("shoe")
		}
	}
}

// NewShoe builds a shoe of the given number of decks and shuffles it with
// the first stream of seed.
func NewShoe(decks int, seed int64, opts ...ShoeOption) *Shoe {
	if decks < 1 {
		panic("shoe needs at least one deck")
	}

	s := &Shoe{
		decks:       decks,
		seed:        seed,
		penetration: 100,
		active:      make(map[Card]struct{}),
		chooser:     NoOverride{},
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.drawable = make([]Card, 0, decks*CardsPerDeck)
	for copyIdx := range decks {
		s.drawable = appendDeck(s.drawable, copyIdx)
	}
	s.shuffle()
	return s
}

func appendDeck(cards []Card, copyIdx int) []Card {
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank, Copy: copyIdx})
		}
	}
	return cards
}

// Draw moves one card from the drawable pool into the active pool.
func (s *Shoe) Draw() (Card, error) {
	if s.penetrationReached() {
		s.reshuffleWithReason("penetration")
	}

	if len(s.drawable) == 0 {
		s.reshuffleWithReason("exhausted")
		if len(s.drawable) == 0 {
			if !s.realRules {
				return Card{}, fmt.Errorf("%w: %d cards active, none discarded", ErrShoeExhausted, len(s.active))
			}
			s.openFreshDeck()
		}
	}

	idx, err := s.choose()
	if err != nil {
		return Card{}, err
	}

	card := s.drawable[idx]
	s.drawable = slices.Delete(s.drawable, idx, idx+1)
	s.active[card] = struct{}{}
	return card, nil
}

// Discard moves a previously drawn card to the discard pool.
func (s *Shoe) Discard(card Card) error {
	if _, ok := s.active[card]; !ok {
		return fmt.Errorf("%w: %s (deck %d)", ErrNotActive, card, card.Copy)
	}
	delete(s.active, card)
	s.discarded = append(s.discarded, card)
	return nil
}

// Reshuffle returns every discarded card to the drawable pool and
// re-randomises the drawable order from the next stream of the seed.
func (s *Shoe) Reshuffle() {
	s.reshuffleWithReason("requested")
}

func (s *Shoe) reshuffleWithReason(reason string) {
	s.drawable = append(s.drawable, s.discarded...)
	s.discarded = s.discarded[:0]
	s.shuffle()
	s.logger.Debug("reshuffle", "reason", reason, "drawable", len(s.drawable), "active", len(s.active), "shuffles", s.shuffles)
}

func (s *Shoe) shuffle() {
	rng := randutil.NewStream(s.seed, s.shuffles)
	s.shuffles++
	randutil.Shuffle(rng, len(s.drawable), func(i, j int) {
		s.drawable[i], s.drawable[j] = s.drawable[j], s.drawable[i]
	})
}

// penetrationReached reports whether the dealt share of the shoe has reached
// the penetration threshold while there are discards to bring back.
func (s *Shoe) penetrationReached() bool {
	if s.penetration >= 100 || len(s.discarded) == 0 {
		return false
	}
	dealt := s.Total() - len(s.drawable)
	return dealt*100 >= s.penetration*s.Total()
}

func (s *Shoe) openFreshDeck() {
	copyIdx := s.decks + s.extraDecks
	s.extraDecks++
	s.drawable = appendDeck(s.drawable, copyIdx)
	s.shuffle()
	s.logger.Warn("opened fresh deck", "copy", copyIdx, "active", len(s.active))
}

func (s *Shoe) choose() (int, error) {
	view := &View{shoe: s}
	card, ok := s.chooser.Choose(view)
	if !ok {
		return len(s.drawable) - 1, nil
	}

	idx := slices.Index(s.drawable, card)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s (deck %d)", ErrForeignCard, card, card.Copy)
	}
	return idx, nil
}

// Total is the number of cards owned by the shoe across all pools.
func (s *Shoe) Total() int {
	return (s.decks + s.extraDecks) * CardsPerDeck
}

// Drawable returns the number of cards that can still be drawn.
func (s *Shoe) Drawable() int {
	return len(s.drawable)
}

// Active returns the number of cards currently dealt into hands.
func (s *Shoe) Active() int {
	return len(s.active)
}

// Discarded returns the number of cards in the discard pool.
func (s *Shoe) Discarded() int {
	return len(s.discarded)
}

// Shuffles returns how many shuffles, including the initial one, have run.
func (s *Shoe) Shuffles() uint64 {
	return s.shuffles
}

// Decks returns the number of decks the shoe was built with.
func (s *Shoe) Decks() int {
	return s.decks
}

// Check verifies that the three pools partition the shoe exactly.
func (s *Shoe) Check() error {
	if n := len(s.drawable) + len(s.active) + len(s.discarded); n != s.Total() {
		return fmt.Errorf("shoe holds %d cards, want %d", n, s.Total())
	}

	seen := make(map[Card]struct{}, s.Total())
	for _, pool := range [][]Card{s.drawable, s.discarded} {
		for _, c := range pool {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("card %s (deck %d) appears twice", c, c.Copy)
			}
			seen[c] = struct{}{}
		}
	}
	for c := range s.active {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("card %s (deck %d) appears twice", c, c.Copy)
		}
	}
	return nil
}
