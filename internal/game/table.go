package game

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
	"github.com/lox/blackjackforbots/internal/rules"
)

// ErrSessionOver is returned when a round is requested after the session ended.
var ErrSessionOver = errors.New("session is over")

// Option configures a Table during creation.
type Option func(*tableConfig)

type tableConfig struct {
	logger      *log.Logger
	clock       quartz.Clock
	chooser     deck.Chooser
	bus         EventBus
	subscribers []EventSubscriber
}

// WithLogger sets the table logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *tableConfig) { c.logger = logger }
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) Option {
	return func(c *tableConfig) { c.clock = clock }
}

// WithChooser installs a card chooser on the table's shoe.
func WithChooser(chooser deck.Chooser) Option {
	return func(c *tableConfig) { c.chooser = chooser }
}

// WithEventBus publishes table events on an existing bus.
func WithEventBus(bus EventBus) Option {
	return func(c *tableConfig) { c.bus = bus }
}

// WithSubscriber registers an observer. Observers are notified in the order
// they are registered.
func WithSubscriber(s EventSubscriber) Option {
	return func(c *tableConfig) { c.subscribers = append(c.subscribers, s) }
}

// Table plays one strategy against the dealer. It is not safe for
// concurrent use.
type Table struct {
	rules    rules.TableRules
	strategy Strategy
	shoe     *deck.Shoe
	bus      EventBus
	logger   *log.Logger
	clock    quartz.Clock

	state       State
	err         error
	bankroll    int
	round       int
	handsPlayed int
	tally       payout.Tally

	dealer *hand.DealerHand
	hands  []*hand.PlayerHand
}

// RoundResult is the outcome of one played round.
type RoundResult struct {
	Round   int
	Bet     int
	Hands   []hand.View
	Dealer  hand.DealerView
	Results []payout.Result
	// Payout is the total returned to the bankroll at settlement.
	Payout   int
	Bankroll int
}

// Staked is the total wagered over every hand, doubles and splits included.
func (r *RoundResult) Staked() int {
	n := 0
	for _, res := range r.Results {
		n += res.Bet
	}
	return n
}

// Net is the change in bankroll over the round.
func (r *RoundResult) Net() int {
	return r.Payout - r.Staked()
}

// SessionSummary describes a finished session.
type SessionSummary struct {
	Strategy        string
	Rules           rules.TableRules
	Rounds          int
	HandsPlayed     int
	InitialBankroll int
	FinalBankroll   int
	Reason          EndReason
	Tally           payout.Tally
}

// Net is the session's earnings.
func (s *SessionSummary) Net() int {
	return s.FinalBankroll - s.InitialBankroll
}

// NewTable seats a strategy at a table. The shoe is built from the table
// rules and seeded with their DeckNumber.
func NewTable(tr rules.TableRules, strategy Strategy, opts ...Option) *Table {
	if strategy == nil {
		panic("strategy is required")
	}

	cfg := &tableConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	for _, s := range cfg.subscribers {
		cfg.bus.Subscribe(s)
	}

	shoeOpts := []deck.ShoeOption{
		deck.WithPenetration(tr.Casino.DeckPenetrationPercent),
		deck.WithRealCasinoFallback(tr.Casino.UseRealRulesWhenOutOfCards),
		deck.WithLogger(cfg.logger),
	}
	if cfg.chooser != nil {
		shoeOpts = append(shoeOpts, deck.WithChooser(cfg.chooser))
	}

	return &Table{
		rules:    tr,
		strategy: strategy,
		shoe:     deck.NewShoe(tr.NumDecks, tr.DeckNumber, shoeOpts...),
		bus:      cfg.bus,
		logger:   cfg.logger.WithPrefix("table"),
		clock:    cfg.clock,
		state:    Ready,
		bankroll: tr.InitialMoney,
	}
}

// Bankroll returns the player's current money.
func (t *Table) Bankroll() int { return t.bankroll }

// Round returns the number of rounds started.
func (t *Table) Round() int { return t.round }

// State returns the current state of the table.
func (t *Table) State() State { return t.state }

// HandsPlayed returns the number of settled player hands.
func (t *Table) HandsPlayed() int { return t.handsPlayed }

// Rules returns the rules the table plays under.
func (t *Table) Rules() rules.TableRules { return t.rules }

// Shoe exposes the table's shoe for inspection.
func (t *Table) Shoe() *deck.Shoe { return t.shoe }

// PlaySession plays rounds until the round limit is reached, the bankroll
// drops below the minimum bet, or the strategy walks away. A bankroll that
// cannot cover the minimum bet ends the session before the first round.
func (t *Table) PlaySession() (*SessionSummary, error) {
	if t.round == 0 && t.state == Ready && t.bankroll < t.rules.MinBet {
		return t.end(EndBankrupt), nil
	}
	for {
		res, err := t.PlayRound()
		if err != nil {
			return nil, err
		}

		t.transition(WalkAwayCheck)
		if reason, stop := t.walkAway(res); stop {
			return t.end(reason), nil
		}
	}
}

func (t *Table) end(reason EndReason) *SessionSummary {
	t.transition(SessionEnd)
	t.bus.Publish(SessionEndEvent{
		Rounds:    t.round,
		Bankroll:  t.bankroll,
		Reason:    reason,
		timestamp: t.clock.Now(),
	})
	t.logger.Debug("Session ended", "rounds", t.round, "bankroll", t.bankroll, "reason", reason)
	return t.summary(reason)
}

// PlayRound plays a single round through to settlement. The walk-away check
// is left to PlaySession, but no round is dealt past NumRounds. A failed
// round ends the session; later calls return the same error.
func (t *Table) PlayRound() (*RoundResult, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.state == SessionEnd || t.round >= t.rules.NumRounds {
		return nil, ErrSessionOver
	}

	res, err := t.playRound()
	if err != nil {
		t.err = fmt.Errorf("round %d: %w", t.round, err)
		t.state = SessionEnd
		return nil, t.err
	}
	return res, nil
}

func (t *Table) playRound() (*RoundResult, error) {
	t.round++
	t.transition(AwaitBet)

	bet := t.strategy.PlaceInitialBet(t.info())
	if err := t.checkBet(bet); err != nil {
		return nil, err
	}
	t.bankroll -= bet
	t.bus.Publish(BetPlacedEvent{Round: t.round, Bet: bet, Bankroll: t.bankroll, timestamp: t.clock.Now()})

	t.transition(InitialDeal)
	if err := t.dealInitial(bet); err != nil {
		return nil, err
	}

	t.transition(PlayerTurn)
	if err := t.playHands(); err != nil {
		return nil, err
	}

	t.transition(DealerTurn)
	if err := t.playDealer(); err != nil {
		return nil, err
	}

	t.transition(Settlement)
	res := t.settle(bet)
	if err := t.clearTable(); err != nil {
		return nil, err
	}
	return res, nil
}

func (t *Table) checkBet(bet int) error {
	if bet < t.rules.MinBet || bet > t.rules.MaxBet || bet > t.bankroll {
		return &IllegalBetError{Bet: bet, Min: t.rules.MinBet, Max: t.rules.MaxBet, Bankroll: t.bankroll}
	}
	return nil
}

func (t *Table) dealInitial(bet int) error {
	t.dealer = hand.NewDealerHand()
	player := hand.NewPlayerHand(bet)
	t.hands = []*hand.PlayerHand{player}

	for i := range 2 {
		if err := t.dealTo(0); err != nil {
			return err
		}
		if err := t.dealToDealer(i == 1); err != nil {
			return err
		}
	}

	if player.IsBlackjack() {
		player.Close()
	}
	return nil
}

func (t *Table) dealTo(index int) error {
	c, err := t.shoe.Draw()
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	t.hands[index].Add(c)
	t.bus.Publish(CardDealtEvent{Round: t.round, HandIndex: index, Card: c, timestamp: t.clock.Now()})
	return nil
}

func (t *Table) dealToDealer(hidden bool) error {
	c, err := t.shoe.Draw()
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	t.dealer.Add(c)

	ev := CardDealtEvent{Round: t.round, HandIndex: -1, Card: c, Hidden: hidden, timestamp: t.clock.Now()}
	if hidden {
		ev.Card = deck.Card{}
	}
	t.bus.Publish(ev)
	return nil
}

func (t *Table) playHands() error {
	// Splits insert hands after i, so the length is re-read every pass.
	for i := 0; i < len(t.hands); i++ {
		for !t.hands[i].Closed() {
			d := t.strategy.DecideHowToPlayHand(t.info(), t.hands[i].View(), hand.Views(t.hands), t.dealer.UpCard())
			if err := t.apply(i, d); err != nil {
				return err
			}
		}
	}
	return nil
}

// apply validates and carries out a decision on hand i.
func (t *Table) apply(i int, d Decision) error {
	h := t.hands[i]
	if reason := Reason(d, h.View(), t.bankroll, t.rules.Casino); reason != "" {
		return t.illegal(d, i, reason)
	}
	t.publishDecision(i, d)

	switch d {
	case Hit:
		h.RecordDecision()
		if err := t.dealTo(i); err != nil {
			return err
		}
		if h.IsBust() {
			h.Close()
		}

	case Stand:
		h.RecordDecision()
		h.Close()

	case DoubleDown:
		t.bankroll -= h.Bet()
		h.DoubleBet()
		h.RecordDecision()
		if err := t.dealTo(i); err != nil {
			return err
		}
		h.Close()

	case Split:
		left, right, err := h.Split()
		if err != nil {
			return t.illegal(d, i, err.Error())
		}
		t.bankroll -= h.Bet()
		t.hands = slices.Replace(t.hands, i, i+1, left, right)
		if err := t.dealTo(i); err != nil {
			return err
		}
		if err := t.dealTo(i + 1); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) illegal(d Decision, i int, reason string) error {
	t.logger.Debug("Illegal decision", "decision", d, "hand", i, "reason", reason)
	return &IllegalDecisionError{Decision: d, HandIndex: i, Reason: reason}
}

func (t *Table) publishDecision(i int, d Decision) {
	t.bus.Publish(DecisionEvent{
		Round:     t.round,
		HandIndex: i,
		Decision:  d,
		Hand:      t.hands[i].View(),
		DealerUp:  t.dealer.UpCard(),
		timestamp: t.clock.Now(),
	})
}

// playDealer reveals and draws only when some hand is still live against
// the dealer.
func (t *Table) playDealer() error {
	live := slices.ContainsFunc(t.hands, func(h *hand.PlayerHand) bool {
		return !h.IsBust() && !h.IsBlackjack()
	})
	if !live {
		return nil
	}

	t.dealer.Reveal()
	for t.dealer.ShouldHit(t.rules.Casino.DealerHitsSoft17) {
		if err := t.dealToDealer(false); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) settle(bet int) *RoundResult {
	results := payout.Calculate(t.dealer, t.hands, t.rules.Casino)
	total := payout.Total(results)
	t.bankroll += total
	for _, h := range t.hands {
		h.Close()
	}
	t.tally.AddResults(results)
	t.handsPlayed += len(results)

	res := &RoundResult{
		Round:    t.round,
		Bet:      bet,
		Hands:    hand.Views(t.hands),
		Dealer:   t.dealer.View(),
		Results:  results,
		Payout:   total,
		Bankroll: t.bankroll,
	}

	t.bus.Publish(RoundSettledEvent{
		Round:     t.round,
		Dealer:    res.Dealer,
		Hands:     res.Hands,
		Results:   results,
		Bankroll:  t.bankroll,
		timestamp: t.clock.Now(),
	})
	t.logger.Debug("Round settled", "round", t.round, "hands", len(results), "payout", total, "bankroll", t.bankroll)
	return res
}

// clearTable returns every card on the table to the discard pile.
func (t *Table) clearTable() error {
	for _, h := range t.hands {
		for _, c := range h.Cards() {
			if err := t.shoe.Discard(c); err != nil {
				return err
			}
		}
	}
	for _, c := range t.dealer.Cards() {
		if err := t.shoe.Discard(c); err != nil {
			return err
		}
	}
	t.hands = nil
	t.dealer = nil
	return nil
}

func (t *Table) walkAway(res *RoundResult) (EndReason, bool) {
	if t.round >= t.rules.NumRounds {
		return EndMaxRounds, true
	}
	if t.bankroll < t.rules.MinBet {
		return EndBankrupt, true
	}
	if t.strategy.DecideToWalkAway(t.info(), res.Results, res.Dealer) {
		return EndWalkedAway, true
	}
	return 0, false
}

func (t *Table) transition(to State) {
	from := t.state
	t.state = to
	t.logger.Debug("State change", "round", t.round, "from", from, "to", to)
	t.bus.Publish(StateChangeEvent{Round: t.round, From: from, To: to, timestamp: t.clock.Now()})
}

func (t *Table) info() GameInfo {
	return GameInfo{
		TableName: t.rules.Name,
		Bankroll:  t.bankroll,
		MinBet:    t.rules.MinBet,
		MaxBet:    t.rules.MaxBet,
		Round:     t.round,
		MaxRounds: t.rules.NumRounds,
		NumDecks:  t.rules.NumDecks,
		Seed:      t.rules.DeckNumber,
		Casino:    t.rules.Casino,
	}
}

func (t *Table) summary(reason EndReason) *SessionSummary {
	s := &SessionSummary{
		Strategy:        t.strategy.Name(),
		Rules:           t.rules,
		Rounds:          t.round,
		HandsPlayed:     t.handsPlayed,
		InitialBankroll: t.rules.InitialMoney,
		FinalBankroll:   t.bankroll,
		Reason:          reason,
	}
	s.Tally.Merge(&t.tally)
	return s
}
