package game

import (
	"time"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/hand"
	"github.com/lox/blackjackforbots/internal/payout"
)

// EventType identifies a table event.
type EventType string

const (
	EventTypeStateChange  EventType = "state_change"
	EventTypeBetPlaced    EventType = "bet_placed"
	EventTypeCardDealt    EventType = "card_dealt"
	EventTypeDecision     EventType = "decision"
	EventTypeRoundSettled EventType = "round_settled"
	EventTypeSessionEnd   EventType = "session_end"
)

func (et EventType) String() string {
	return string(et)
}

// Event is anything published on the table's event bus.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// StateChangeEvent is published on every state transition.
type StateChangeEvent struct {
	Round     int
	From      State
	To        State
	timestamp time.Time
}

func (e StateChangeEvent) EventType() EventType { return EventTypeStateChange }
func (e StateChangeEvent) Timestamp() time.Time { return e.timestamp }

// BetPlacedEvent is published once the opening bet has been accepted.
type BetPlacedEvent struct {
	Round     int
	Bet       int
	Bankroll  int
	timestamp time.Time
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }
func (e BetPlacedEvent) Timestamp() time.Time { return e.timestamp }

// CardDealtEvent is published after each card leaves the shoe.
// HandIndex is -1 for the dealer. A hidden card has a zero Card.
type CardDealtEvent struct {
	Round     int
	HandIndex int
	Card      deck.Card
	Hidden    bool
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// ToDealer reports whether the card went to the dealer.
func (e CardDealtEvent) ToDealer() bool { return e.HandIndex < 0 }

// DecisionEvent is published when a strategy decision has been accepted,
// before it is applied.
type DecisionEvent struct {
	Round     int
	HandIndex int
	Decision  Decision
	Hand      hand.View
	DealerUp  deck.Card
	timestamp time.Time
}

func (e DecisionEvent) EventType() EventType { return EventTypeDecision }
func (e DecisionEvent) Timestamp() time.Time { return e.timestamp }

// RoundSettledEvent carries the settlement of every hand in a round.
type RoundSettledEvent struct {
	Round     int
	Dealer    hand.DealerView
	Hands     []hand.View
	Results   []payout.Result
	Bankroll  int
	timestamp time.Time
}

func (e RoundSettledEvent) EventType() EventType { return EventTypeRoundSettled }
func (e RoundSettledEvent) Timestamp() time.Time { return e.timestamp }

// SessionEndEvent is published once, when the session stops.
type SessionEndEvent struct {
	Rounds    int
	Bankroll  int
	Reason    EndReason
	timestamp time.Time
}

func (e SessionEndEvent) EventType() EventType { return EventTypeSessionEnd }
func (e SessionEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber receives table events.
type EventSubscriber interface {
	OnEvent(event Event)
}

// SubscriberFunc adapts a function to EventSubscriber.
type SubscriberFunc func(event Event)

func (f SubscriberFunc) OnEvent(event Event) { f(event) }

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus delivers events synchronously in registration order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates an empty event bus.
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers.
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

