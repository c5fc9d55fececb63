package game

import (
	"time"

	"github.com/lox/blackjack/internal/audio"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeSnapshot   EventType = "snapshot"
	EventTypeCue        EventType = "cue"
	EventTypeShuffle    EventType = "shuffle"
	EventTypeOutcome    EventType = "outcome"
	EventTypeBankruptcy EventType = "bankruptcy"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents any event published by a game session
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// SnapshotEvent is published after every state mutation. The snapshot is
// deep-copied plain data; subscribers must treat it as read-only.
type SnapshotEvent struct {
	Snapshot  Snapshot
	timestamp time.Time
}

func (e SnapshotEvent) EventType() EventType { return EventTypeSnapshot }
func (e SnapshotEvent) Timestamp() time.Time { return e.timestamp }

// CueEvent asks the audio layer to play a named sound. Fire-and-forget.
type CueEvent struct {
	Cue       audio.Cue
	timestamp time.Time
}

func (e CueEvent) EventType() EventType { return EventTypeCue }
func (e CueEvent) Timestamp() time.Time { return e.timestamp }

// ShuffleEvent is published when the shoe is rebuilt before a deal.
type ShuffleEvent struct {
	timestamp time.Time
}

func (e ShuffleEvent) EventType() EventType { return EventTypeShuffle }
func (e ShuffleEvent) Timestamp() time.Time { return e.timestamp }

// OutcomeEvent is published when a hand resolves.
type OutcomeEvent struct {
	Resolution Resolution
	timestamp  time.Time
}

func (e OutcomeEvent) EventType() EventType { return EventTypeOutcome }
func (e OutcomeEvent) Timestamp() time.Time { return e.timestamp }

// BankruptcyEvent is published when the balance hits zero and the
// session is reset to the default starting cash.
type BankruptcyEvent struct {
	FinalScore int
	timestamp  time.Time
}

func (e BankruptcyEvent) EventType() EventType { return EventTypeBankruptcy }
func (e BankruptcyEvent) Timestamp() time.Time { return e.timestamp }

// Subscriber can subscribe to game events
type Subscriber interface {
	OnEvent(event Event)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber Subscriber)
	Unsubscribe(subscriber Subscriber)
	Publish(event Event)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []Subscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]Subscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber Subscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber Subscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// CuePlayer bridges CueEvents to an audio.Player.
type CuePlayer struct {
	Player audio.Player
}

// OnEvent implements Subscriber.
func (c CuePlayer) OnEvent(event Event) {
	if e, ok := event.(CueEvent); ok {
		c.Player.Play(e.Cue)
	}
}
