// Package events provides a small synchronous in-process pub/sub bus.
//
// Key characteristics:
// - Type-based fan-out: handlers subscribe by Event.Type string.
// - Synchronous delivery: Publish calls handlers in the caller goroutine,
//   which keeps the single-threaded frame loop free of cross-goroutine state.
// - Error aggregation: handler errors are joined and returned from Publish.
package events

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Well-known event types published by the engine.
const (
	TypeButtonToggled = "button.toggled"
	TypeMenuActivated = "menu.activated"
	TypeLevelLoaded   = "level.loaded"
	TypeLevelFailed   = "level.failed"
)

// Event is an immutable message. Data is an opaque payload for consumers.
type Event struct {
	Type      string
	Source    string
	Timestamp time.Time
	Data      any
}

// New builds an event stamped with the current time.
func New(eventType, source string, data any) Event {
	return Event{
		Type:      eventType,
		Source:    source,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// Handler is a user callback invoked per delivered event. A returned error
// is aggregated into the Publish result.
type Handler func(event Event) error

// Subscription is a handle for cancelling a registered handler.
type Subscription struct {
	id        string
	eventType string
}

// ID is a unique identifier for this subscription.
func (s Subscription) ID() string { return s.id }

// EventType returns the event type this subscription listens to.
func (s Subscription) EventType() string { return s.eventType }

type registration struct {
	id      string
	handler Handler
}

// Bus routes events to subscribed handlers. It is not safe for concurrent
// use; the engine owns it from the frame-loop goroutine.
type Bus struct {
	handlers map[string][]registration
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]registration)}
}

// Subscribe registers a handler for an event type and returns a handle
// usable with Unsubscribe.
func (b *Bus) Subscribe(eventType string, handler Handler) Subscription {
	reg := registration{id: uuid.NewString(), handler: handler}
	b.handlers[eventType] = append(b.handlers[eventType], reg)
	return Subscription{id: reg.id, eventType: eventType}
}

// Unsubscribe removes a previously registered handler. Unknown handles are
// ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	regs := b.handlers[sub.eventType]
	for i, reg := range regs {
		if reg.id == sub.id {
			b.handlers[sub.eventType] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every handler subscribed to its type, in
// subscription order. Handler errors are joined and returned.
func (b *Bus) Publish(event Event) error {
	var errs []error
	for _, reg := range b.handlers[event.Type] {
		if err := reg.handler(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
