// Package events implements synchronous, in-process publish/subscribe.
package events

import (
	"fmt"
	"sort"
)

// Listener receives the payload of a published event. A non-nil error stops
// publication and is returned to the publisher.
type Listener[T any] func(payload T) error

// UnknownEventError is returned when subscribing to or publishing an event the
// channel was not constructed with.
type UnknownEventError struct {
	Event string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event %q", e.Event)
}

type subscription[T any] struct {
	id int
	fn Listener[T]
}

// Channel dispatches a fixed set of named events to subscribers.
// It is not safe for concurrent use.
type Channel[T any] struct {
	listeners map[string][]subscription[T]
	nextID    int
}

// NewChannel returns a channel that can emit exactly the given events.
func NewChannel[T any](events ...string) *Channel[T] {
	c := &Channel[T]{listeners: make(map[string][]subscription[T], len(events))}
	for _, ev := range events {
		c.listeners[ev] = nil
	}
	return c
}

// Events returns the names this channel can emit, sorted.
func (c *Channel[T]) Events() []string {
	names := make([]string, 0, len(c.listeners))
	for ev := range c.listeners {
		names = append(names, ev)
	}
	sort.Strings(names)
	return names
}

// Subscribe registers fn for event. The returned function removes it again.
func (c *Channel[T]) Subscribe(event string, fn Listener[T]) (func(), error) {
	subs, ok := c.listeners[event]
	if !ok {
		return nil, &UnknownEventError{Event: event}
	}
	c.nextID++
	id := c.nextID
	c.listeners[event] = append(subs, subscription[T]{id: id, fn: fn})

	return func() { c.unsubscribe(event, id) }, nil
}

func (c *Channel[T]) unsubscribe(event string, id int) {
	subs := c.listeners[event]
	for i, s := range subs {
		if s.id == id {
			c.listeners[event] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish invokes the subscribers of event in subscription order.
func (c *Channel[T]) Publish(event string, payload T) error {
	subs, ok := c.listeners[event]
	if !ok {
		return &UnknownEventError{Event: event}
	}
	// Listeners may unsubscribe while being notified.
	snapshot := append([]subscription[T](nil), subs...)
	for _, s := range snapshot {
		if err := s.fn(payload); err != nil {
			return fmt.Errorf("%s listener: %w", event, err)
		}
	}
	return nil
}
