package ui

import (
	"context"
	"errors"
	"fmt"
)

// Event names.
const (
	EventSubmit = "submit"
	EventClick  = "click"
)

// ErrNoHandler is returned by Dispatch when nothing is subscribed.
var ErrNoHandler = errors.New("no handler subscribed")

// Handler reacts to one event.
type Handler func(ctx context.Context) error

type eventKey struct {
	target string
	event  string
}

// Bus maps (element ID, event name) pairs to handlers. Handlers run
// synchronously on the dispatching goroutine in subscription order.
type Bus struct {
	handlers map[eventKey][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[eventKey][]Handler)}
}

// Subscribe registers h for event on target.
func (b *Bus) Subscribe(target, event string, h Handler) {
	k := eventKey{target: target, event: event}
	b.handlers[k] = append(b.handlers[k], h)
}

// Dispatch runs every handler for event on target and stops at the first error.
func (b *Bus) Dispatch(ctx context.Context, target, event string) error {
	hs := b.handlers[eventKey{target: target, event: event}]
	if len(hs) == 0 {
		return fmt.Errorf("%s/%s: %w", target, event, ErrNoHandler)
	}
	for _, h := range hs {
		if err := h(ctx); err != nil {
			return fmt.Errorf("%s/%s: %w", target, event, err)
		}
	}
	return nil
}
