//go:build unit || e2e

package memstore

import (
	"context"
	"sync"

	"cozycup/internal/usecase/shared"
)

// Publisher records every published event.
type Publisher struct {
	mu     sync.Mutex
	events []shared.Event
}

func (p *Publisher) Publish(_ context.Context, e shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *Publisher) Types() []shared.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
