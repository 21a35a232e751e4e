package events

import (
	"context"
	"log/slog"

	"cozycup/internal/usecase/shared"
)

// LogPublisher records every event in the application log and hands it on to
// next when one is configured.
type LogPublisher struct {
	logger *slog.Logger
	next   shared.EventPublisher
}

func NewLogPublisher(logger *slog.Logger, next shared.EventPublisher) *LogPublisher {
	return &LogPublisher{logger: logger, next: next}
}

func (p *LogPublisher) Publish(ctx context.Context, e shared.Event) error {
	attrs := []any{"event_id", e.ID, "aggregate_id", e.AggregateID}
	if e.ActorID != nil {
		attrs = append(attrs, "actor_id", *e.ActorID)
	}
	p.logger.InfoContext(ctx, string(e.Type), attrs...)

	if p.next == nil {
		return nil
	}
	return p.next.Publish(ctx, e)
}
