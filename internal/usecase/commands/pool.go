package commands

import (
	"context"
	"log/slog"

	"cozycup/internal/domain/pool"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type PoolCommands interface {
	Create(ctx context.Context, caller Principal, p pool.Params) (*queries.PoolView, error)
	Patch(ctx context.Context, caller Principal, kind pool.Kind, id uuid.UUID, ch pool.Patch) (*queries.PoolView, error)
}

type poolCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewPoolCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, logger *slog.Logger) PoolCommands {
	return &poolCommandsImpl{uow: uow, publisher: publisher, clock: clk, logger: logger}
}

func (c *poolCommandsImpl) Create(ctx context.Context, caller Principal, params pool.Params) (*queries.PoolView, error) {
	p, err := pool.NewPool(params, c.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pools().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, params.Kind.Label()+" not found")
	}

	publish(ctx, c.publisher, c.logger, shared.NewEvent(shared.EventPoolCreated, p.ID(), &caller.UserID, p.CreatedAt(), map[string]any{
		"kind":     p.Kind().String(),
		"capacity": p.Capacity(),
	}))
	return queries.NewPoolView(p), nil
}

// Patch edits, closes, reactivates or soft-deletes a pool. The row is locked
// so a concurrent reserve cannot slip between the bookedCount read and the capacity check.
func (c *poolCommandsImpl) Patch(ctx context.Context, caller Principal, kind pool.Kind, id uuid.UUID, ch pool.Patch) (*queries.PoolView, error) {
	if ch.IsEmpty() {
		return nil, validation(pool.ErrEmptyPatch)
	}

	var updated *pool.Pool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Pools().FindByIDForUpdate(ctx, tx.DB(), kind, id)
		if err != nil {
			return err
		}
		if err := p.ApplyPatch(ch, c.clock.Now()); err != nil {
			return validation(err)
		}
		if err := tx.Pools().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, kind.Label()+" not found")
	}

	publish(ctx, c.publisher, c.logger, shared.NewEvent(shared.EventPoolUpdated, updated.ID(), &caller.UserID, updated.UpdatedAt(), map[string]any{
		"kind":   updated.Kind().String(),
		"status": updated.Status().String(),
	}))
	return queries.NewPoolView(updated), nil
}
