package commands

import (
	"context"
	"log/slog"

	"cozycup/internal/domain/menu"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/capacity"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type LineItemInput struct {
	MenuItemID uuid.UUID
	Quantity   int
	Variants   []string
}

// reservationCreator runs the create flow shared by orders and bookings. The
// capacity unit is taken first; every failure after that gives it back exactly once.
type reservationCreator struct {
	uow      shared.UnitOfWork
	capacity capacity.Service
	calc     reservation.PriceCalculator
	clock    clock.Clock
	logger   *slog.Logger
}

func (c *reservationCreator) create(
	ctx context.Context,
	kind reservation.Kind,
	customerID, poolID uuid.UUID,
	lines []LineItemInput,
	notes string,
) (*reservation.Reservation, error) {
	p, err := c.capacity.Reserve(ctx, kind.PoolKind(), poolID)
	if err != nil {
		return nil, err
	}

	r, err := c.persist(ctx, kind, lines, func(items []reservation.LineItem) (*reservation.Reservation, error) {
		return reservation.NewReservation(kind, customerID, p, items, c.calc, notes, c.clock.Now())
	})
	if err != nil {
		if relErr := c.capacity.Release(ctx, kind.PoolKind(), poolID); relErr != nil {
			c.logger.Error("compensating release failed",
				"kind", kind, "pool_id", poolID, "customer_id", customerID,
				"error", relErr.Error(), "cause", err.Error())
		}
		return nil, err
	}
	return r, nil
}

func (c *reservationCreator) persist(
	ctx context.Context,
	kind reservation.Kind,
	lines []LineItemInput,
	build func(items []reservation.LineItem) (*reservation.Reservation, error),
) (*reservation.Reservation, error) {
	var items []reservation.LineItem
	if kind.HasLineItems() {
		var err error
		items, err = c.snapshotItems(ctx, lines)
		if err != nil {
			return nil, err
		}
	}

	r, err := build(items)
	if err != nil {
		return nil, validation(err)
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, tx.DB(), r)
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, kind.Label()+" not found")
	}
	return r, nil
}

// snapshotItems copies name and unit price from the current menu so later
// menu edits never change what the customer was charged.
func (c *reservationCreator) snapshotItems(ctx context.Context, lines []LineItemInput) ([]reservation.LineItem, error) {
	if len(lines) == 0 {
		return nil, validation(reservation.ErrNoItems)
	}

	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.MenuItemID]; ok {
			continue
		}
		seen[l.MenuItemID] = struct{}{}
		ids = append(ids, l.MenuItemID)
	}

	var found []*menu.Item
	err := c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.MenuItems().FindOrderable(ctx, tx.DB(), ids)
		return err
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Menu item not found")
	}

	byID := make(map[uuid.UUID]*menu.Item, len(found))
	for _, it := range found {
		if it.Orderable() {
			byID[it.ID()] = it
		}
	}
	if len(byID) != len(ids) {
		return nil, errs.Validation("Some menu items are not available")
	}

	items := make([]reservation.LineItem, 0, len(lines))
	for _, l := range lines {
		it := byID[l.MenuItemID]
		li, err := reservation.NewLineItem(it.ID(), it.Name(), it.PriceCents(), l.Quantity, l.Variants)
		if err != nil {
			return nil, validation(err)
		}
		items = append(items, li)
	}
	return items, nil
}

func publish(ctx context.Context, publisher shared.EventPublisher, logger *slog.Logger, e shared.Event) {
	if err := publisher.Publish(ctx, e); err != nil {
		logger.Warn("failed to publish event", "type", e.Type, "aggregate_id", e.AggregateID, "error", err.Error())
	}
}
