package commands

import (
	"context"
	"log/slog"

	"cozycup/internal/domain/menu"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type MenuCommands interface {
	Create(ctx context.Context, caller Principal, p menu.Params) (*queries.MenuItemView, error)
	Patch(ctx context.Context, caller Principal, id uuid.UUID, ch menu.Patch) (*queries.MenuItemView, error)
}

type menuCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewMenuCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, logger *slog.Logger) MenuCommands {
	return &menuCommandsImpl{uow: uow, publisher: publisher, clock: clk, logger: logger}
}

func (c *menuCommandsImpl) Create(ctx context.Context, caller Principal, params menu.Params) (*queries.MenuItemView, error) {
	it, err := menu.NewItem(params, c.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.MenuItems().Create(ctx, tx.DB(), it)
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Menu item not found")
	}

	publish(ctx, c.publisher, c.logger, shared.NewEvent(shared.EventMenuItemCreated, it.ID(), &caller.UserID, it.CreatedAt(), map[string]any{
		"name":       it.Name(),
		"priceCents": it.PriceCents(),
	}))
	return queries.NewMenuItemView(it), nil
}

func (c *menuCommandsImpl) Patch(ctx context.Context, caller Principal, id uuid.UUID, ch menu.Patch) (*queries.MenuItemView, error) {
	if ch.IsEmpty() {
		return nil, validation(menu.ErrEmptyPatch)
	}

	var updated *menu.Item
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.MenuItems().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := it.ApplyPatch(ch, c.clock.Now()); err != nil {
			return validation(err)
		}
		if err := tx.MenuItems().Update(ctx, tx.DB(), it); err != nil {
			return err
		}
		updated = it
		return nil
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Menu item not found")
	}

	publish(ctx, c.publisher, c.logger, shared.NewEvent(shared.EventMenuItemUpdated, updated.ID(), &caller.UserID, updated.UpdatedAt(), nil))
	return queries.NewMenuItemView(updated), nil
}
