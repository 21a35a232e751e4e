package commands

import (
	"context"
	"log/slog"

	"cozycup/internal/domain/policy"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/capacity"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateOrderInput struct {
	WindowID uuid.UUID
	Items    []LineItemInput
	Notes    string
}

type OrderCommands interface {
	Create(ctx context.Context, customerID uuid.UUID, in CreateOrderInput) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, caller Principal, orderID uuid.UUID, status string) (*queries.ReservationView, error)
}

type orderCommandsImpl struct {
	creator   *reservationCreator
	uow       shared.UnitOfWork
	windows   policy.CancelWindows
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	capacitySvc capacity.Service,
	calc reservation.PriceCalculator,
	windows policy.CancelWindows,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		creator: &reservationCreator{
			uow:      uow,
			capacity: capacitySvc,
			calc:     calc,
			clock:    clk,
			logger:   logger,
		},
		uow:       uow,
		windows:   windows,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (o *orderCommandsImpl) Create(ctx context.Context, customerID uuid.UUID, in CreateOrderInput) (*queries.ReservationView, error) {
	r, err := o.creator.create(ctx, reservation.KindOrder, customerID, in.WindowID, in.Items, in.Notes)
	if err != nil {
		return nil, err
	}

	publish(ctx, o.publisher, o.logger, shared.NewEvent(shared.EventOrderCreated, r.ID(), &customerID, r.CreatedAt(), map[string]any{
		"pickupWindowId": r.PoolID(),
		"totalCents":     r.Totals().TotalCents,
		"items":          len(r.Items()),
	}))
	return queries.NewReservationView(r), nil
}

// UpdateStatus moves an order along its lifecycle. Hosts may take any legal edge;
// a customer may only cancel their own CONFIRMED order inside the policy window.
// Leaving CONFIRMED for CANCELLED gives the pickup window its unit back in the same transaction.
func (o *orderCommandsImpl) UpdateStatus(ctx context.Context, caller Principal, orderID uuid.UUID, status string) (*queries.ReservationView, error) {
	to, err := reservation.NewStatus(reservation.KindOrder, status)
	if err != nil {
		return nil, errs.Validation("Invalid status %q", status)
	}

	var (
		updated *reservation.Reservation
		from    reservation.Status
	)
	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := o.clock.Now()
		r, err := tx.Reservations().FindByID(ctx, tx.DB(), reservation.KindOrder, orderID)
		if err != nil {
			return err
		}
		from = r.Status()

		if caller.IsHost() {
			if !policy.IsLegalTransition(reservation.KindOrder, from, to) {
				return errs.Conflict("Illegal status transition %s → %s", from, to)
			}
		} else if !r.IsOwnedBy(caller.UserID) ||
			!policy.CustomerTransitionAllowed(reservation.KindOrder, from, to, now, r.StartAt(), o.windows.Order) {
			return errs.Forbidden("Insufficient permissions to change status")
		}

		releases := r.HoldsCapacity() && to == reservation.StatusCancelled
		if err := r.MarkStatus(to, caller.actor(), now); err != nil {
			return validation(err)
		}

		ok, err := tx.Reservations().UpdateStatus(ctx, tx.DB(), r, from)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Conflict("Order status changed concurrently")
		}

		if releases {
			released, err := tx.Pools().Release(ctx, tx.DB(), r.Kind().PoolKind(), r.PoolID())
			if err != nil {
				return err
			}
			if !released {
				o.logger.Debug("release skipped, nothing booked", "pool_id", r.PoolID(), "order_id", r.ID())
			}
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Order not found")
	}

	publish(ctx, o.publisher, o.logger, shared.NewEvent(shared.EventOrderStatusChanged, updated.ID(), &caller.UserID, updated.UpdatedAt(), map[string]any{
		"from": from.String(),
		"to":   to.String(),
		"by":   caller.actor().String(),
	}))
	return queries.NewReservationView(updated), nil
}
