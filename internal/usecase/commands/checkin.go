package commands

import (
	"context"
	"log/slog"

	"cozycup/internal/domain/policy"
	"cozycup/internal/domain/pool"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/infra"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/qrtoken"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"
)

type CheckInCommands interface {
	// CheckIn consumes a kiosk-scanned token. Scanning an already checked-in
	// booking again returns it unchanged.
	CheckIn(ctx context.Context, token string) (*queries.ReservationView, error)
}

type checkInCommandsImpl struct {
	uow       shared.UnitOfWork
	tokens    CheckInTokens
	window    policy.CheckInWindow
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewCheckInCommands(
	uow shared.UnitOfWork,
	tokens CheckInTokens,
	window policy.CheckInWindow,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) CheckInCommands {
	return &checkInCommandsImpl{
		uow:       uow,
		tokens:    tokens,
		window:    window,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (c *checkInCommandsImpl) CheckIn(ctx context.Context, token string) (*queries.ReservationView, error) {
	if token == "" {
		return nil, errs.Validation("Missing token")
	}
	claims, err := c.tokens.VerifyCheckIn(token)
	if err != nil {
		if errs.Is(err, qrtoken.ErrKeyMissing) {
			return nil, qrError(err)
		}
		return nil, errs.Forbidden("Invalid or expired QR token").WithCause(err)
	}
	customerID, err := claims.CustomerID()
	if err != nil {
		return nil, errs.Forbidden("Invalid or expired QR token").WithCause(err)
	}

	var (
		result   *reservation.Reservation
		switched bool
	)
	err = c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, tx.DB(), reservation.KindBooking, claims.BookingID)
		if err != nil {
			return err
		}
		if r.CustomerID() != customerID {
			return errs.Forbidden("Token does not match booking customer")
		}
		if r.PoolID() != claims.SlotID {
			return errs.Forbidden("Token does not match booking slot")
		}
		switch r.Status() {
		case reservation.StatusCancelled:
			return errs.Conflict("Booking has been cancelled")
		case reservation.StatusCheckedIn:
			result = r
			return nil
		}

		slot, err := tx.Pools().FindByID(ctx, tx.DB(), pool.KindSlot, r.PoolID())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		if slot == nil || !slot.Usable() {
			return errs.Conflict("Slot is no longer active")
		}

		now := c.clock.Now()
		if !c.window.Allows(now, r.StartAt(), r.EndAt()) {
			return errs.Forbidden("Check-in not allowed at this time (window: -%dm .. +%dm)",
				int(c.window.Early.Minutes()), int(c.window.LateGrace.Minutes()))
		}

		if err := r.MarkCheckedIn(reservation.ActorKiosk, now); err != nil {
			return errs.Conflict("Booking is not in BOOKED state").WithCause(err)
		}
		ok, err := tx.Reservations().UpdateStatus(ctx, tx.DB(), r, reservation.StatusBooked)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Conflict("Booking is not in BOOKED state")
		}
		result = r
		switched = true
		return nil
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Booking not found")
	}

	if switched {
		publish(ctx, c.publisher, c.logger, shared.NewEvent(shared.EventBookingCheckedIn, result.ID(), nil, c.clock.Now(), map[string]any{
			"slotId":     result.PoolID(),
			"customerId": result.CustomerID(),
		}))
	}
	return queries.NewReservationView(result), nil
}
