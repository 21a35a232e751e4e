package commands

import (
	"context"
	"log/slog"
	"time"

	"cozycup/internal/domain/policy"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/qrtoken"
	"cozycup/internal/usecase/capacity"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	SlotID uuid.UUID
	Notes  string
}

type QRToken struct {
	Token     string
	ExpiresAt time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, customerID uuid.UUID, in CreateBookingInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, caller Principal, bookingID uuid.UUID) (*queries.ReservationView, error)
	MintCheckInToken(ctx context.Context, caller Principal, bookingID uuid.UUID) (*QRToken, error)
}

// CheckInTokens is the part of the QR service bookings need.
type CheckInTokens interface {
	MintCheckIn(bookingID, slotID, customerID uuid.UUID) (string, time.Time, error)
	VerifyCheckIn(token string) (*qrtoken.CheckInClaims, error)
}

type bookingCommandsImpl struct {
	creator   *reservationCreator
	uow       shared.UnitOfWork
	windows   policy.CancelWindows
	tokens    CheckInTokens
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	capacitySvc capacity.Service,
	windows policy.CancelWindows,
	tokens CheckInTokens,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		creator: &reservationCreator{
			uow:      uow,
			capacity: capacitySvc,
			calc:     reservation.NewDefaultPriceCalculator(),
			clock:    clk,
			logger:   logger,
		},
		uow:       uow,
		windows:   windows,
		tokens:    tokens,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, customerID uuid.UUID, in CreateBookingInput) (*queries.ReservationView, error) {
	r, err := b.creator.create(ctx, reservation.KindBooking, customerID, in.SlotID, nil, in.Notes)
	if err != nil {
		return nil, err
	}

	publish(ctx, b.publisher, b.logger, shared.NewEvent(shared.EventBookingCreated, r.ID(), &customerID, r.CreatedAt(), map[string]any{
		"slotId": r.PoolID(),
	}))
	return queries.NewReservationView(r), nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, caller Principal, bookingID uuid.UUID) (*queries.ReservationView, error) {
	var cancelled *reservation.Reservation
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := b.clock.Now()
		r, err := tx.Reservations().FindByID(ctx, tx.DB(), reservation.KindBooking, bookingID)
		if err != nil {
			return err
		}
		if r.Status() != reservation.StatusBooked {
			return errs.Conflict("Booking is not active")
		}
		if !caller.IsHost() &&
			(!r.IsOwnedBy(caller.UserID) || !policy.CustomerCanCancel(now, r.StartAt(), b.windows.Booking)) {
			return errs.Forbidden("Cannot cancel (policy)")
		}

		if err := r.MarkStatus(reservation.StatusCancelled, caller.actor(), now); err != nil {
			return validation(err)
		}
		ok, err := tx.Reservations().UpdateStatus(ctx, tx.DB(), r, reservation.StatusBooked)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Conflict("Booking is not active")
		}

		released, err := tx.Pools().Release(ctx, tx.DB(), r.Kind().PoolKind(), r.PoolID())
		if err != nil {
			return err
		}
		if !released {
			b.logger.Debug("release skipped, nothing booked", "pool_id", r.PoolID(), "booking_id", r.ID())
		}
		cancelled = r
		return nil
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Booking not found")
	}

	publish(ctx, b.publisher, b.logger, shared.NewEvent(shared.EventBookingCancelled, cancelled.ID(), &caller.UserID, cancelled.UpdatedAt(), map[string]any{
		"slotId": cancelled.PoolID(),
		"by":     caller.actor().String(),
	}))
	return queries.NewReservationView(cancelled), nil
}

// MintCheckInToken signs the QR the kiosk scans. Only the owner of a BOOKED booking gets one.
func (b *bookingCommandsImpl) MintCheckInToken(ctx context.Context, caller Principal, bookingID uuid.UUID) (*QRToken, error) {
	var r *reservation.Reservation
	err := b.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		r, err = tx.Reservations().FindByID(ctx, tx.DB(), reservation.KindBooking, bookingID)
		return err
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Booking not found")
	}
	if !r.IsOwnedBy(caller.UserID) {
		return nil, errs.Forbidden("Not your booking")
	}
	if r.Status() != reservation.StatusBooked {
		return nil, errs.Conflict("Booking is not active")
	}

	token, exp, err := b.tokens.MintCheckIn(r.ID(), r.PoolID(), r.CustomerID())
	if err != nil {
		return nil, qrError(err)
	}
	return &QRToken{Token: token, ExpiresAt: exp}, nil
}

func qrError(err error) error {
	if errs.Is(err, qrtoken.ErrKeyMissing) {
		return errs.ServerConfig("QR signing key is not configured").WithCause(err)
	}
	return errs.Internal(err, "Failed to sign QR token")
}
