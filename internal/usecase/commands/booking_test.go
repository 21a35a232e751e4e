//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cozycup/internal/domain/reservation"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/shared"
	"cozycup/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("books a unit and copies the slot window OK", func(t *testing.T) {
		f := newFixture(t)
		slot := builder.NewPoolBuilder().AsSlot().WithCapacity(4, 0).Build()
		f.store.PutPool(slot)
		customerID := uuid.New()

		got, err := f.bookings.Create(ctx, customerID, commands.CreateBookingInput{SlotID: slot.ID(), Notes: "window seat"})
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusBooked.String(), got.Status)
		assert.Equal(t, customerID, got.CustomerID)
		assert.Equal(t, slot.StartAt(), got.StartAt)
		assert.Empty(t, got.Items)
		assert.Equal(t, 1, f.store.Pool(slot.ID()).BookedCount())
		assert.Equal(t, []shared.EventType{shared.EventBookingCreated}, f.publisher.Types())
	})

	t.Run("full slot NG", func(t *testing.T) {
		f := newFixture(t)
		slot := builder.NewPoolBuilder().AsSlot().WithCapacity(1, 1).Build()
		f.store.PutPool(slot)

		_, err := f.bookings.Create(ctx, uuid.New(), commands.CreateBookingInput{SlotID: slot.ID()})
		requireAppErr(t, err, errs.KindConflict, "Slot is full")
		assert.Zero(t, f.store.ReservationCount())
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	type testCase struct {
		name    string
		caller  commands.Principal
		status  reservation.Status
		startIn time.Duration
		errKind errs.Kind
		errMsg  string
	}

	cases := []testCase{
		{name: "owner cancels ahead of the window OK", caller: customer(owner), status: reservation.StatusBooked, startIn: time.Hour},
		{name: "host cancels late OK", caller: host(), status: reservation.StatusBooked, startIn: 5 * time.Minute},
		{name: "owner cancels too late NG", caller: customer(owner), status: reservation.StatusBooked, startIn: 10 * time.Minute,
			errKind: errs.KindForbidden, errMsg: "Cannot cancel (policy)"},
		{name: "stranger cancels NG", caller: customer(uuid.New()), status: reservation.StatusBooked, startIn: time.Hour,
			errKind: errs.KindForbidden, errMsg: "Cannot cancel (policy)"},
		{name: "already cancelled NG", caller: customer(owner), status: reservation.StatusCancelled, startIn: time.Hour,
			errKind: errs.KindConflict, errMsg: "Booking is not active"},
		{name: "checked in NG", caller: host(), status: reservation.StatusCheckedIn, startIn: time.Hour,
			errKind: errs.KindConflict, errMsg: "Booking is not active"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			slot := builder.NewPoolBuilder().AsSlot().WithCapacity(2, 1).StartingIn(tc.startIn).Build()
			booking := builder.NewBookingBuilder().OwnedBy(owner).OnPool(slot.ID()).InStatus(tc.status).
				StartingAt(slot.StartAt(), time.Hour).Build()
			f.store.PutPool(slot)
			f.store.PutReservation(booking)

			got, err := f.bookings.Cancel(ctx, tc.caller, booking.ID())
			if tc.errKind != "" {
				requireAppErr(t, err, tc.errKind, tc.errMsg)
				assert.Equal(t, 1, f.store.Pool(slot.ID()).BookedCount())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservation.StatusCancelled.String(), got.Status)
			require.NotNil(t, got.CancelledBy)
			assert.Equal(t, 0, f.store.Pool(slot.ID()).BookedCount())
			assert.Equal(t, []shared.EventType{shared.EventBookingCancelled}, f.publisher.Types())
		})
	}

	t.Run("missing booking NG", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.Cancel(ctx, customer(owner), uuid.New())
		requireAppErr(t, err, errs.KindNotFound, "Booking not found")
	})

	t.Run("an order id is not a booking NG", func(t *testing.T) {
		f := newFixture(t)
		order := builder.NewOrderBuilder().OwnedBy(owner).Build()
		f.store.PutReservation(order)

		_, err := f.bookings.Cancel(ctx, customer(owner), order.ID())
		requireAppErr(t, err, errs.KindNotFound, "Booking not found")
	})
}

func TestMintCheckInToken(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("owner gets a verifiable token OK", func(t *testing.T) {
		f := newFixture(t)
		booking := builder.NewBookingBuilder().OwnedBy(owner).Build()
		f.store.PutReservation(booking)

		got, err := f.bookings.MintCheckInToken(ctx, customer(owner), booking.ID())
		require.NoError(t, err)
		assert.Equal(t, builder.BaseTime.Add(10*time.Minute), got.ExpiresAt)

		claims, err := f.qr.VerifyCheckIn(got.Token)
		require.NoError(t, err)
		assert.Equal(t, booking.ID(), claims.BookingID)
		assert.Equal(t, booking.PoolID(), claims.SlotID)
	})

	t.Run("someone else's booking NG", func(t *testing.T) {
		f := newFixture(t)
		booking := builder.NewBookingBuilder().OwnedBy(owner).Build()
		f.store.PutReservation(booking)

		_, err := f.bookings.MintCheckInToken(ctx, customer(uuid.New()), booking.ID())
		requireAppErr(t, err, errs.KindForbidden, "Not your booking")
	})

	t.Run("cancelled booking NG", func(t *testing.T) {
		f := newFixture(t)
		booking := builder.NewBookingBuilder().OwnedBy(owner).InStatus(reservation.StatusCancelled).Build()
		f.store.PutReservation(booking)

		_, err := f.bookings.MintCheckInToken(ctx, customer(owner), booking.ID())
		requireAppErr(t, err, errs.KindConflict, "Booking is not active")
	})
}
