//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cozycup/internal/domain/reservation"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/shared"
	"cozycup/tests/common/builder"
	"cozycup/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	type testCase struct {
		name    string
		mutate  func(f *fixture, slot *builder.PoolBuilder, booking *builder.ReservationBuilder)
		token   func(t *testing.T, f *fixture, booking *reservation.Reservation) string
		errKind errs.Kind
		errMsg  string
	}

	mint := func(t *testing.T, f *fixture, b *reservation.Reservation) string {
		token, _, err := f.qr.MintCheckIn(b.ID(), b.PoolID(), b.CustomerID())
		require.NoError(t, err)
		return token
	}

	cases := []testCase{
		{name: "ten minutes early OK", mutate: func(f *fixture, _ *builder.PoolBuilder, _ *builder.ReservationBuilder) {
			f.clock.Set(builder.BaseTime.Add(2*time.Hour - 10*time.Minute))
		}},
		{name: "thirty minutes after end OK", mutate: func(f *fixture, _ *builder.PoolBuilder, _ *builder.ReservationBuilder) {
			f.clock.Set(builder.BaseTime.Add(3*time.Hour + 30*time.Minute))
		}},
		{name: "eleven minutes early NG", mutate: func(f *fixture, _ *builder.PoolBuilder, _ *builder.ReservationBuilder) {
			f.clock.Set(builder.BaseTime.Add(2*time.Hour - 11*time.Minute))
		}, errKind: errs.KindForbidden, errMsg: "Check-in not allowed at this time (window: -10m .. +30m)"},
		{name: "cancelled booking NG", mutate: func(f *fixture, _ *builder.PoolBuilder, b *builder.ReservationBuilder) {
			b.InStatus(reservation.StatusCancelled)
		}, errKind: errs.KindConflict, errMsg: "Booking has been cancelled"},
		{name: "deleted slot NG", mutate: func(_ *fixture, s *builder.PoolBuilder, _ *builder.ReservationBuilder) {
			s.Deleted()
		}, errKind: errs.KindConflict, errMsg: "Slot is no longer active"},
		{name: "inactive slot NG", mutate: func(_ *fixture, s *builder.PoolBuilder, _ *builder.ReservationBuilder) {
			s.Inactive()
		}, errKind: errs.KindConflict, errMsg: "Slot is no longer active"},
		{name: "token for another customer NG", token: func(t *testing.T, f *fixture, b *reservation.Reservation) string {
			token, _, err := f.qr.MintCheckIn(b.ID(), b.PoolID(), uuid.New())
			require.NoError(t, err)
			return token
		}, errKind: errs.KindForbidden, errMsg: "Token does not match booking customer"},
		{name: "token for another slot NG", token: func(t *testing.T, f *fixture, b *reservation.Reservation) string {
			token, _, err := f.qr.MintCheckIn(b.ID(), uuid.New(), b.CustomerID())
			require.NoError(t, err)
			return token
		}, errKind: errs.KindForbidden, errMsg: "Token does not match booking slot"},
		{name: "token for unknown booking NG", token: func(t *testing.T, f *fixture, b *reservation.Reservation) string {
			token, _, err := f.qr.MintCheckIn(uuid.New(), b.PoolID(), b.CustomerID())
			require.NoError(t, err)
			return token
		}, errKind: errs.KindNotFound, errMsg: "Booking not found"},
		{name: "token signed by another key NG", token: func(t *testing.T, f *fixture, b *reservation.Reservation) string {
			token, _, err := testutil.NewQRService(t, f.clock).MintCheckIn(b.ID(), b.PoolID(), b.CustomerID())
			require.NoError(t, err)
			return token
		}, errKind: errs.KindForbidden, errMsg: "Invalid or expired QR token"},
		{name: "expired token NG", token: func(t *testing.T, f *fixture, b *reservation.Reservation) string {
			token := mint(t, f, b)
			f.clock.Add(11 * time.Minute)
			return token
		}, errKind: errs.KindForbidden, errMsg: "Invalid or expired QR token"},
		{name: "garbage token NG", token: func(*testing.T, *fixture, *reservation.Reservation) string {
			return "not-a-jwt"
		}, errKind: errs.KindForbidden, errMsg: "Invalid or expired QR token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			sb := builder.NewPoolBuilder().AsSlot().WithCapacity(4, 1)
			sb.StartAt = builder.BaseTime.Add(2 * time.Hour)
			sb.EndAt = builder.BaseTime.Add(3 * time.Hour)
			bb := builder.NewBookingBuilder()
			f.clock.Set(builder.BaseTime.Add(2 * time.Hour))
			if tc.mutate != nil {
				tc.mutate(f, sb, bb)
			}
			slot := sb.Build()
			booking := bb.OnPool(slot.ID()).StartingAt(slot.StartAt(), time.Hour).Build()
			f.store.PutPool(slot)
			f.store.PutReservation(booking)

			tokenFn := mint
			if tc.token != nil {
				tokenFn = tc.token
			}
			token := tokenFn(t, f, booking)

			got, err := f.checkIn.CheckIn(ctx, token)
			if tc.errKind != "" {
				requireAppErr(t, err, tc.errKind, tc.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservation.StatusCheckedIn.String(), got.Status)
			require.NotNil(t, got.CheckedInBy)
			assert.Equal(t, "kiosk", *got.CheckedInBy)
			assert.Equal(t, 1, f.store.Pool(slot.ID()).BookedCount())
		})
	}

	t.Run("second scan returns the same record OK", func(t *testing.T) {
		f := newFixture(t)
		slot := builder.NewPoolBuilder().AsSlot().Build()
		booking := builder.NewBookingBuilder().OnPool(slot.ID()).StartingAt(slot.StartAt(), time.Hour).Build()
		f.store.PutPool(slot)
		f.store.PutReservation(booking)
		f.clock.Set(slot.StartAt())
		token := mint(t, f, booking)

		first, err := f.checkIn.CheckIn(ctx, token)
		require.NoError(t, err)
		f.clock.Add(time.Minute)
		second, err := f.checkIn.CheckIn(ctx, token)
		require.NoError(t, err)

		assert.Equal(t, first.CheckedInAt, second.CheckedInAt)
		assert.Equal(t, []shared.EventType{shared.EventBookingCheckedIn}, f.publisher.Types())
	})

	t.Run("empty token NG", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.checkIn.CheckIn(ctx, "")
		requireAppErr(t, err, errs.KindValidation, "Missing token")
	})
}
