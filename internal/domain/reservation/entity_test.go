//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"cozycup/internal/domain/reservation"
	"cozycup/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedDiscount int64

func (f fixedDiscount) DiscountCents(uuid.UUID, int64) int64 { return int64(f) }

func TestNewReservation_Order(t *testing.T) {
	now := builder.BaseTime
	window := builder.NewPoolBuilder().Build()
	customerID := uuid.New()

	latte, err := reservation.NewLineItem(uuid.New(), "Latte", 1500, 2, []string{"oat"})
	require.NoError(t, err)
	cookie, err := reservation.NewLineItem(uuid.New(), "Cookie", 700, 1, nil)
	require.NoError(t, err)

	r, err := reservation.NewReservation(
		reservation.KindOrder, customerID, window,
		[]reservation.LineItem{latte, cookie},
		reservation.NewDefaultPriceCalculator(),
		"  no sugar  ", now,
	)
	require.NoError(t, err)

	want := reservation.Totals{SubtotalCents: 3700, DiscountCents: 0, TotalCents: 3700}
	if diff := cmp.Diff(want, r.Totals()); diff != "" {
		t.Errorf("Totals mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, reservation.StatusConfirmed, r.Status())
	assert.Equal(t, window.StartAt(), r.StartAt())
	assert.Equal(t, window.EndAt(), r.EndAt())
	assert.Equal(t, window.ID(), r.PoolID())
	assert.Equal(t, "no sugar", r.Notes())
	assert.True(t, r.HoldsCapacity())
	assert.True(t, r.IsOwnedBy(customerID))
}

func TestNewReservation_Booking(t *testing.T) {
	slot := builder.NewPoolBuilder().AsSlot().Build()

	r, err := reservation.NewReservation(
		reservation.KindBooking, uuid.New(), slot, nil,
		reservation.NewDefaultPriceCalculator(), "", builder.BaseTime,
	)
	require.NoError(t, err)

	assert.Equal(t, reservation.StatusBooked, r.Status())
	assert.Equal(t, reservation.Totals{}, r.Totals())
	assert.Empty(t, r.Items())
}

func TestNewReservation_Rejections(t *testing.T) {
	item := reservation.RestoreLineItem(uuid.New(), "Tea", 900, 1, nil)
	calc := reservation.NewDefaultPriceCalculator()

	tests := []struct {
		name  string
		kind  reservation.Kind
		slot  bool
		items []reservation.LineItem
		errIs error
	}{
		{"order without items NG", reservation.KindOrder, false, nil, reservation.ErrNoItems},
		{"booking with items NG", reservation.KindBooking, true, []reservation.LineItem{item}, reservation.ErrUnexpectedItems},
		{"order on a slot NG", reservation.KindOrder, true, []reservation.LineItem{item}, reservation.ErrPoolKindMismatch},
		{"booking on a pickup window NG", reservation.KindBooking, false, nil, reservation.ErrPoolKindMismatch},
		{"unknown kind NG", reservation.Kind("visit"), false, nil, reservation.ErrInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewPoolBuilder()
			if tt.slot {
				b.AsSlot()
			}
			r, err := reservation.NewReservation(tt.kind, uuid.New(), b.Build(), tt.items, calc, "", builder.BaseTime)
			require.Nil(t, r)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewReservation_NotesAreTruncated(t *testing.T) {
	slot := builder.NewPoolBuilder().AsSlot().Build()
	r, err := reservation.NewReservation(
		reservation.KindBooking, uuid.New(), slot, nil,
		reservation.NewDefaultPriceCalculator(), strings.Repeat("é", 350), builder.BaseTime,
	)
	require.NoError(t, err)
	assert.Equal(t, reservation.MaxNotesLength, len([]rune(r.Notes())))
}

func TestNewLineItem(t *testing.T) {
	tests := []struct {
		name  string
		qty   int
		price int64
		errIs error
	}{
		{"one OK", 1, 100, nil},
		{"hundred OK", 100, 100, nil},
		{"zero NG", 0, 100, reservation.ErrInvalidQuantity},
		{"hundred and one NG", 101, 100, reservation.ErrInvalidQuantity},
		{"negative price NG", 1, -1, reservation.ErrNegativePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			li, err := reservation.NewLineItem(uuid.New(), "x", tt.price, tt.qty, nil)
			if tt.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.price*int64(tt.qty), li.LineTotalCents())
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestPriceCalculator_DiscountNeverDrivesTotalNegative(t *testing.T) {
	items := []reservation.LineItem{reservation.RestoreLineItem(uuid.New(), "Scone", 500, 2, nil)}

	got := reservation.PriceCalculator{Discount: fixedDiscount(300)}.Calculate(uuid.New(), items)
	assert.Equal(t, reservation.Totals{SubtotalCents: 1000, DiscountCents: 300, TotalCents: 700}, got)

	got = reservation.PriceCalculator{Discount: fixedDiscount(5000)}.Calculate(uuid.New(), items)
	assert.Equal(t, int64(0), got.TotalCents)
}

func TestReservation_MarkStatus(t *testing.T) {
	now := builder.BaseTime.Add(time.Minute)

	t.Run("cancel stamps actor and time", func(t *testing.T) {
		r := builder.NewOrderBuilder().Build()

		require.NoError(t, r.MarkStatus(reservation.StatusCancelled, reservation.ActorCustomer, now))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
		require.NotNil(t, r.CancelledAt())
		assert.Equal(t, now, *r.CancelledAt())
		require.NotNil(t, r.CancelledBy())
		assert.Equal(t, reservation.ActorCustomer, *r.CancelledBy())
		assert.False(t, r.HoldsCapacity())
	})

	t.Run("progress leaves cancellation empty", func(t *testing.T) {
		r := builder.NewOrderBuilder().Build()

		require.NoError(t, r.MarkStatus(reservation.StatusInPrep, reservation.ActorHost, now))
		assert.Nil(t, r.CancelledAt())
		assert.Nil(t, r.CancelledBy())
	})

	t.Run("booking state on an order NG", func(t *testing.T) {
		r := builder.NewOrderBuilder().Build()
		require.ErrorIs(t, r.MarkStatus(reservation.StatusCheckedIn, reservation.ActorHost, now), reservation.ErrInvalidStatus)
	})
}

func TestReservation_MarkCheckedIn(t *testing.T) {
	now := builder.BaseTime.Add(time.Minute)

	r := builder.NewBookingBuilder().Build()
	require.NoError(t, r.MarkCheckedIn(reservation.ActorKiosk, now))
	assert.Equal(t, reservation.StatusCheckedIn, r.Status())
	require.NotNil(t, r.CheckedInBy())
	assert.Equal(t, reservation.ActorKiosk, *r.CheckedInBy())

	require.ErrorIs(t, r.MarkCheckedIn(reservation.ActorKiosk, now), reservation.ErrAlreadyTerminal)

	order := builder.NewOrderBuilder().Build()
	require.ErrorIs(t, order.MarkCheckedIn(reservation.ActorKiosk, now), reservation.ErrNotCheckInCapable)
}
