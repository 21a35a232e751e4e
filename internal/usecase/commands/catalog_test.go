//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cozycup/internal/domain/menu"
	"cozycup/internal/domain/pool"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/patch"
	"cozycup/internal/usecase/shared"
	"cozycup/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePool(t *testing.T) {
	ctx := context.Background()
	start := builder.BaseTime.Add(24 * time.Hour)

	cases := []struct {
		name   string
		params pool.Params
		errMsg string
	}{
		{name: "slot OK", params: pool.Params{Kind: pool.KindSlot, StartAt: start, EndAt: start.Add(time.Hour), Capacity: 8, IsActive: true}},
		{name: "zero capacity pickup window OK", params: pool.Params{Kind: pool.KindPickupWindow, StartAt: start, EndAt: start.Add(time.Hour)}},
		{name: "inverted window NG", params: pool.Params{Kind: pool.KindSlot, StartAt: start, EndAt: start, Capacity: 1},
			errMsg: pool.ErrInvalidWindow.Error()},
		{name: "negative capacity NG", params: pool.Params{Kind: pool.KindSlot, StartAt: start, EndAt: start.Add(time.Hour), Capacity: -1},
			errMsg: pool.ErrNegativeCapacity.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			got, err := f.pools.Create(ctx, host(), tc.params)
			if tc.errMsg != "" {
				requireAppErr(t, err, errs.KindValidation, tc.errMsg)
				assert.Empty(t, f.publisher.Types())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.params.Capacity, got.Remaining)
			assert.Equal(t, pool.StatusOpen.String(), got.Status)
			require.NotNil(t, f.store.Pool(got.ID))
			assert.Equal(t, []shared.EventType{shared.EventPoolCreated}, f.publisher.Types())
		})
	}
}

func TestPatchPool(t *testing.T) {
	ctx := context.Background()

	t.Run("close and shrink to booked OK", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPoolBuilder().AsSlot().WithCapacity(6, 2).Build()
		f.store.PutPool(p)

		got, err := f.pools.Patch(ctx, host(), pool.KindSlot, p.ID(), pool.Patch{
			Capacity: patch.Ptr(2),
			Status:   patch.Ptr(pool.StatusClosed),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, got.Capacity)
		assert.Equal(t, 0, got.Remaining)
		assert.Equal(t, pool.StatusClosed.String(), got.Status)
		assert.Equal(t, 2, f.store.Pool(p.ID()).Capacity())
	})

	t.Run("capacity below booked NG", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPoolBuilder().WithCapacity(6, 3).Build()
		f.store.PutPool(p)

		_, err := f.pools.Patch(ctx, host(), pool.KindPickupWindow, p.ID(), pool.Patch{Capacity: patch.Ptr(2)})
		requireAppErr(t, err, errs.KindValidation, pool.ErrCapacityBelowBooked.Error())
		assert.Equal(t, 6, f.store.Pool(p.ID()).Capacity())
	})

	t.Run("empty patch NG", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.pools.Patch(ctx, host(), pool.KindSlot, uuid.New(), pool.Patch{})
		requireAppErr(t, err, errs.KindValidation, pool.ErrEmptyPatch.Error())
	})

	t.Run("wrong kind NG", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPoolBuilder().Build()
		f.store.PutPool(p)

		_, err := f.pools.Patch(ctx, host(), pool.KindSlot, p.ID(), pool.Patch{IsActive: patch.Ptr(false)})
		requireAppErr(t, err, errs.KindNotFound, "Slot not found")
	})
}

func TestMenuCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults the currency OK", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.menu.Create(ctx, host(), menu.Params{Name: "  Cortado ", Category: "coffee", PriceCents: 1200, IsActive: true})
		require.NoError(t, err)
		assert.Equal(t, "Cortado", got.Name)
		assert.Equal(t, menu.DefaultCurrency, got.Currency)
		assert.Equal(t, []shared.EventType{shared.EventMenuItemCreated}, f.publisher.Types())
	})

	t.Run("create with a one letter name NG", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.menu.Create(ctx, host(), menu.Params{Name: "C", PriceCents: 100})
		requireAppErr(t, err, errs.KindValidation, menu.ErrInvalidName.Error())
	})

	t.Run("patch price OK", func(t *testing.T) {
		f := newFixture(t)
		it := builder.NewMenuItemBuilder().Build()
		f.store.PutMenuItem(it)

		got, err := f.menu.Patch(ctx, host(), it.ID(), menu.Patch{PriceCents: patch.Ptr(int64(1600))})
		require.NoError(t, err)
		assert.Equal(t, int64(1600), got.PriceCents)
		assert.Equal(t, []shared.EventType{shared.EventMenuItemUpdated}, f.publisher.Types())
	})

	t.Run("patch negative price NG", func(t *testing.T) {
		f := newFixture(t)
		it := builder.NewMenuItemBuilder().Build()
		f.store.PutMenuItem(it)

		_, err := f.menu.Patch(ctx, host(), it.ID(), menu.Patch{PriceCents: patch.Ptr(int64(-1))})
		requireAppErr(t, err, errs.KindValidation, menu.ErrNegativePrice.Error())
	})

	t.Run("patch unknown item NG", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.menu.Patch(ctx, host(), uuid.New(), menu.Patch{IsActive: patch.Ptr(false)})
		requireAppErr(t, err, errs.KindNotFound, "Menu item not found")
	})
}
