//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cozycup/internal/domain/pool"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/domain/wallet"
	"cozycup/internal/infra"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/queries"
	"cozycup/tests/common/builder"
	"cozycup/tests/common/memstore"
	queriesmock "cozycup/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBounds_Clamp(t *testing.T) {
	cases := []struct {
		name       string
		bounds     queries.Bounds
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"default when zero", queries.ReservationBounds, 0, 0, 20, 0},
		{"kept when in range", queries.ReservationBounds, 35, 10, 35, 10},
		{"clamped to max", queries.ReservationBounds, 500, 0, 100, 0},
		{"negative offset reset", queries.WalletBounds, 10, -5, 10, 0},
		{"wallet default", queries.WalletBounds, -1, 3, 50, 3},
		{"catalog max", queries.CatalogBounds, 201, 0, 200, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := tc.bounds.Clamp(tc.limit, tc.offset)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestPoolQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps and recomputes remaining OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPoolReadStore(ctrl)
		want := queries.PoolFilter{Kind: pool.KindSlot, Limit: 200}

		store.EXPECT().List(gomock.Any(), want).Return([]*queries.PoolView{
			{Capacity: 5, BookedCount: 2},
			{Capacity: 3, BookedCount: 4},
		}, nil)
		store.EXPECT().Count(gomock.Any(), want).Return(2, nil)

		page, err := queries.NewPoolQueries(store).List(ctx, queries.PoolFilter{Kind: pool.KindSlot, Limit: 999, Offset: -1})
		require.NoError(t, err)
		assert.Equal(t, 200, page.Limit)
		assert.Equal(t, 2, page.Total)
		assert.Equal(t, 3, page.Items[0].Remaining)
		assert.Equal(t, 0, page.Items[1].Remaining)
	})

	t.Run("empty page has a non-nil slice OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPoolReadStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		page, err := queries.NewPoolQueries(store).List(ctx, queries.PoolFilter{Kind: pool.KindPickupWindow})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 100, page.Limit)
	})

	t.Run("store failure NG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPoolReadStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")).AnyTimes()
		store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

		_, err := queries.NewPoolQueries(store).List(ctx, queries.PoolFilter{Kind: pool.KindSlot})
		assert.Equal(t, errs.KindInternal, errs.KindOf(err))
	})
}

func TestParseMenuSort(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    []queries.SortKey
		wantErr bool
	}{
		{name: "empty uses default", raw: "", want: queries.DefaultMenuSort},
		{name: "single desc", raw: "priceCents:desc", want: []queries.SortKey{{Field: "price_cents", Desc: true}}},
		{name: "multiple with implicit asc", raw: "name, createdAt:DESC", want: []queries.SortKey{
			{Field: "name"}, {Field: "created_at", Desc: true},
		}},
		{name: "unknown field", raw: "password:asc", wantErr: true},
		{name: "unknown direction", raw: "name:sideways", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := queries.ParseMenuSort(tc.raw)
			if tc.wantErr {
				assert.Equal(t, errs.KindValidation, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("sort keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMenuQueries_List_DefaultSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockMenuReadStore(ctrl)
	want := queries.MenuFilter{Category: "coffee", Sort: queries.DefaultMenuSort, Limit: 100}
	store.EXPECT().List(gomock.Any(), want).Return([]*queries.MenuItemView{{Name: "Cortado"}}, nil)
	store.EXPECT().Count(gomock.Any(), want).Return(1, nil)

	page, err := queries.NewMenuQueries(store).List(context.Background(), queries.MenuFilter{Category: "coffee"})
	require.NoError(t, err)
	assert.Equal(t, "Cortado", page.Items[0].Name)
}

func TestReservationQueries_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	customerID := uuid.New()
	status := reservation.StatusBooked
	want := queries.ReservationFilter{Kind: reservation.KindBooking, CustomerID: customerID, Status: &status, Limit: 100, Offset: 40}

	store.EXPECT().ListByCustomer(gomock.Any(), want).Return([]*queries.ReservationView{{CustomerID: customerID}}, nil)
	store.EXPECT().CountByCustomer(gomock.Any(), want).Return(41, nil)

	page, err := queries.NewReservationQueries(store).ListMine(context.Background(), queries.ReservationFilter{
		Kind: reservation.KindBooking, CustomerID: customerID, Status: &status, Limit: 1000, Offset: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 41, page.Total)
	assert.Equal(t, 100, page.Limit)
	assert.Len(t, page.Items, 1)
}

func TestWalletQueries_MyWallet(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	packages := queriesmock.NewMockPackageReadStore(ctrl)
	store := memstore.New()
	owner := uuid.New()
	pkgID := uuid.New()

	older := builder.NewPurchaseBuilder().OwnedBy(owner).With(func(b *builder.PurchaseBuilder) { b.PackageID = pkgID }).Build()
	newer := wallet.ReconstructPurchase(uuid.New(), owner, pkgID, 5, 4, wallet.PaymentCash, 1,
		builder.BaseTime.Add(time.Hour), builder.BaseTime.Add(time.Hour))
	store.PutPurchase(older)
	store.PutPurchase(newer)
	store.PutPurchase(builder.NewPurchaseBuilder().Build())

	packages.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{pkgID}).Return([]*queries.PackageView{{ID: pkgID, Name: "Ten Coffees"}}, nil)

	page, err := queries.NewWalletQueries(packages, store.Wallet()).MyWallet(ctx, owner, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 50, page.Limit)
	require.Len(t, page.Items, 2)
	assert.Equal(t, newer.ID(), page.Items[0].ID)
	assert.Equal(t, 4, page.Items[0].CreditsLeft)
	require.NotNil(t, page.Items[1].Package)
	assert.Equal(t, "Ten Coffees", page.Items[1].Package.Name)
}

func TestWalletQueries_MyWallet_EmptySkipsPackageLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	packages := queriesmock.NewMockPackageReadStore(ctrl)

	page, err := queries.NewWalletQueries(packages, memstore.New().Wallet()).MyWallet(context.Background(), uuid.New(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func TestReportQueries_DaySummary(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("fills missing statuses with zero OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockReportReadStore(ctrl)
		store := memstore.New()
		store.PutPurchase(builder.NewPurchaseBuilder().WithCredits(10).Build())

		rs.EXPECT().BookingCountsByStatus(gomock.Any(), day, day.AddDate(0, 0, 1)).
			Return(map[string]int{"BOOKED": 3, "UNKNOWN": 9}, nil)
		rs.EXPECT().SlotTotals(gomock.Any(), day, day.AddDate(0, 0, 1)).
			Return(queries.SlotTotals{TotalSlots: 2, TotalCapacity: 16, TotalBooked: 5}, nil)

		got, err := queries.NewReportQueries(rs, store.Wallet(), clock.NewMockClock(builder.BaseTime)).DaySummary(ctx, "")
		require.NoError(t, err)

		want := &queries.DaySummary{
			Date:        "2030-05-01",
			Bookings:    map[string]int{"BOOKED": 3, "CHECKED_IN": 0, "CANCELLED": 0},
			Slots:       queries.SlotTotals{TotalSlots: 2, TotalCapacity: 16, TotalBooked: 5},
			Purchases:   queries.PurchaseTotals{TotalPurchases: 1, TotalCredits: 10},
			Redemptions: queries.RedemptionTotals{},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("explicit date OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockReportReadStore(ctrl)
		other := time.Date(2030, 4, 12, 0, 0, 0, 0, time.UTC)
		rs.EXPECT().BookingCountsByStatus(gomock.Any(), other, other.AddDate(0, 0, 1)).Return(map[string]int{}, nil)
		rs.EXPECT().SlotTotals(gomock.Any(), other, other.AddDate(0, 0, 1)).Return(queries.SlotTotals{}, nil)

		got, err := queries.NewReportQueries(rs, memstore.New().Wallet(), clock.NewMockClock(builder.BaseTime)).DaySummary(ctx, "2030-04-12")
		require.NoError(t, err)
		assert.Equal(t, "2030-04-12", got.Date)
	})

	t.Run("malformed date NG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockReportReadStore(ctrl)

		_, err := queries.NewReportQueries(rs, memstore.New().Wallet(), clock.NewMockClock(builder.BaseTime)).DaySummary(ctx, "12/04/2030")
		appErr, ok := errs.AsApp(err)
		require.True(t, ok)
		assert.Equal(t, errs.KindValidation, appErr.Kind)
		assert.Equal(t, "date must be YYYY-MM-DD", appErr.Message)
	})
}

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	cases := []struct {
		name     string
		found    *queries.AuthorizedUserView
		findErr  error
		wantKind errs.Kind
	}{
		{name: "active user OK", found: &queries.AuthorizedUserView{UserView: queries.UserView{ID: id, IsActive: true}}},
		{name: "inactive user NG", found: &queries.AuthorizedUserView{UserView: queries.UserView{ID: id}}, wantKind: errs.KindUnauthorized},
		{name: "missing user NG", findErr: infra.NotFound("user not found"), wantKind: errs.KindNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), id).Return(tc.found, tc.findErr)

			got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, id)
			if tc.wantKind != "" {
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
		})
	}
}
