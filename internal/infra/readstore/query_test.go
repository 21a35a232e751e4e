//go:build unit

package readstore

import (
	"testing"
	"time"

	"cozycup/internal/domain/pool"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPoolWhere(t *testing.T) {
	from := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	tests := []struct {
		name     string
		filter   queries.PoolFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "OK: open only by default",
			filter:   queries.PoolFilter{Kind: pool.KindSlot},
			wantSQL:  " WHERE kind = $1 AND is_active AND NOT is_deleted AND status = $2",
			wantArgs: []any{"slot", "open"},
		},
		{
			name:     "OK: closed included with a window",
			filter:   queries.PoolFilter{Kind: pool.KindPickupWindow, IncludeClosed: true, From: &from, To: &to},
			wantSQL:  " WHERE kind = $1 AND is_active AND NOT is_deleted AND end_at >= $2 AND start_at <= $3",
			wantArgs: []any{"pickup_window", from, to},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := poolWhere(tt.filter)
			assert.Equal(t, tt.wantSQL, w.String())
			if diff := cmp.Diff(tt.wantArgs, w.args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWherePage(t *testing.T) {
	w := &where{}
	w.add("customer_id = $%d", uuid.Nil)
	w.add("kind = $%d", reservation.KindOrder.String())

	clause, args := w.page(20, 40)

	assert.Equal(t, " LIMIT $3 OFFSET $4", clause)
	assert.Equal(t, []any{uuid.Nil, "order", 20, 40}, args)
	assert.Len(t, w.args, 2, "page must not grow the filter arguments")
}

func TestWhereEmpty(t *testing.T) {
	assert.Empty(t, (&where{}).String())
}

func TestMenuWhere(t *testing.T) {
	w := menuWhere(queries.MenuFilter{Category: "coffee", Query: " 50%_off "})

	assert.Equal(t, " WHERE is_active AND NOT is_deleted AND category = $1 AND name ILIKE '%' || $2 || '%'", w.String())
	assert.Equal(t, []any{"coffee", `50\%\_off`}, w.args)
}

func TestOrderBy(t *testing.T) {
	tests := []struct {
		name string
		keys []queries.SortKey
		want string
	}{
		{"OK: default", nil, " ORDER BY display_order, name, id"},
		{"OK: mixed directions", []queries.SortKey{{Field: "price_cents", Desc: true}, {Field: "name"}}, " ORDER BY price_cents DESC, name, id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.keys))
		})
	}
}

func TestReservationWhere(t *testing.T) {
	customerID := uuid.New()
	status := reservation.StatusReady

	w := reservationWhere(queries.ReservationFilter{Kind: reservation.KindOrder, CustomerID: customerID, Status: &status})

	assert.Equal(t, " WHERE customer_id = $1 AND kind = $2 AND status = $3", w.String())
	assert.Equal(t, []any{customerID, "order", "READY"}, w.args)
}
