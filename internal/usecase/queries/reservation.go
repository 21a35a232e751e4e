package queries

import (
	"context"
	"time"

	"cozycup/internal/domain/reservation"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type LineItemView struct {
	MenuItemID     uuid.UUID `json:"menuItemId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
	Variants       []string  `json:"variants,omitempty"`
}

// ReservationView is shared by orders and bookings. Items and totals stay zero for bookings;
// check-in fields stay nil for orders.
type ReservationView struct {
	ID            uuid.UUID      `json:"id"`
	Kind          string         `json:"kind"`
	CustomerID    uuid.UUID      `json:"customerId"`
	PoolID        uuid.UUID      `json:"poolId"`
	Status        string         `json:"status"`
	Items         []LineItemView `json:"items,omitempty"`
	SubtotalCents int64          `json:"subtotalCents"`
	DiscountCents int64          `json:"discountCents"`
	TotalCents    int64          `json:"totalCents"`
	Notes         string         `json:"notes"`
	StartAt       time.Time      `json:"startAt"`
	EndAt         time.Time      `json:"endAt"`
	CancelledAt   *time.Time     `json:"cancelledAt"`
	CancelledBy   *string        `json:"cancelledBy"`
	CheckedInAt   *time.Time     `json:"checkedInAt"`
	CheckedInBy   *string        `json:"checkedInBy"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	v := &ReservationView{
		ID:            r.ID(),
		Kind:          r.Kind().String(),
		CustomerID:    r.CustomerID(),
		PoolID:        r.PoolID(),
		Status:        r.Status().String(),
		SubtotalCents: r.Totals().SubtotalCents,
		DiscountCents: r.Totals().DiscountCents,
		TotalCents:    r.Totals().TotalCents,
		Notes:         r.Notes(),
		StartAt:       r.StartAt(),
		EndAt:         r.EndAt(),
		CancelledAt:   r.CancelledAt(),
		CancelledBy:   actorString(r.CancelledBy()),
		CheckedInAt:   r.CheckedInAt(),
		CheckedInBy:   actorString(r.CheckedInBy()),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
	for _, li := range r.Items() {
		v.Items = append(v.Items, LineItemView{
			MenuItemID:     li.MenuItemID(),
			Name:           li.Name(),
			UnitPriceCents: li.UnitPriceCents(),
			Quantity:       li.Quantity(),
			Variants:       li.Variants(),
		})
	}
	return v
}

func actorString(a *reservation.Actor) *string {
	if a == nil {
		return nil
	}
	s := a.String()
	return &s
}

type ReservationFilter struct {
	Kind       reservation.Kind
	CustomerID uuid.UUID
	Status     *reservation.Status
	Limit      int
	Offset     int
}

type ReservationReadStore interface {
	// ListByCustomer returns newest first.
	ListByCustomer(ctx context.Context, f ReservationFilter) ([]*ReservationView, error)
	CountByCustomer(ctx context.Context, f ReservationFilter) (int, error)
}

type ReservationQueries interface {
	ListMine(ctx context.Context, f ReservationFilter) (*Page[*ReservationView], error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, f ReservationFilter) (*Page[*ReservationView], error) {
	f.Limit, f.Offset = ReservationBounds.Clamp(f.Limit, f.Offset)
	page, err := fetchPage(ctx, f.Limit, f.Offset,
		func(ctx context.Context) ([]*ReservationView, error) { return q.readStore.ListByCustomer(ctx, f) },
		func(ctx context.Context) (int, error) { return q.readStore.CountByCustomer(ctx, f) },
	)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, f.Kind.Label()+" not found")
	}
	return page, nil
}
