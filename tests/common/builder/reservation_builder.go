//go:build unit || e2e

package builder

import (
	"time"

	"cozycup/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	Kind       reservation.Kind
	CustomerID uuid.UUID
	PoolID     uuid.UUID
	Status     reservation.Status
	Items      []reservation.LineItem
	StartAt    time.Time
	EndAt      time.Time
	Notes      string
}

func NewOrderBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		Kind:       reservation.KindOrder,
		CustomerID: uuid.New(),
		PoolID:     uuid.New(),
		Status:     reservation.StatusConfirmed,
		Items: []reservation.LineItem{
			reservation.RestoreLineItem(uuid.New(), "Flat White", 1400, 2, nil),
		},
		StartAt: BaseTime.Add(2 * time.Hour),
		EndAt:   BaseTime.Add(2*time.Hour + 30*time.Minute),
	}
}

func NewBookingBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		Kind:       reservation.KindBooking,
		CustomerID: uuid.New(),
		PoolID:     uuid.New(),
		Status:     reservation.StatusBooked,
		StartAt:    BaseTime.Add(2 * time.Hour),
		EndAt:      BaseTime.Add(3 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	totals := reservation.NewDefaultPriceCalculator().Calculate(b.CustomerID, b.Items)
	return reservation.Reconstruct(reservation.Snapshot{
		ID:         b.ID,
		Kind:       b.Kind,
		CustomerID: b.CustomerID,
		PoolID:     b.PoolID,
		Status:     b.Status,
		Items:      b.Items,
		Totals:     totals,
		Notes:      b.Notes,
		StartAt:    b.StartAt,
		EndAt:      b.EndAt,
		CreatedAt:  BaseTime,
		UpdatedAt:  BaseTime,
	})
}

func (b *ReservationBuilder) OwnedBy(customerID uuid.UUID) *ReservationBuilder {
	b.CustomerID = customerID
	return b
}

func (b *ReservationBuilder) InStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) OnPool(poolID uuid.UUID) *ReservationBuilder {
	b.PoolID = poolID
	return b
}

func (b *ReservationBuilder) StartingAt(start time.Time, length time.Duration) *ReservationBuilder {
	b.StartAt = start
	b.EndAt = start.Add(length)
	return b
}
