package converter

import (
	"encoding/json"

	"cozycup/internal/domain/reservation"
	"cozycup/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Row is satisfied by pgx.Row and pgx.Rows.
type Row interface {
	Scan(dest ...any) error
}

const ReservationColumns = `id, kind, customer_id, pool_id, status, items,
	subtotal_cents, discount_cents, total_cents, notes, start_at, end_at,
	cancelled_at, cancelled_by, checked_in_at, checked_in_by, created_at, updated_at`

// lineItemRecord is the jsonb shape of one order line.
type lineItemRecord struct {
	ItemID         uuid.UUID `json:"itemId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
	Variants       []string  `json:"variants,omitempty"`
}

func LineItemsToJSON(items []reservation.LineItem) ([]byte, error) {
	records := make([]lineItemRecord, 0, len(items))
	for _, li := range items {
		records = append(records, lineItemRecord{
			ItemID:         li.MenuItemID(),
			Name:           li.Name(),
			UnitPriceCents: li.UnitPriceCents(),
			Quantity:       li.Quantity(),
			Variants:       li.Variants(),
		})
	}
	return json.Marshal(records)
}

func LineItemsFromJSON(raw []byte) ([]reservation.LineItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var records []lineItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	var items []reservation.LineItem
	for _, rec := range records {
		items = append(items, reservation.RestoreLineItem(rec.ItemID, rec.Name, rec.UnitPriceCents, rec.Quantity, rec.Variants))
	}
	return items, nil
}

// ReservationArgs lists r's values in ReservationColumns order.
func ReservationArgs(r *reservation.Reservation) ([]any, error) {
	items, err := LineItemsToJSON(r.Items())
	if err != nil {
		return nil, err
	}
	t := r.Totals()
	return []any{
		r.ID(), r.Kind().String(), r.CustomerID(), r.PoolID(), r.Status().String(), items,
		t.SubtotalCents, t.DiscountCents, t.TotalCents, r.Notes(), r.StartAt(), r.EndAt(),
		pgconv.TimePtrToPgtype(r.CancelledAt()), ActorToPgtype(r.CancelledBy()),
		pgconv.TimePtrToPgtype(r.CheckedInAt()), ActorToPgtype(r.CheckedInBy()),
		r.CreatedAt(), r.UpdatedAt(),
	}, nil
}

func ScanReservation(row Row) (*reservation.Reservation, error) {
	var (
		s                        reservation.Snapshot
		kind, status             string
		items                    []byte
		cancelledAt, checkedInAt pgtype.Timestamptz
		cancelledBy, checkedInBy pgtype.Text
	)
	err := row.Scan(
		&s.ID, &kind, &s.CustomerID, &s.PoolID, &status, &items,
		&s.Totals.SubtotalCents, &s.Totals.DiscountCents, &s.Totals.TotalCents,
		&s.Notes, &s.StartAt, &s.EndAt,
		&cancelledAt, &cancelledBy, &checkedInAt, &checkedInBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Items, err = LineItemsFromJSON(items)
	if err != nil {
		return nil, err
	}
	s.Kind = reservation.Kind(kind)
	s.Status = reservation.Status(status)
	s.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	s.CancelledBy = actorFromPgtype(cancelledBy)
	s.CheckedInAt = pgconv.TimePtrFromPgtype(checkedInAt)
	s.CheckedInBy = actorFromPgtype(checkedInBy)
	s.StartAt = s.StartAt.UTC()
	s.EndAt = s.EndAt.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()

	return reservation.Reconstruct(s), nil
}

func ActorToPgtype(a *reservation.Actor) pgtype.Text {
	if a == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: a.String(), Valid: true}
}

func actorFromPgtype(t pgtype.Text) *reservation.Actor {
	s := pgconv.StringPtrFromPgtype(t)
	if s == nil {
		return nil
	}
	a := reservation.Actor(*s)
	return &a
}
