package readstore

import (
	"context"

	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/usecase/queries"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func reservationWhere(f queries.ReservationFilter) *where {
	w := &where{}
	w.add("customer_id = $%d", f.CustomerID)
	w.add("kind = $%d", f.Kind.String())
	if f.Status != nil {
		w.add("status = $%d", f.Status.String())
	}
	return w
}

func (s *ReservationReadStore) ListByCustomer(ctx context.Context, f queries.ReservationFilter) ([]*queries.ReservationView, error) {
	w := reservationWhere(f)
	limit, args := w.page(f.Limit, f.Offset)
	query := "SELECT " + converter.ReservationColumns + " FROM reservations" + w.String() +
		" ORDER BY created_at DESC, id" + limit

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	views, err := collect(rows, converter.ScanReservation, queries.NewReservationView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return views, nil
}

func (s *ReservationReadStore) CountByCustomer(ctx context.Context, f queries.ReservationFilter) (int, error) {
	w := reservationWhere(f)
	return count(ctx, s.db, "SELECT count(*) FROM reservations"+w.String(), w.args, "reservations")
}
