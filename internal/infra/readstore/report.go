package readstore

import (
	"context"
	"time"

	"cozycup/internal/domain/pool"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/usecase/queries"
)

const (
	bookingCountsByStatus = `SELECT status, count(*) FROM reservations
WHERE kind = $1 AND created_at >= $2 AND created_at < $3
GROUP BY status`

	slotTotals = `SELECT count(*), COALESCE(sum(capacity), 0), COALESCE(sum(booked_count), 0)
FROM pools
WHERE kind = $1 AND NOT is_deleted AND start_at >= $2 AND start_at < $3`
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(db db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: db}
}

func (s *ReportReadStore) BookingCountsByStatus(ctx context.Context, from, to time.Time) (map[string]int, error) {
	rows, err := s.db.Query(ctx, bookingCountsByStatus, reservation.KindBooking.String(), from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking counts", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}
	return counts, nil
}

func (s *ReportReadStore) SlotTotals(ctx context.Context, from, to time.Time) (queries.SlotTotals, error) {
	var t queries.SlotTotals
	err := s.db.QueryRow(ctx, slotTotals, pool.KindSlot.String(), from, to).
		Scan(&t.TotalSlots, &t.TotalCapacity, &t.TotalBooked)
	if err != nil {
		return queries.SlotTotals{}, infra.WrapRepoErr("failed to total slots", err)
	}
	return t, nil
}
