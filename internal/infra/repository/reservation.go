package repository

import (
	"context"

	"cozycup/internal/domain/reservation"
	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertReservation = `INSERT INTO reservations (` + converter.ReservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	selectReservation = `SELECT ` + converter.ReservationColumns + `
FROM reservations WHERE id = $1 AND kind = $2`

	updateReservationStatus = `UPDATE reservations
SET status = $3, cancelled_at = $4, cancelled_by = $5, checked_in_at = $6, checked_in_by = $7, updated_at = $8
WHERE id = $1 AND status = $2`
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	args, err := converter.ReservationArgs(res)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation items", err)
	}
	if _, err := tx.Exec(ctx, insertReservation, args...); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, tx db.DBTX, kind reservation.Kind, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := converter.ScanReservation(tx.QueryRow(ctx, selectReservation, id, kind.String()))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, res *reservation.Reservation, from reservation.Status) (bool, error) {
	tag, err := tx.Exec(ctx, updateReservationStatus,
		res.ID(), from.String(), res.Status().String(),
		pgconv.TimePtrToPgtype(res.CancelledAt()), converter.ActorToPgtype(res.CancelledBy()),
		pgconv.TimePtrToPgtype(res.CheckedInAt()), converter.ActorToPgtype(res.CheckedInBy()),
		res.UpdatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update reservation status", err)
	}
	return tag.RowsAffected() > 0, nil
}
