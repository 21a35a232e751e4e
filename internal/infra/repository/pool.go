package repository

import (
	"context"
	"time"

	"cozycup/internal/domain/pool"
	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertPool = `INSERT INTO pools (` + converter.PoolColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	selectPool = `SELECT ` + converter.PoolColumns + ` FROM pools WHERE id = $1 AND kind = $2`

	updatePool = `UPDATE pools
SET start_at = $2, end_at = $3, capacity = $4, status = $5, is_active = $6,
    is_deleted = $7, display_order = $8, notes = $9, updated_at = $10
WHERE id = $1`

	// start_at >= now matches Pool.ClassifyReserveFailure, where only a start strictly before now counts as started.
	tryReservePool = `UPDATE pools
SET booked_count = booked_count + 1, updated_at = $3
WHERE id = $1 AND kind = $2
  AND status = 'open' AND is_active AND NOT is_deleted
  AND start_at >= $3
  AND booked_count < capacity
RETURNING ` + converter.PoolColumns

	releasePool = `UPDATE pools
SET booked_count = booked_count - 1, updated_at = now()
WHERE id = $1 AND kind = $2 AND booked_count > 0`
)

type PoolRepository struct{}

func NewPoolRepository() *PoolRepository {
	return &PoolRepository{}
}

func (r *PoolRepository) Create(ctx context.Context, tx db.DBTX, p *pool.Pool) error {
	if _, err := tx.Exec(ctx, insertPool, converter.PoolArgs(p)...); err != nil {
		return infra.WrapRepoErr("failed to create pool", err)
	}
	return nil
}

func (r *PoolRepository) FindByID(ctx context.Context, tx db.DBTX, kind pool.Kind, id uuid.UUID) (*pool.Pool, error) {
	return r.find(ctx, tx, selectPool, kind, id)
}

func (r *PoolRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, kind pool.Kind, id uuid.UUID) (*pool.Pool, error) {
	return r.find(ctx, tx, selectPool+" FOR UPDATE", kind, id)
}

func (r *PoolRepository) find(ctx context.Context, tx db.DBTX, query string, kind pool.Kind, id uuid.UUID) (*pool.Pool, error) {
	p, err := converter.ScanPool(tx.QueryRow(ctx, query, id, kind.String()))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pool", err)
	}
	return p, nil
}

func (r *PoolRepository) Update(ctx context.Context, tx db.DBTX, p *pool.Pool) error {
	tag, err := tx.Exec(ctx, updatePool,
		p.ID(), p.StartAt(), p.EndAt(), p.Capacity(), p.Status().String(), p.IsActive(),
		p.IsDeleted(), p.DisplayOrder(), p.Notes(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pool", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("pool not found")
	}
	return nil
}

func (r *PoolRepository) TryReserve(ctx context.Context, tx db.DBTX, kind pool.Kind, id uuid.UUID, now time.Time) (*pool.Pool, error) {
	p, err := converter.ScanPool(tx.QueryRow(ctx, tryReservePool, id, kind.String(), now))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to reserve pool capacity", err)
	}
	return p, nil
}

func (r *PoolRepository) Release(ctx context.Context, tx db.DBTX, kind pool.Kind, id uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, releasePool, id, kind.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to release pool capacity", err)
	}
	return tag.RowsAffected() > 0, nil
}
