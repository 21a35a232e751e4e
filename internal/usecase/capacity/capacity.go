// Package capacity takes and gives back single units of a pool's capacity.
package capacity

import (
	"context"
	"log/slog"

	"cozycup/internal/domain/pool"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type Service interface {
	Reserve(ctx context.Context, kind pool.Kind, poolID uuid.UUID) (*pool.Pool, error)
	Release(ctx context.Context, kind pool.Kind, poolID uuid.UUID) error
}

type serviceImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewService(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) Service {
	return &serviceImpl{uow: uow, clock: clk, logger: logger}
}

// Reserve takes one unit in a single conditional update. When nothing matched,
// a second read explains why; the first true reason in priority order wins.
func (s *serviceImpl) Reserve(ctx context.Context, kind pool.Kind, poolID uuid.UUID) (*pool.Pool, error) {
	now := s.clock.Now()

	var reserved *pool.Pool
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Pools().TryReserve(ctx, tx.DB(), kind, poolID, now)
		if err != nil {
			return err
		}
		if p != nil {
			reserved = p
			return nil
		}

		current, err := tx.Pools().FindByID(ctx, tx.DB(), kind, poolID)
		if err != nil {
			return err
		}
		return reserveFailure(kind, current.ClassifyReserveFailure(now))
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, kind.Label()+" not found")
	}

	if reserved.OverCapacity() {
		if relErr := s.Release(ctx, kind, poolID); relErr != nil {
			s.logger.Error("failed to roll back over-capacity reserve",
				"pool_id", poolID, "kind", kind, "error", relErr.Error())
		}
		return nil, errs.Conflict("%s over capacity", kind.Label())
	}

	return reserved, nil
}

func reserveFailure(kind pool.Kind, reason error) error {
	switch {
	case errs.Is(reason, pool.ErrNotOpen):
		return errs.Conflict("%s not open/active", kind.Label())
	case errs.Is(reason, pool.ErrAlreadyStarted):
		return errs.Conflict("%s already started", kind.Label())
	case errs.Is(reason, pool.ErrFull):
		return errs.Conflict("%s is full", kind.Label())
	default:
		return errs.Conflict("Unable to reserve capacity")
	}
}

// Release gives one unit back. A counter already at zero is left alone and is not an error.
func (s *serviceImpl) Release(ctx context.Context, kind pool.Kind, poolID uuid.UUID) error {
	var released bool
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		released, err = tx.Pools().Release(ctx, tx.DB(), kind, poolID)
		return err
	})
	if err != nil {
		return errs.Internal(err, "failed to release capacity")
	}
	if !released {
		s.logger.Debug("release skipped, nothing booked", "pool_id", poolID, "kind", kind)
	}
	return nil
}
