//go:build unit || e2e

package memstore

import (
	"context"
	"time"

	"cozycup/internal/domain/menu"
	"cozycup/internal/domain/pool"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/domain/user"
	"cozycup/internal/domain/wallet"
	"cozycup/internal/infra"
	"cozycup/internal/infra/db"

	"github.com/google/uuid"
)

type poolRepo struct{ s *Store }

func (r poolRepo) Create(_ context.Context, _ db.DBTX, p *pool.Pool) error {
	r.s.PutPool(p)
	return nil
}

func (r poolRepo) FindByID(_ context.Context, _ db.DBTX, kind pool.Kind, id uuid.UUID) (*pool.Pool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pools[id]
	if !ok || p.Kind() != kind {
		return nil, infra.NotFound("pool not found")
	}
	return clonePool(p), nil
}

func (r poolRepo) FindByIDForUpdate(ctx context.Context, tx db.DBTX, kind pool.Kind, id uuid.UUID) (*pool.Pool, error) {
	return r.FindByID(ctx, tx, kind, id)
}

func (r poolRepo) Update(_ context.Context, _ db.DBTX, p *pool.Pool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pools[p.ID()]; !ok {
		return infra.NotFound("pool not found")
	}
	r.s.pools[p.ID()] = clonePool(p)
	return nil
}

func (r poolRepo) TryReserve(_ context.Context, _ db.DBTX, kind pool.Kind, id uuid.UUID, now time.Time) (*pool.Pool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pools[id]
	if !ok || p.Kind() != kind || (!r.s.SkipReserveGuard && !p.Reservable(now)) {
		return nil, nil
	}
	next := withBooked(p, p.BookedCount()+1)
	r.s.pools[id] = next
	return clonePool(next), nil
}

func (r poolRepo) Release(_ context.Context, _ db.DBTX, kind pool.Kind, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pools[id]
	if !ok || p.Kind() != kind || p.BookedCount() <= 0 {
		return false, nil
	}
	r.s.pools[id] = withBooked(p, p.BookedCount()-1)
	return true, nil
}

func withBooked(p *pool.Pool, booked int) *pool.Pool {
	return pool.Reconstruct(p.ID(), p.Kind(), p.StartAt(), p.EndAt(), p.Capacity(), booked,
		p.Status(), p.IsActive(), p.IsDeleted(), p.DisplayOrder(), p.Notes(), p.CreatedAt(), p.UpdatedAt())
}

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
	r.s.PutReservation(res)
	return nil
}

func (r reservationRepo) FindByID(_ context.Context, _ db.DBTX, kind reservation.Kind, id uuid.UUID) (*reservation.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res, ok := r.s.reservations[id]
	if !ok || res.Kind() != kind {
		return nil, infra.NotFound("reservation not found")
	}
	return reservation.Reconstruct(res.Snapshot()), nil
}

func (r reservationRepo) UpdateStatus(_ context.Context, _ db.DBTX, res *reservation.Reservation, from reservation.Status) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.reservations[res.ID()]
	if !ok || stored.Status() != from {
		return false, nil
	}
	r.s.reservations[res.ID()] = reservation.Reconstruct(res.Snapshot())
	return true, nil
}

type menuRepo struct{ s *Store }

func (r menuRepo) Create(_ context.Context, _ db.DBTX, it *menu.Item) error {
	r.s.PutMenuItem(it)
	return nil
}

func (r menuRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*menu.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.menu[id]
	if !ok {
		return nil, infra.NotFound("menu item not found")
	}
	cp := *it
	return &cp, nil
}

func (r menuRepo) Update(_ context.Context, _ db.DBTX, it *menu.Item) error {
	r.s.PutMenuItem(it)
	return nil
}

func (r menuRepo) FindOrderable(_ context.Context, _ db.DBTX, ids []uuid.UUID) ([]*menu.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*menu.Item
	for _, id := range ids {
		if it, ok := r.s.menu[id]; ok && it.Orderable() {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type packageRepo struct{ s *Store }

func (r packageRepo) Create(_ context.Context, _ db.DBTX, p *wallet.Package) error {
	r.s.PutPackage(p)
	return nil
}

func (r packageRepo) FindActiveByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*wallet.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.packages[id]
	if !ok || !p.IsActive() {
		return nil, infra.NotFound("package not found")
	}
	cp := *p
	return &cp, nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, _ db.DBTX, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr("user exists", nil, infra.KindDuplicateKey)
		}
	}
	cp := *u
	r.s.users[u.ID()] = &cp
	return nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, userID uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[userID]; !ok {
		return infra.NotFound("user not found")
	}
	r.s.lastLogins[userID] = at
	return nil
}

func (r userRepo) SetRefreshTokenHash(_ context.Context, _ db.DBTX, userID uuid.UUID, hash *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[userID]; !ok {
		return infra.NotFound("user not found")
	}
	if hash == nil {
		delete(r.s.refreshHashes, userID)
		return nil
	}
	r.s.refreshHashes[userID] = *hash
	return nil
}
