//go:build unit || e2e

// Package memstore is an in-memory implementation of the use case ports. Every
// conditional write is atomic under one mutex, mirroring the single-statement
// guarantees the Postgres repositories give, so race tests exercise real outcomes.
package memstore

import (
	"context"
	"sync"
	"time"

	"cozycup/internal/domain/menu"
	"cozycup/internal/domain/pool"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/domain/user"
	"cozycup/internal/domain/wallet"
	"cozycup/internal/infra/db"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	pools        map[uuid.UUID]*pool.Pool
	reservations map[uuid.UUID]*reservation.Reservation
	menu         map[uuid.UUID]*menu.Item
	packages     map[uuid.UUID]*wallet.Package
	users        map[uuid.UUID]*user.User
	purchases    map[uuid.UUID]*wallet.Purchase
	redemptions  []*wallet.Redemption

	refreshHashes map[uuid.UUID]string
	lastLogins    map[uuid.UUID]time.Time

	// Transactions toggles which redeem strategy the wallet store advertises.
	Transactions bool
	// FailRedemptionInsert, when set, is returned by the next redemption insert.
	FailRedemptionInsert error
	// SkipReserveGuard makes TryReserve increment unconditionally, like a racing non-atomic backend.
	SkipReserveGuard bool
}

func New() *Store {
	return &Store{
		pools:        map[uuid.UUID]*pool.Pool{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		menu:         map[uuid.UUID]*menu.Item{},
		packages:     map[uuid.UUID]*wallet.Package{},
		users:        map[uuid.UUID]*user.User{},
		purchases:    map[uuid.UUID]*wallet.Purchase{},

		refreshHashes: map[uuid.UUID]string{},
		lastLogins:    map[uuid.UUID]time.Time{},
		Transactions:  true,
	}
}

// Within serializes callbacks against each other. Writes are not rolled back on error.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx, txView{s})
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, txView{s})
}

type txView struct{ s *Store }

func (t txView) Pools() shared.PoolRepository               { return poolRepo(t) }
func (t txView) Reservations() shared.ReservationRepository { return reservationRepo(t) }
func (t txView) MenuItems() shared.MenuRepository           { return menuRepo(t) }
func (t txView) Packages() shared.PackageRepository         { return packageRepo(t) }
func (t txView) Users() shared.UserRepository               { return userRepo(t) }
func (t txView) DB() db.DBTX                                { return nil }

// Seeding and inspection helpers.

func (s *Store) PutPool(p *pool.Pool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools[p.ID()] = clonePool(p)
}

func (s *Store) Pool(id uuid.UUID) *pool.Pool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pools[id]; ok {
		return clonePool(p)
	}
	return nil
}

func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID()] = reservation.Reconstruct(r.Snapshot())
}

func (s *Store) Reservation(id uuid.UUID) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.reservations[id]; ok {
		return reservation.Reconstruct(r.Snapshot())
	}
	return nil
}

func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *Store) PutMenuItem(it *menu.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *it
	s.menu[it.ID()] = &cp
}

func (s *Store) PutPackage(p *wallet.Package) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.packages[p.ID()] = &cp
}

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.ID()] = &cp
}

func (s *Store) PutPurchase(p *wallet.Purchase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases[p.ID()] = clonePurchase(p)
}

func (s *Store) Purchase(id uuid.UUID) *wallet.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.purchases[id]; ok {
		return clonePurchase(p)
	}
	return nil
}

func (s *Store) RedemptionCount(purchaseID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.redemptions {
		if r.PurchaseID() == purchaseID {
			n++
		}
	}
	return n
}

func clonePool(p *pool.Pool) *pool.Pool {
	cp := *p
	return &cp
}

func clonePurchase(p *wallet.Purchase) *wallet.Purchase {
	cp := *p
	return &cp
}
