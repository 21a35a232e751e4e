package shared

import (
	"context"
	"time"

	"cozycup/internal/domain/menu"
	"cozycup/internal/domain/pool"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/domain/user"
	"cozycup/internal/domain/wallet"
	"cozycup/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single statements that are atomic on their own (conditional updates)
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one connection or transaction.
type Tx interface {
	Pools() PoolRepository
	Reservations() ReservationRepository
	MenuItems() MenuRepository
	Packages() PackageRepository
	Users() UserRepository
	DB() db.DBTX
}

type PoolRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *pool.Pool) error
	FindByID(ctx context.Context, tx db.DBTX, kind pool.Kind, id uuid.UUID) (*pool.Pool, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, kind pool.Kind, id uuid.UUID) (*pool.Pool, error)
	Update(ctx context.Context, tx db.DBTX, p *pool.Pool) error
	// TryReserve increments bookedCount in one conditional statement. It returns
	// the post-increment pool, or nil when no row satisfied every predicate.
	TryReserve(ctx context.Context, tx db.DBTX, kind pool.Kind, id uuid.UUID, now time.Time) (*pool.Pool, error)
	// Release decrements bookedCount when it is above zero and reports whether a row changed.
	Release(ctx context.Context, tx db.DBTX, kind pool.Kind, id uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *reservation.Reservation) error
	FindByID(ctx context.Context, tx db.DBTX, kind reservation.Kind, id uuid.UUID) (*reservation.Reservation, error)
	// UpdateStatus writes r's status fields only if the stored status still equals from.
	UpdateStatus(ctx context.Context, tx db.DBTX, r *reservation.Reservation, from reservation.Status) (bool, error)
}

type MenuRepository interface {
	Create(ctx context.Context, tx db.DBTX, it *menu.Item) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*menu.Item, error)
	Update(ctx context.Context, tx db.DBTX, it *menu.Item) error
	// FindOrderable returns the active, non-deleted items among ids.
	FindOrderable(ctx context.Context, tx db.DBTX, ids []uuid.UUID) ([]*menu.Item, error)
}

type PackageRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *wallet.Package) error
	FindActiveByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*wallet.Package, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error
	// SetRefreshTokenHash stores hash, or clears it when hash is nil.
	SetRefreshTokenHash(ctx context.Context, tx db.DBTX, userID uuid.UUID, hash *string) error
}
