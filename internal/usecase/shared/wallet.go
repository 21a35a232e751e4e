package shared

import (
	"context"
	"time"

	"cozycup/internal/domain/wallet"

	"github.com/google/uuid"
)

// WalletStore persists purchases and redemptions. Postgres and MongoDB
// implementations exist; the redeem use case picks its strategy from
// SupportsTransactions rather than from the concrete type.
type WalletStore interface {
	WalletWriter
	SupportsTransactions() bool
	// WithinTx runs fn atomically. Only valid when SupportsTransactions is true.
	WithinTx(ctx context.Context, fn func(ctx context.Context, w WalletWriter) error) error
	CreatePurchase(ctx context.Context, p *wallet.Purchase) error
	FindPurchaseByID(ctx context.Context, id uuid.UUID) (*wallet.Purchase, error)
	ListPurchases(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*wallet.Purchase, int, error)
	DayTotals(ctx context.Context, from, to time.Time) (WalletDayTotals, error)
}

type WalletWriter interface {
	// FindOwnedPurchase loads a purchase scoped to its owner. Inside WithinTx the row is locked.
	FindOwnedPurchase(ctx context.Context, purchaseID, customerID uuid.UUID) (*wallet.Purchase, error)
	// CompareAndSetCredits persists p's balance only if the stored version is still expectedVersion.
	CompareAndSetCredits(ctx context.Context, p *wallet.Purchase, expectedVersion int64) (bool, error)
	InsertRedemption(ctx context.Context, r *wallet.Redemption) error
	// RefundCredit gives one credit back after a redemption insert failed outside a transaction.
	RefundCredit(ctx context.Context, purchaseID uuid.UUID) error
}

type WalletDayTotals struct {
	Purchases   int
	Credits     int
	Redemptions int
}
