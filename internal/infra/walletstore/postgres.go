package walletstore

import (
	"context"
	"time"

	"cozycup/internal/domain/wallet"
	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/pkg/pgconv"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertPurchase = `INSERT INTO purchases (` + converter.PurchaseColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectPurchase = `SELECT ` + converter.PurchaseColumns + ` FROM purchases WHERE id = $1`

	selectOwnedPurchase = `SELECT ` + converter.PurchaseColumns + ` FROM purchases WHERE id = $1 AND customer_id = $2`

	casPurchaseCredits = `UPDATE purchases
SET credits_left = $3, version = $4, updated_at = $5
WHERE id = $1 AND version = $2`

	refundPurchaseCredit = `UPDATE purchases
SET credits_left = credits_left + 1, version = version + 1, updated_at = now()
WHERE id = $1`

	insertRedemption = `INSERT INTO redemptions (id, customer_id, purchase_id, redeemed_at) VALUES ($1, $2, $3, $4)`

	listPurchasesByCustomer = `SELECT ` + converter.PurchaseColumns + `
FROM purchases WHERE customer_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`

	countPurchasesByCustomer = `SELECT count(*) FROM purchases WHERE customer_id = $1`

	purchaseDayTotals = `SELECT count(*), COALESCE(sum(credits_total), 0)
FROM purchases WHERE created_at >= $1 AND created_at < $2`

	redemptionDayTotals = `SELECT count(*) FROM redemptions WHERE redeemed_at >= $1 AND redeemed_at < $2`
)

// PostgresStore keeps the wallet in the primary database, so redemption runs
// inside one transaction with the purchase row locked.
type PostgresStore struct {
	writer
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{writer: writer{db: pool}, pool: pool}
}

func (s *PostgresStore) SupportsTransactions() bool { return true }

func (s *PostgresStore) WithinTx(ctx context.Context, fn func(ctx context.Context, w shared.WalletWriter) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(ctx, &writer{db: tx, lock: true})
	})
}

func (s *PostgresStore) CreatePurchase(ctx context.Context, p *wallet.Purchase) error {
	if _, err := s.db.Exec(ctx, insertPurchase, converter.PurchaseArgs(p)...); err != nil {
		return infra.WrapRepoErr("failed to create purchase", err)
	}
	return nil
}

func (s *PostgresStore) FindPurchaseByID(ctx context.Context, id uuid.UUID) (*wallet.Purchase, error) {
	return s.scanPurchase(s.db.QueryRow(ctx, selectPurchase, id))
}

func (s *PostgresStore) ListPurchases(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*wallet.Purchase, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, countPurchasesByCustomer, customerID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count purchases", err)
	}

	rows, err := s.db.Query(ctx, listPurchasesByCustomer, customerID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list purchases", err)
	}
	defer rows.Close()

	purchases := []*wallet.Purchase{}
	for rows.Next() {
		p, err := converter.ScanPurchase(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan purchase", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list purchases", err)
	}
	return purchases, total, nil
}

func (s *PostgresStore) DayTotals(ctx context.Context, from, to time.Time) (shared.WalletDayTotals, error) {
	var t shared.WalletDayTotals
	if err := s.db.QueryRow(ctx, purchaseDayTotals, from, to).Scan(&t.Purchases, &t.Credits); err != nil {
		return shared.WalletDayTotals{}, infra.WrapRepoErr("failed to total purchases", err)
	}
	if err := s.db.QueryRow(ctx, redemptionDayTotals, from, to).Scan(&t.Redemptions); err != nil {
		return shared.WalletDayTotals{}, infra.WrapRepoErr("failed to total redemptions", err)
	}
	return t, nil
}

// writer runs against the pool, or against a transaction when lock is set.
type writer struct {
	db   db.DBTX
	lock bool
}

func (w *writer) FindOwnedPurchase(ctx context.Context, purchaseID, customerID uuid.UUID) (*wallet.Purchase, error) {
	query := selectOwnedPurchase
	if w.lock {
		query += " FOR UPDATE"
	}
	return w.scanPurchase(w.db.QueryRow(ctx, query, purchaseID, customerID))
}

func (w *writer) CompareAndSetCredits(ctx context.Context, p *wallet.Purchase, expectedVersion int64) (bool, error) {
	tag, err := w.db.Exec(ctx, casPurchaseCredits, p.ID(), expectedVersion, p.CreditsLeft(), p.Version(), p.UpdatedAt())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update purchase credits", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (w *writer) InsertRedemption(ctx context.Context, r *wallet.Redemption) error {
	if _, err := w.db.Exec(ctx, insertRedemption, r.ID(), r.CustomerID(), r.PurchaseID(), r.RedeemedAt()); err != nil {
		return infra.WrapRepoErr("failed to record redemption", err)
	}
	return nil
}

func (w *writer) RefundCredit(ctx context.Context, purchaseID uuid.UUID) error {
	tag, err := w.db.Exec(ctx, refundPurchaseCredit, purchaseID)
	if err != nil {
		return infra.WrapRepoErr("failed to refund credit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("purchase not found")
	}
	return nil
}

func (w *writer) scanPurchase(row pgx.Row) (*wallet.Purchase, error) {
	p, err := converter.ScanPurchase(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find purchase", err)
	}
	return p, nil
}
