//go:build unit || e2e

package memstore

import (
	"context"
	"sort"
	"time"

	"cozycup/internal/domain/wallet"
	"cozycup/internal/infra"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

// Wallet returns the store as a shared.WalletStore.
func (s *Store) Wallet() shared.WalletStore {
	return walletStore{s}
}

type walletStore struct{ s *Store }

func (w walletStore) SupportsTransactions() bool {
	return w.s.Transactions
}

// WithinTx holds the store lock for the whole callback and applies the staged
// writes only when fn succeeds.
func (w walletStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx shared.WalletWriter) error) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()

	staged := &stagedWriter{s: w.s, purchases: map[uuid.UUID]*wallet.Purchase{}}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	for id, p := range staged.purchases {
		w.s.purchases[id] = p
	}
	w.s.redemptions = append(w.s.redemptions, staged.redemptions...)
	return nil
}

func (w walletStore) FindOwnedPurchase(_ context.Context, purchaseID, customerID uuid.UUID) (*wallet.Purchase, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return w.s.findOwned(purchaseID, customerID)
}

func (w walletStore) CompareAndSetCredits(_ context.Context, p *wallet.Purchase, expectedVersion int64) (bool, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	stored, ok := w.s.purchases[p.ID()]
	if !ok || stored.Version() != expectedVersion {
		return false, nil
	}
	w.s.purchases[p.ID()] = clonePurchase(p)
	return true, nil
}

func (w walletStore) InsertRedemption(_ context.Context, r *wallet.Redemption) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	if err := w.s.takeInsertFailure(); err != nil {
		return err
	}
	w.s.redemptions = append(w.s.redemptions, r)
	return nil
}

func (w walletStore) RefundCredit(_ context.Context, purchaseID uuid.UUID) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	p, ok := w.s.purchases[purchaseID]
	if !ok {
		return infra.NotFound("purchase not found")
	}
	w.s.purchases[purchaseID] = wallet.ReconstructPurchase(p.ID(), p.CustomerID(), p.PackageID(),
		p.CreditsTotal(), p.CreditsLeft()+1, p.PaymentMethod(), p.Version()+1, p.CreatedAt(), p.UpdatedAt())
	return nil
}

func (w walletStore) CreatePurchase(_ context.Context, p *wallet.Purchase) error {
	w.s.PutPurchase(p)
	return nil
}

func (w walletStore) FindPurchaseByID(_ context.Context, id uuid.UUID) (*wallet.Purchase, error) {
	if p := w.s.Purchase(id); p != nil {
		return p, nil
	}
	return nil, infra.NotFound("purchase not found")
}

func (w walletStore) ListPurchases(_ context.Context, customerID uuid.UUID, limit, offset int) ([]*wallet.Purchase, int, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	var owned []*wallet.Purchase
	for _, p := range w.s.purchases {
		if p.IsOwnedBy(customerID) {
			owned = append(owned, clonePurchase(p))
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt().After(owned[j].CreatedAt()) })
	total := len(owned)
	if offset >= total {
		return []*wallet.Purchase{}, total, nil
	}
	end := min(offset+limit, total)
	return owned[offset:end], total, nil
}

func (w walletStore) DayTotals(_ context.Context, from, to time.Time) (shared.WalletDayTotals, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	in := func(t time.Time) bool { return !t.Before(from) && t.Before(to) }
	var totals shared.WalletDayTotals
	for _, p := range w.s.purchases {
		if in(p.CreatedAt()) {
			totals.Purchases++
			totals.Credits += p.CreditsTotal()
		}
	}
	for _, r := range w.s.redemptions {
		if in(r.RedeemedAt()) {
			totals.Redemptions++
		}
	}
	return totals, nil
}

// stagedWriter runs with mu already held by WithinTx.
type stagedWriter struct {
	s           *Store
	purchases   map[uuid.UUID]*wallet.Purchase
	redemptions []*wallet.Redemption
}

func (t *stagedWriter) FindOwnedPurchase(_ context.Context, purchaseID, customerID uuid.UUID) (*wallet.Purchase, error) {
	if p, ok := t.purchases[purchaseID]; ok && p.IsOwnedBy(customerID) {
		return clonePurchase(p), nil
	}
	return t.s.findOwned(purchaseID, customerID)
}

func (t *stagedWriter) CompareAndSetCredits(_ context.Context, p *wallet.Purchase, expectedVersion int64) (bool, error) {
	current, ok := t.purchases[p.ID()]
	if !ok {
		current, ok = t.s.purchases[p.ID()]
	}
	if !ok || current.Version() != expectedVersion {
		return false, nil
	}
	t.purchases[p.ID()] = clonePurchase(p)
	return true, nil
}

func (t *stagedWriter) InsertRedemption(_ context.Context, r *wallet.Redemption) error {
	if err := t.s.takeInsertFailure(); err != nil {
		return err
	}
	t.redemptions = append(t.redemptions, r)
	return nil
}

func (t *stagedWriter) RefundCredit(context.Context, uuid.UUID) error {
	return nil
}

// findOwned must be called with mu held.
func (s *Store) findOwned(purchaseID, customerID uuid.UUID) (*wallet.Purchase, error) {
	p, ok := s.purchases[purchaseID]
	if !ok || !p.IsOwnedBy(customerID) {
		return nil, infra.NotFound("purchase not found")
	}
	return clonePurchase(p), nil
}

func (s *Store) takeInsertFailure() error {
	err := s.FailRedemptionInsert
	s.FailRedemptionInsert = nil
	return err
}
