package queries

import (
	"context"
	"time"

	"cozycup/internal/domain/wallet"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type PackageView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Credits    int       `json:"credits"`
	PriceCents int64     `json:"priceCents"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewPackageView(p *wallet.Package) *PackageView {
	return &PackageView{
		ID:         p.ID(),
		Name:       p.Name(),
		Credits:    p.Credits(),
		PriceCents: p.PriceCents(),
		IsActive:   p.IsActive(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}
}

type PurchaseView struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	PackageID     uuid.UUID `json:"packageId"`
	CreditsTotal  int       `json:"creditsTotal"`
	CreditsLeft   int       `json:"creditsLeft"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewPurchaseView(p *wallet.Purchase) *PurchaseView {
	return &PurchaseView{
		ID:            p.ID(),
		CustomerID:    p.CustomerID(),
		PackageID:     p.PackageID(),
		CreditsTotal:  p.CreditsTotal(),
		CreditsLeft:   p.CreditsLeft(),
		PaymentMethod: p.PaymentMethod().String(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

type RedemptionView struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	PurchaseID uuid.UUID `json:"purchaseId"`
	RedeemedAt time.Time `json:"redeemedAt"`
}

func NewRedemptionView(r *wallet.Redemption) *RedemptionView {
	return &RedemptionView{
		ID:         r.ID(),
		CustomerID: r.CustomerID(),
		PurchaseID: r.PurchaseID(),
		RedeemedAt: r.RedeemedAt(),
	}
}

// WalletItemView is a purchase with the package it was bought from, when that package still exists.
type WalletItemView struct {
	PurchaseView
	Package *PackageView `json:"package"`
}

type PackageReadStore interface {
	ListActive(ctx context.Context, limit, offset int) ([]*PackageView, error)
	CountActive(ctx context.Context) (int, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*PackageView, error)
}

type WalletQueries interface {
	ListPackages(ctx context.Context, limit, offset int) (*Page[*PackageView], error)
	MyWallet(ctx context.Context, customerID uuid.UUID, limit, offset int) (*Page[*WalletItemView], error)
}

type walletQueriesImpl struct {
	packages PackageReadStore
	wallet   shared.WalletStore
}

func NewWalletQueries(packages PackageReadStore, wallet shared.WalletStore) WalletQueries {
	return &walletQueriesImpl{packages: packages, wallet: wallet}
}

func (q *walletQueriesImpl) ListPackages(ctx context.Context, limit, offset int) (*Page[*PackageView], error) {
	limit, offset = WalletBounds.Clamp(limit, offset)
	page, err := fetchPage(ctx, limit, offset,
		func(ctx context.Context) ([]*PackageView, error) { return q.packages.ListActive(ctx, limit, offset) },
		q.packages.CountActive,
	)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Package not found")
	}
	return page, nil
}

func (q *walletQueriesImpl) MyWallet(ctx context.Context, customerID uuid.UUID, limit, offset int) (*Page[*WalletItemView], error) {
	limit, offset = WalletBounds.Clamp(limit, offset)

	purchases, total, err := q.wallet.ListPurchases(ctx, customerID, limit, offset)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Purchase not found")
	}

	ids := make([]uuid.UUID, 0, len(purchases))
	seen := make(map[uuid.UUID]struct{}, len(purchases))
	for _, p := range purchases {
		if _, ok := seen[p.PackageID()]; ok {
			continue
		}
		seen[p.PackageID()] = struct{}{}
		ids = append(ids, p.PackageID())
	}

	byID := make(map[uuid.UUID]*PackageView, len(ids))
	if len(ids) > 0 {
		pkgs, err := q.packages.FindByIDs(ctx, ids)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "Package not found")
		}
		for _, p := range pkgs {
			byID[p.ID] = p
		}
	}

	items := make([]*WalletItemView, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, &WalletItemView{
			PurchaseView: *NewPurchaseView(p),
			Package:      byID[p.PackageID()],
		})
	}
	return &Page[*WalletItemView]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}
