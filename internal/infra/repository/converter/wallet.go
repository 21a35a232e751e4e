package converter

import (
	"time"

	"cozycup/internal/domain/wallet"

	"github.com/google/uuid"
)

const PackageColumns = `id, name, credits, price_cents, is_active, created_at, updated_at`

func ScanPackage(row Row) (*wallet.Package, error) {
	var (
		id                   uuid.UUID
		name                 string
		credits              int
		priceCents           int64
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &credits, &priceCents, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return wallet.ReconstructPackage(id, name, credits, priceCents, isActive, createdAt.UTC(), updatedAt.UTC()), nil
}

const PurchaseColumns = `id, customer_id, package_id, credits_total, credits_left,
	payment_method, version, created_at, updated_at`

func ScanPurchase(row Row) (*wallet.Purchase, error) {
	var (
		id, customerID, packageID uuid.UUID
		creditsTotal, creditsLeft int
		method                    string
		version                   int64
		createdAt, updatedAt      time.Time
	)
	err := row.Scan(&id, &customerID, &packageID, &creditsTotal, &creditsLeft, &method, &version, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return wallet.ReconstructPurchase(
		id, customerID, packageID, creditsTotal, creditsLeft,
		wallet.PaymentMethod(method), version, createdAt.UTC(), updatedAt.UTC(),
	), nil
}

// PurchaseArgs lists p's values in PurchaseColumns order.
func PurchaseArgs(p *wallet.Purchase) []any {
	return []any{
		p.ID(), p.CustomerID(), p.PackageID(), p.CreditsTotal(), p.CreditsLeft(),
		p.PaymentMethod().String(), p.Version(), p.CreatedAt(), p.UpdatedAt(),
	}
}
