//go:build unit || e2e

package builder

import (
	"cozycup/internal/domain/wallet"

	"github.com/google/uuid"
)

type PackageBuilder struct {
	ID         uuid.UUID
	Name       string
	Credits    int
	PriceCents int64
	IsActive   bool
}

func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		ID:         uuid.New(),
		Name:       "Ten Coffees",
		Credits:    10,
		PriceCents: 12000,
		IsActive:   true,
	}
}

func (b *PackageBuilder) With(mutate func(*PackageBuilder)) *PackageBuilder {
	mutate(b)
	return b
}

func (b *PackageBuilder) BuildNew() (*wallet.Package, error) {
	return wallet.NewPackage(b.Name, b.Credits, b.PriceCents, b.IsActive, BaseTime)
}

func (b *PackageBuilder) Build() *wallet.Package {
	return wallet.ReconstructPackage(b.ID, b.Name, b.Credits, b.PriceCents, b.IsActive, BaseTime, BaseTime)
}

type PurchaseBuilder struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	PackageID   uuid.UUID
	CreditsLeft int
	Method      wallet.PaymentMethod
	Version     int64
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		PackageID:   uuid.New(),
		CreditsLeft: 2,
		Method:      wallet.PaymentMock,
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) Build() *wallet.Purchase {
	return wallet.ReconstructPurchase(b.ID, b.CustomerID, b.PackageID, b.CreditsLeft, b.CreditsLeft, b.Method, b.Version, BaseTime, BaseTime)
}

func (b *PurchaseBuilder) OwnedBy(customerID uuid.UUID) *PurchaseBuilder {
	b.CustomerID = customerID
	return b
}

func (b *PurchaseBuilder) WithCredits(n int) *PurchaseBuilder {
	b.CreditsLeft = n
	return b
}
