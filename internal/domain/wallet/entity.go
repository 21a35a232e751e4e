package wallet

import (
	"strings"
	"time"

	"cozycup/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxPackageNameLength = 120

var (
	ErrInvalidName    = errs.New("invalid name")
	ErrInvalidCredits = errs.New("invalid credits")
	ErrInvalidPrice   = errs.New("invalid price")
	ErrNoCreditsLeft  = errs.New("no credits left")
	ErrPackageClosed  = errs.New("package is not active")
)

// Package is a prepaid bundle of credits sold at a fixed price.
type Package struct {
	id         uuid.UUID
	name       string
	credits    int
	priceCents int64
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewPackage trims the name and cuts it to MaxPackageNameLength runes.
func NewPackage(name string, credits int, priceCents int64, isActive bool, now time.Time) (*Package, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, ErrInvalidName
	}
	if r := []rune(n); len(r) > MaxPackageNameLength {
		n = string(r[:MaxPackageNameLength])
	}
	if credits < 1 {
		return nil, ErrInvalidCredits
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &Package{
		id:         uuid.New(),
		name:       n,
		credits:    credits,
		priceCents: priceCents,
		isActive:   isActive,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPackage(id uuid.UUID, name string, credits int, priceCents int64, isActive bool, createdAt, updatedAt time.Time) *Package {
	return &Package{
		id:         id,
		name:       name,
		credits:    credits,
		priceCents: priceCents,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (p *Package) ID() uuid.UUID        { return p.id }
func (p *Package) Name() string         { return p.name }
func (p *Package) Credits() int         { return p.credits }
func (p *Package) PriceCents() int64    { return p.priceCents }
func (p *Package) IsActive() bool       { return p.isActive }
func (p *Package) CreatedAt() time.Time { return p.createdAt }
func (p *Package) UpdatedAt() time.Time { return p.updatedAt }

// Purchase is one customer's balance bought through a package.
type Purchase struct {
	id            uuid.UUID
	customerID    uuid.UUID
	packageID     uuid.UUID
	creditsTotal  int
	creditsLeft   int
	paymentMethod PaymentMethod
	version       int64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPurchase(customerID uuid.UUID, pkg *Package, method PaymentMethod, now time.Time) (*Purchase, error) {
	if !pkg.IsActive() {
		return nil, ErrPackageClosed
	}
	return &Purchase{
		id:            uuid.New(),
		customerID:    customerID,
		packageID:     pkg.ID(),
		creditsTotal:  pkg.Credits(),
		creditsLeft:   pkg.Credits(),
		paymentMethod: method,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPurchase(
	id, customerID, packageID uuid.UUID,
	creditsTotal, creditsLeft int,
	method PaymentMethod,
	version int64,
	createdAt, updatedAt time.Time,
) *Purchase {
	return &Purchase{
		id:            id,
		customerID:    customerID,
		packageID:     packageID,
		creditsTotal:  creditsTotal,
		creditsLeft:   creditsLeft,
		paymentMethod: method,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Debit takes one credit. The stored version is bumped so that a
// compare-and-set writer can detect a concurrent debit.
func (p *Purchase) Debit(now time.Time) error {
	if p.creditsLeft <= 0 {
		return ErrNoCreditsLeft
	}
	p.creditsLeft--
	p.version++
	p.updatedAt = now
	return nil
}

func (p *Purchase) HasCredits() bool {
	return p.creditsLeft > 0
}

func (p *Purchase) IsOwnedBy(customerID uuid.UUID) bool {
	return p.customerID == customerID
}

func (p *Purchase) ID() uuid.UUID                { return p.id }
func (p *Purchase) CustomerID() uuid.UUID        { return p.customerID }
func (p *Purchase) PackageID() uuid.UUID         { return p.packageID }
func (p *Purchase) CreditsTotal() int            { return p.creditsTotal }
func (p *Purchase) CreditsLeft() int             { return p.creditsLeft }
func (p *Purchase) PaymentMethod() PaymentMethod { return p.paymentMethod }
func (p *Purchase) Version() int64               { return p.version }
func (p *Purchase) CreatedAt() time.Time         { return p.createdAt }
func (p *Purchase) UpdatedAt() time.Time         { return p.updatedAt }

// Redemption is the append-only record of one consumed credit.
type Redemption struct {
	id         uuid.UUID
	customerID uuid.UUID
	purchaseID uuid.UUID
	redeemedAt time.Time
}

func NewRedemption(p *Purchase, now time.Time) *Redemption {
	return &Redemption{
		id:         uuid.New(),
		customerID: p.CustomerID(),
		purchaseID: p.ID(),
		redeemedAt: now,
	}
}

func ReconstructRedemption(id, customerID, purchaseID uuid.UUID, redeemedAt time.Time) *Redemption {
	return &Redemption{id: id, customerID: customerID, purchaseID: purchaseID, redeemedAt: redeemedAt}
}

func (r *Redemption) ID() uuid.UUID         { return r.id }
func (r *Redemption) CustomerID() uuid.UUID { return r.customerID }
func (r *Redemption) PurchaseID() uuid.UUID { return r.purchaseID }
func (r *Redemption) RedeemedAt() time.Time { return r.redeemedAt }
