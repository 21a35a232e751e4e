package response

import (
	"time"

	"github.com/google/uuid"
)

type PackageResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Credits    int       `json:"credits"`
	PriceCents int64     `json:"priceCents"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type PurchaseResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	PackageID     uuid.UUID `json:"packageId"`
	CreditsTotal  int       `json:"creditsTotal"`
	CreditsLeft   int       `json:"creditsLeft"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type WalletItemResponse struct {
	PurchaseResponse
	Package *PackageResponse `json:"package"`
}

type RedemptionResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	PurchaseID uuid.UUID `json:"purchaseId"`
	RedeemedAt time.Time `json:"redeemedAt"`
}

type RedeemResponse struct {
	PurchaseID   uuid.UUID           `json:"purchaseId"`
	CreditsLeft  int                 `json:"creditsLeft"`
	RedemptionID uuid.UUID           `json:"redemptionId"`
	Redemption   *RedemptionResponse `json:"redemption"`
}
