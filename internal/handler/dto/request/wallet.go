package request

import (
	"cozycup/internal/domain/wallet"
	"cozycup/internal/pkg/patch"
	"cozycup/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePackageRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Credits    int    `json:"credits" binding:"required,min=1,max=1000"`
	PriceCents int64  `json:"priceCents" binding:"required,gt=0"`
	IsActive   *bool  `json:"isActive"`
}

func (r CreatePackageRequest) ToInput() commands.CreatePackageInput {
	return commands.CreatePackageInput{
		Name:       r.Name,
		Credits:    r.Credits,
		PriceCents: r.PriceCents,
		IsActive:   patch.Coalesce(r.IsActive, true),
	}
}

type PurchaseRequest struct {
	PackageID     uuid.UUID `json:"packageId" binding:"required"`
	PaymentMethod string    `json:"paymentMethod" binding:"omitempty,oneof=CASH MOCK"`
}

func (r PurchaseRequest) ToInput() commands.PurchaseInput {
	method := r.PaymentMethod
	if method == "" {
		method = wallet.PaymentMock.String()
	}
	return commands.PurchaseInput{PackageID: r.PackageID, PaymentMethod: method}
}

// RedeemRequest names the purchase directly or carries a redeem token.
type RedeemRequest struct {
	PurchaseID *uuid.UUID `json:"purchaseId"`
	Token      string     `json:"token" binding:"omitempty,min=10"`
}

func (r RedeemRequest) ToInput() commands.RedeemInput {
	return commands.RedeemInput{PurchaseID: r.PurchaseID, Token: r.Token}
}

type RedeemTokenRequest struct {
	PurchaseID uuid.UUID `json:"purchaseId" binding:"required"`
}
