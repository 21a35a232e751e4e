package response

import (
	"time"

	"github.com/google/uuid"
)

type LineItemResponse struct {
	MenuItemID     uuid.UUID `json:"menuItemId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
	Variants       []string  `json:"variants,omitempty"`
}

type ReservationResponse struct {
	ID            uuid.UUID          `json:"id"`
	Kind          string             `json:"kind"`
	CustomerID    uuid.UUID          `json:"customerId"`
	PoolID        uuid.UUID          `json:"poolId"`
	Status        string             `json:"status"`
	Items         []LineItemResponse `json:"items,omitempty"`
	SubtotalCents int64              `json:"subtotalCents"`
	DiscountCents int64              `json:"discountCents"`
	TotalCents    int64              `json:"totalCents"`
	Notes         string             `json:"notes"`
	StartAt       time.Time          `json:"startAt"`
	EndAt         time.Time          `json:"endAt"`
	CancelledAt   *time.Time         `json:"cancelledAt"`
	CancelledBy   *string            `json:"cancelledBy"`
	CheckedInAt   *time.Time         `json:"checkedInAt"`
	CheckedInBy   *string            `json:"checkedInBy"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type QRTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
