package response

import (
	"time"

	"github.com/google/uuid"
)

type MenuItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Category     string    `json:"category"`
	PriceCents   int64     `json:"priceCents"`
	Currency     string    `json:"currency"`
	DisplayOrder int       `json:"displayOrder"`
	Tags         []string  `json:"tags"`
	Allergens    []string  `json:"allergens"`
	IsActive     bool      `json:"isActive"`
	IsDeleted    bool      `json:"isDeleted"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PoolResponse is served for both pickup windows and slots.
type PoolResponse struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"kind"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	Capacity     int       `json:"capacity"`
	BookedCount  int       `json:"bookedCount"`
	Remaining    int       `json:"remaining"`
	Status       string    `json:"status"`
	IsActive     bool      `json:"isActive"`
	IsDeleted    bool      `json:"isDeleted"`
	DisplayOrder int       `json:"displayOrder"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
