package request

import (
	"time"

	"cozycup/internal/domain/menu"
	"cozycup/internal/domain/pool"
	"cozycup/internal/pkg/patch"
)

type CreateMenuItemRequest struct {
	Name         string   `json:"name" binding:"required,max=100"`
	Description  string   `json:"description" binding:"max=500"`
	ImageURL     string   `json:"imageUrl" binding:"omitempty,url,max=500"`
	Category     string   `json:"category" binding:"required,max=50"`
	PriceCents   int64    `json:"priceCents" binding:"required,gt=0"`
	Currency     string   `json:"currency" binding:"omitempty,len=3"`
	DisplayOrder int      `json:"displayOrder" binding:"min=-1000000,max=1000000"`
	Tags         []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=30"`
	Allergens    []string `json:"allergens" binding:"omitempty,max=20,dive,min=1,max=30"`
	IsActive     *bool    `json:"isActive"`
}

func (r CreateMenuItemRequest) ToParams() menu.Params {
	return menu.Params{
		Name:         r.Name,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Category:     r.Category,
		PriceCents:   r.PriceCents,
		Currency:     r.Currency,
		DisplayOrder: r.DisplayOrder,
		Tags:         r.Tags,
		Allergens:    r.Allergens,
		IsActive:     patch.Coalesce(r.IsActive, true),
	}
}

type PatchMenuItemRequest struct {
	Name         *string   `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string   `json:"description" binding:"omitempty,max=500"`
	ImageURL     *string   `json:"imageUrl" binding:"omitempty,url,max=500"`
	Category     *string   `json:"category" binding:"omitempty,min=1,max=50"`
	PriceCents   *int64    `json:"priceCents" binding:"omitempty,gt=0"`
	Currency     *string   `json:"currency" binding:"omitempty,len=3"`
	DisplayOrder *int      `json:"displayOrder" binding:"omitempty,min=-1000000,max=1000000"`
	Tags         *[]string `json:"tags" binding:"omitempty,max=20"`
	Allergens    *[]string `json:"allergens" binding:"omitempty,max=20"`
	IsActive     *bool     `json:"isActive"`
	IsDeleted    *bool     `json:"isDeleted"`
}

func (r PatchMenuItemRequest) ToPatch() menu.Patch {
	return menu.Patch{
		Name:         r.Name,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Category:     r.Category,
		PriceCents:   r.PriceCents,
		Currency:     r.Currency,
		DisplayOrder: r.DisplayOrder,
		Tags:         r.Tags,
		Allergens:    r.Allergens,
		IsActive:     r.IsActive,
		IsDeleted:    r.IsDeleted,
	}
}

type CreatePoolRequest struct {
	StartAt      time.Time `json:"startAt" binding:"required"`
	EndAt        time.Time `json:"endAt" binding:"required"`
	Capacity     *int      `json:"capacity" binding:"required,min=0,max=100000"`
	Status       string    `json:"status" binding:"omitempty,oneof=open closed"`
	IsActive     *bool     `json:"isActive"`
	DisplayOrder int       `json:"displayOrder" binding:"min=-1000000,max=1000000"`
	Notes        string    `json:"notes" binding:"max=300"`
}

func (r CreatePoolRequest) ToParams(kind pool.Kind) pool.Params {
	return pool.Params{
		Kind:         kind,
		StartAt:      r.StartAt,
		EndAt:        r.EndAt,
		Capacity:     patch.Coalesce(r.Capacity, 0),
		Status:       pool.Status(r.Status),
		IsActive:     patch.Coalesce(r.IsActive, true),
		DisplayOrder: r.DisplayOrder,
		Notes:        r.Notes,
	}
}

// PatchPoolRequest covers edit, close/open, activate and soft-delete.
type PatchPoolRequest struct {
	StartAt      *time.Time `json:"startAt"`
	EndAt        *time.Time `json:"endAt"`
	Capacity     *int       `json:"capacity" binding:"omitempty,min=0,max=100000"`
	Status       *string    `json:"status" binding:"omitempty,oneof=open closed"`
	IsActive     *bool      `json:"isActive"`
	IsDeleted    *bool      `json:"isDeleted"`
	DisplayOrder *int       `json:"displayOrder" binding:"omitempty,min=-1000000,max=1000000"`
	Notes        *string    `json:"notes" binding:"omitempty,max=300"`
}

func (r PatchPoolRequest) ToPatch() pool.Patch {
	ch := pool.Patch{
		StartAt:      r.StartAt,
		EndAt:        r.EndAt,
		Capacity:     r.Capacity,
		IsActive:     r.IsActive,
		IsDeleted:    r.IsDeleted,
		DisplayOrder: r.DisplayOrder,
		Notes:        r.Notes,
	}
	if r.Status != nil {
		ch.Status = patch.Ptr(pool.Status(*r.Status))
	}
	return ch
}
