//go:build unit || e2e

package builder

import (
	"cozycup/internal/domain/menu"

	"github.com/google/uuid"
)

type MenuItemBuilder struct {
	ID         uuid.UUID
	Name       string
	Category   string
	PriceCents int64
	Currency   string
	IsActive   bool
	IsDeleted  bool
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:         uuid.New(),
		Name:       "Flat White",
		Category:   "coffee",
		PriceCents: 1400,
		Currency:   "ILS",
		IsActive:   true,
	}
}

func (b *MenuItemBuilder) With(mutate func(*MenuItemBuilder)) *MenuItemBuilder {
	mutate(b)
	return b
}

func (b *MenuItemBuilder) BuildNew() (*menu.Item, error) {
	return menu.NewItem(menu.Params{
		Name:       b.Name,
		Category:   b.Category,
		PriceCents: b.PriceCents,
		Currency:   b.Currency,
		IsActive:   b.IsActive,
	}, BaseTime)
}

func (b *MenuItemBuilder) Build() *menu.Item {
	return menu.Reconstruct(menu.Snapshot{
		ID:         b.ID,
		Name:       b.Name,
		Category:   b.Category,
		PriceCents: b.PriceCents,
		Currency:   b.Currency,
		IsActive:   b.IsActive,
		IsDeleted:  b.IsDeleted,
		CreatedAt:  BaseTime,
		UpdatedAt:  BaseTime,
	})
}

func (b *MenuItemBuilder) WithPrice(cents int64) *MenuItemBuilder {
	b.PriceCents = cents
	return b
}

func (b *MenuItemBuilder) Deleted() *MenuItemBuilder {
	b.IsDeleted = true
	return b
}
