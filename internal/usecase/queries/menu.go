package queries

import (
	"context"
	"strings"
	"time"

	"cozycup/internal/domain/menu"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type MenuItemView struct {
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

func NewMenuItemView(it *menu.Item) *MenuItemView {
	return &MenuItemView{
		ID:           it.ID(),
		Name:         it.Name(),
		Description:  it.Description(),
		ImageURL:     it.ImageURL(),
		Category:     it.Category(),
		PriceCents:   it.PriceCents(),
		Currency:     it.Currency(),
		DisplayOrder: it.DisplayOrder(),
		Tags:         it.Tags(),
		Allergens:    it.Allergens(),
		IsActive:     it.IsActive(),
		IsDeleted:    it.IsDeleted(),
		CreatedAt:    it.CreatedAt(),
		UpdatedAt:    it.UpdatedAt(),
	}
}

// SortKey is one column of an ORDER BY. Field is always one of sortableMenuFields.
type SortKey struct {
	Field string
	Desc  bool
}

var sortableMenuFields = map[string]string{
	"displayOrder": "display_order",
	"priceCents":   "price_cents",
	"name":         "name",
	"createdAt":    "created_at",
}

// DefaultMenuSort orders by displayOrder, then name.
var DefaultMenuSort = []SortKey{{Field: "display_order"}, {Field: "name"}}

// ParseMenuSort reads "field:dir[,field:dir]" and maps each field to its column.
func ParseMenuSort(raw string) ([]SortKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultMenuSort, nil
	}
	var keys []SortKey
	for _, part := range strings.Split(raw, ",") {
		field, dir, _ := strings.Cut(strings.TrimSpace(part), ":")
		col, ok := sortableMenuFields[field]
		if !ok {
			return nil, errs.Validation("Unsupported sort field %q", field)
		}
		switch strings.ToLower(dir) {
		case "", "asc":
			keys = append(keys, SortKey{Field: col})
		case "desc":
			keys = append(keys, SortKey{Field: col, Desc: true})
		default:
			return nil, errs.Validation("Unsupported sort direction %q", dir)
		}
	}
	return keys, nil
}

type MenuFilter struct {
	Category string
	Query    string
	Sort     []SortKey
	Limit    int
	Offset   int
}

type MenuReadStore interface {
	List(ctx context.Context, f MenuFilter) ([]*MenuItemView, error)
	Count(ctx context.Context, f MenuFilter) (int, error)
}

type MenuQueries interface {
	List(ctx context.Context, f MenuFilter) (*Page[*MenuItemView], error)
}

type menuQueriesImpl struct {
	readStore MenuReadStore
}

func NewMenuQueries(readStore MenuReadStore) MenuQueries {
	return &menuQueriesImpl{readStore: readStore}
}

func (q *menuQueriesImpl) List(ctx context.Context, f MenuFilter) (*Page[*MenuItemView], error) {
	f.Limit, f.Offset = CatalogBounds.Clamp(f.Limit, f.Offset)
	if len(f.Sort) == 0 {
		f.Sort = DefaultMenuSort
	}
	page, err := fetchPage(ctx, f.Limit, f.Offset,
		func(ctx context.Context) ([]*MenuItemView, error) { return q.readStore.List(ctx, f) },
		func(ctx context.Context) (int, error) { return q.readStore.Count(ctx, f) },
	)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Not found")
	}
	return page, nil
}
