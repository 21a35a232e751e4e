package menu

import (
	"strings"
	"time"

	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	MinNameLength     = 2
	MaxNameLength     = 80
	MaxCategoryLength = 40
	MaxListEntries    = 15
	MaxDisplayOrder   = 1_000_000
	DefaultCurrency   = "ILS"
)

var (
	ErrInvalidName       = errs.New("name must be 2-80 chars")
	ErrNegativePrice     = errs.New("priceCents must be non-negative")
	ErrCategoryTooLong   = errs.New("category must be up to 40 chars")
	ErrInvalidCurrency   = errs.New("currency must be 3-letter code")
	ErrDisplayOrderRange = errs.New("displayOrder out of range")
	ErrEmptyPatch        = errs.New("no updatable fields provided")
)

type Item struct {
	id           uuid.UUID
	name         string
	description  string
	imageURL     string
	category     string
	priceCents   int64
	currency     string
	displayOrder int
	tags         []string
	allergens    []string
	isActive     bool
	isDeleted    bool
	createdAt    time.Time
	updatedAt    time.Time
}

type Params struct {
	Name         string
	Description  string
	ImageURL     string
	Category     string
	PriceCents   int64
	Currency     string
	DisplayOrder int
	Tags         []string
	Allergens    []string
	IsActive     bool
}

func NewItem(p Params, now time.Time) (*Item, error) {
	currency := p.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	it := &Item{
		id:           uuid.New(),
		name:         strings.TrimSpace(p.Name),
		description:  strings.TrimSpace(p.Description),
		imageURL:     p.ImageURL,
		category:     strings.TrimSpace(p.Category),
		priceCents:   p.PriceCents,
		currency:     currency,
		displayOrder: p.DisplayOrder,
		tags:         capList(p.Tags),
		allergens:    capList(p.Allergens),
		isActive:     p.IsActive,
		createdAt:    now,
		updatedAt:    now,
	}
	if err := it.validate(); err != nil {
		return nil, err
	}
	return it, nil
}

type Snapshot struct {
	ID           uuid.UUID
	Name         string
	Description  string
	ImageURL     string
	Category     string
	PriceCents   int64
	Currency     string
	DisplayOrder int
	Tags         []string
	Allergens    []string
	IsActive     bool
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func Reconstruct(s Snapshot) *Item {
	return &Item{
		id:           s.ID,
		name:         s.Name,
		description:  s.Description,
		imageURL:     s.ImageURL,
		category:     s.Category,
		priceCents:   s.PriceCents,
		currency:     s.Currency,
		displayOrder: s.DisplayOrder,
		tags:         s.Tags,
		allergens:    s.Allergens,
		isActive:     s.IsActive,
		isDeleted:    s.IsDeleted,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}
}

func (it *Item) validate() error {
	if n := len([]rune(it.name)); n < MinNameLength || n > MaxNameLength {
		return ErrInvalidName
	}
	if it.priceCents < 0 {
		return ErrNegativePrice
	}
	if len([]rune(it.category)) > MaxCategoryLength {
		return ErrCategoryTooLong
	}
	if len(it.currency) != 3 {
		return ErrInvalidCurrency
	}
	if it.displayOrder < -MaxDisplayOrder || it.displayOrder > MaxDisplayOrder {
		return ErrDisplayOrderRange
	}
	return nil
}

type Patch struct {
	Name         *string
	Description  *string
	ImageURL     *string
	Category     *string
	PriceCents   *int64
	Currency     *string
	DisplayOrder *int
	Tags         *[]string
	Allergens    *[]string
	IsActive     *bool
	IsDeleted    *bool
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.ImageURL == nil && p.Category == nil &&
		p.PriceCents == nil && p.Currency == nil && p.DisplayOrder == nil && p.Tags == nil &&
		p.Allergens == nil && p.IsActive == nil && p.IsDeleted == nil
}

func (it *Item) ApplyPatch(ch Patch, now time.Time) error {
	if ch.IsEmpty() {
		return ErrEmptyPatch
	}
	next := *it
	next.name = strings.TrimSpace(patch.Coalesce(ch.Name, it.name))
	next.description = strings.TrimSpace(patch.Coalesce(ch.Description, it.description))
	next.imageURL = patch.Coalesce(ch.ImageURL, it.imageURL)
	next.category = strings.TrimSpace(patch.Coalesce(ch.Category, it.category))
	next.priceCents = patch.Coalesce(ch.PriceCents, it.priceCents)
	next.currency = patch.Coalesce(ch.Currency, it.currency)
	next.displayOrder = patch.Coalesce(ch.DisplayOrder, it.displayOrder)
	next.tags = capList(patch.Coalesce(ch.Tags, it.tags))
	next.allergens = capList(patch.Coalesce(ch.Allergens, it.allergens))
	next.isActive = patch.Coalesce(ch.IsActive, it.isActive)
	next.isDeleted = patch.Coalesce(ch.IsDeleted, it.isDeleted)
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*it = next
	return nil
}

// Orderable reports whether the item may appear on a new order.
func (it *Item) Orderable() bool {
	return it.isActive && !it.isDeleted
}

func capList(in []string) []string {
	if len(in) > MaxListEntries {
		in = in[:MaxListEntries]
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func (it *Item) ID() uuid.UUID        { return it.id }
func (it *Item) Name() string         { return it.name }
func (it *Item) Description() string  { return it.description }
func (it *Item) ImageURL() string     { return it.imageURL }
func (it *Item) Category() string     { return it.category }
func (it *Item) PriceCents() int64    { return it.priceCents }
func (it *Item) Currency() string     { return it.currency }
func (it *Item) DisplayOrder() int    { return it.displayOrder }
func (it *Item) Tags() []string       { return it.tags }
func (it *Item) Allergens() []string  { return it.allergens }
func (it *Item) IsActive() bool       { return it.isActive }
func (it *Item) IsDeleted() bool      { return it.isDeleted }
func (it *Item) CreatedAt() time.Time { return it.createdAt }
func (it *Item) UpdatedAt() time.Time { return it.updatedAt }
