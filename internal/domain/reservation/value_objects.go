package reservation

import (
	"strings"

	"github.com/google/uuid"
)

const (
	MaxNotesLength = 300
	MinQuantity    = 1
	MaxQuantity    = 100
)

type LineItem struct {
	menuItemID     uuid.UUID
	name           string
	unitPriceCents int64
	quantity       int
	variants       []string
}

// NewLineItem snapshots a menu item's name and price at order time.
func NewLineItem(menuItemID uuid.UUID, name string, unitPriceCents int64, quantity int, variants []string) (LineItem, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return LineItem{}, ErrNegativePrice
	}
	v := make([]string, len(variants))
	copy(v, variants)
	return LineItem{
		menuItemID:     menuItemID,
		name:           name,
		unitPriceCents: unitPriceCents,
		quantity:       quantity,
		variants:       v,
	}, nil
}

func (li LineItem) MenuItemID() uuid.UUID { return li.menuItemID }
func (li LineItem) Name() string          { return li.name }
func (li LineItem) UnitPriceCents() int64 { return li.unitPriceCents }
func (li LineItem) Quantity() int         { return li.quantity }
func (li LineItem) Variants() []string    { return li.variants }
func (li LineItem) LineTotalCents() int64 { return li.unitPriceCents * int64(li.quantity) }

type Totals struct {
	SubtotalCents int64
	DiscountCents int64
	TotalCents    int64
}

// Notes are trimmed and cut to MaxNotesLength runes rather than rejected.
func normalizeNotes(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > MaxNotesLength {
		return string(r[:MaxNotesLength])
	}
	return s
}

// RestoreLineItem rebuilds a stored line item without re-validating it.
func RestoreLineItem(menuItemID uuid.UUID, name string, unitPriceCents int64, quantity int, variants []string) LineItem {
	return LineItem{
		menuItemID:     menuItemID,
		name:           name,
		unitPriceCents: unitPriceCents,
		quantity:       quantity,
		variants:       variants,
	}
}
