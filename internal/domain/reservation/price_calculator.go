package reservation

import "github.com/google/uuid"

// DiscountPolicy is the hook for coupon or loyalty pricing.
type DiscountPolicy interface {
	DiscountCents(customerID uuid.UUID, subtotalCents int64) int64
}

type NoDiscount struct{}

func (NoDiscount) DiscountCents(uuid.UUID, int64) int64 { return 0 }

type PriceCalculator struct {
	Discount DiscountPolicy
}

func NewDefaultPriceCalculator() PriceCalculator {
	return PriceCalculator{Discount: NoDiscount{}}
}

func (pc PriceCalculator) Calculate(customerID uuid.UUID, items []LineItem) Totals {
	var subtotal int64
	for _, li := range items {
		subtotal += li.LineTotalCents()
	}

	var discount int64
	if pc.Discount != nil {
		discount = pc.Discount.DiscountCents(customerID, subtotal)
	}
	if discount < 0 {
		discount = 0
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}
	return Totals{SubtotalCents: subtotal, DiscountCents: discount, TotalCents: total}
}
