package response

type SlotTotalsResponse struct {
	TotalSlots    int `json:"totalSlots"`
	TotalCapacity int `json:"totalCapacity"`
	TotalBooked   int `json:"totalBooked"`
}

type PurchaseTotalsResponse struct {
	TotalPurchases int `json:"totalPurchases"`
	TotalCredits   int `json:"totalCredits"`
}

type RedemptionTotalsResponse struct {
	TotalRedemptions int `json:"totalRedemptions"`
}

// DaySummaryResponse covers one UTC day.
type DaySummaryResponse struct {
	Date        string                   `json:"date"`
	Bookings    map[string]int           `json:"bookings"`
	Slots       SlotTotalsResponse       `json:"slots"`
	Purchases   PurchaseTotalsResponse   `json:"purchases"`
	Redemptions RedemptionTotalsResponse `json:"redemptions"`
}
