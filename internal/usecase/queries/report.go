package queries

import (
	"context"
	"time"

	"cozycup/internal/domain/reservation"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

const DateLayout = "2006-01-02"

type SlotTotals struct {
	TotalSlots    int `json:"totalSlots"`
	TotalCapacity int `json:"totalCapacity"`
	TotalBooked   int `json:"totalBooked"`
}

type PurchaseTotals struct {
	TotalPurchases int `json:"totalPurchases"`
	TotalCredits   int `json:"totalCredits"`
}

type RedemptionTotals struct {
	TotalRedemptions int `json:"totalRedemptions"`
}

type DaySummary struct {
	Date        string           `json:"date"`
	Bookings    map[string]int   `json:"bookings"`
	Slots       SlotTotals       `json:"slots"`
	Purchases   PurchaseTotals   `json:"purchases"`
	Redemptions RedemptionTotals `json:"redemptions"`
}

type ReportReadStore interface {
	// BookingCountsByStatus counts bookings created in [from, to).
	BookingCountsByStatus(ctx context.Context, from, to time.Time) (map[string]int, error)
	// SlotTotals aggregates non-deleted slots starting in [from, to).
	SlotTotals(ctx context.Context, from, to time.Time) (SlotTotals, error)
}

type ReportQueries interface {
	DaySummary(ctx context.Context, date string) (*DaySummary, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
	wallet    shared.WalletStore
	clock     clock.Clock
}

func NewReportQueries(readStore ReportReadStore, wallet shared.WalletStore, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{readStore: readStore, wallet: wallet, clock: clk}
}

// DaySummary aggregates one UTC day. An empty date means today.
func (q *reportQueriesImpl) DaySummary(ctx context.Context, date string) (*DaySummary, error) {
	from, err := dayStart(date, q.clock.Now())
	if err != nil {
		return nil, err
	}
	to := from.AddDate(0, 0, 1)

	summary := &DaySummary{
		Date: from.Format(DateLayout),
		Bookings: map[string]int{
			reservation.StatusBooked.String():    0,
			reservation.StatusCheckedIn.String(): 0,
			reservation.StatusCancelled.String(): 0,
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	var counts map[string]int
	g.Go(func() error {
		var err error
		counts, err = q.readStore.BookingCountsByStatus(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Slots, err = q.readStore.SlotTotals(gctx, from, to)
		return err
	})
	g.Go(func() error {
		totals, err := q.wallet.DayTotals(gctx, from, to)
		if err != nil {
			return err
		}
		summary.Purchases = PurchaseTotals{TotalPurchases: totals.Purchases, TotalCredits: totals.Credits}
		summary.Redemptions = RedemptionTotals{TotalRedemptions: totals.Redemptions}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, shared.TranslateRepoErr(err, "Not found")
	}

	for status, n := range counts {
		if _, ok := summary.Bookings[status]; ok {
			summary.Bookings[status] = n
		}
	}
	return summary, nil
}

func dayStart(date string, now time.Time) (time.Time, error) {
	if date == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, errs.Validation("date must be YYYY-MM-DD")
	}
	return t, nil
}
