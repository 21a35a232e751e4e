package queries

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Page is the list envelope every collection endpoint returns.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Bounds describes how a list endpoint treats limit: the value used when none
// is given and the ceiling an oversized value is clamped to.
type Bounds struct {
	Default int
	Max     int
}

var (
	ReservationBounds = Bounds{Default: 20, Max: 100}
	WalletBounds      = Bounds{Default: 50, Max: 200}
	CatalogBounds     = Bounds{Default: 100, Max: 200}
)

const MaxOffset = 10000

func (b Bounds) Clamp(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = b.Default
	}
	if limit > b.Max {
		limit = b.Max
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// fetchPage runs the page read and the total count concurrently.
func fetchPage[T any](
	ctx context.Context,
	limit, offset int,
	find func(ctx context.Context) ([]T, error),
	count func(ctx context.Context) (int, error),
) (*Page[T], error) {
	var (
		items []T
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = find(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}
