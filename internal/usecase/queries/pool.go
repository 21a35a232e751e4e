package queries

import (
	"context"
	"time"

	"cozycup/internal/domain/pool"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type PoolView struct {
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

func NewPoolView(p *pool.Pool) *PoolView {
	return &PoolView{
		ID:           p.ID(),
		Kind:         p.Kind().String(),
		StartAt:      p.StartAt(),
		EndAt:        p.EndAt(),
		Capacity:     p.Capacity(),
		BookedCount:  p.BookedCount(),
		Remaining:    p.Remaining(),
		Status:       p.Status().String(),
		IsActive:     p.IsActive(),
		IsDeleted:    p.IsDeleted(),
		DisplayOrder: p.DisplayOrder(),
		Notes:        p.Notes(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

// PoolFilter selects active, non-deleted pools of one kind. From keeps pools
// ending at or after it; To keeps pools starting at or before it.
type PoolFilter struct {
	Kind          pool.Kind
	From          *time.Time
	To            *time.Time
	IncludeClosed bool
	Limit         int
	Offset        int
}

type PoolReadStore interface {
	List(ctx context.Context, f PoolFilter) ([]*PoolView, error)
	Count(ctx context.Context, f PoolFilter) (int, error)
}

type PoolQueries interface {
	List(ctx context.Context, f PoolFilter) (*Page[*PoolView], error)
}

type poolQueriesImpl struct {
	readStore PoolReadStore
}

func NewPoolQueries(readStore PoolReadStore) PoolQueries {
	return &poolQueriesImpl{readStore: readStore}
}

func (q *poolQueriesImpl) List(ctx context.Context, f PoolFilter) (*Page[*PoolView], error) {
	f.Limit, f.Offset = CatalogBounds.Clamp(f.Limit, f.Offset)
	page, err := fetchPage(ctx, f.Limit, f.Offset,
		func(ctx context.Context) ([]*PoolView, error) { return q.readStore.List(ctx, f) },
		func(ctx context.Context) (int, error) { return q.readStore.Count(ctx, f) },
	)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Not found")
	}
	for _, v := range page.Items {
		v.Remaining = max(0, v.Capacity-v.BookedCount)
	}
	return page, nil
}
