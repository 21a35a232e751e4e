//go:build unit || e2e

package builder

import (
	"time"

	"cozycup/internal/domain/pool"

	"github.com/google/uuid"
)

// BaseTime anchors every builder so tests can reason about relative windows.
var BaseTime = time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

type PoolBuilder struct {
	ID           uuid.UUID
	Kind         pool.Kind
	StartAt      time.Time
	EndAt        time.Time
	Capacity     int
	BookedCount  int
	Status       pool.Status
	IsActive     bool
	IsDeleted    bool
	DisplayOrder int
	Notes        string
	Now          time.Time
}

func NewPoolBuilder() *PoolBuilder {
	return &PoolBuilder{
		ID:       uuid.New(),
		Kind:     pool.KindPickupWindow,
		StartAt:  BaseTime.Add(2 * time.Hour),
		EndAt:    BaseTime.Add(2*time.Hour + 30*time.Minute),
		Capacity: 5,
		Status:   pool.StatusOpen,
		IsActive: true,
		Now:      BaseTime,
	}
}

func (b *PoolBuilder) With(mutate func(*PoolBuilder)) *PoolBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PoolBuilder) BuildNew() (*pool.Pool, error) {
	return pool.NewPool(pool.Params{
		Kind:         b.Kind,
		StartAt:      b.StartAt,
		EndAt:        b.EndAt,
		Capacity:     b.Capacity,
		Status:       b.Status,
		IsActive:     b.IsActive,
		DisplayOrder: b.DisplayOrder,
		Notes:        b.Notes,
	}, b.Now)
}

// Build restores a stored pool, bypassing creation rules.
func (b *PoolBuilder) Build() *pool.Pool {
	return pool.Reconstruct(
		b.ID, b.Kind, b.StartAt, b.EndAt,
		b.Capacity, b.BookedCount, b.Status,
		b.IsActive, b.IsDeleted, b.DisplayOrder, b.Notes,
		b.Now, b.Now,
	)
}

// Fluent builder methods
func (b *PoolBuilder) AsSlot() *PoolBuilder {
	b.Kind = pool.KindSlot
	return b
}

func (b *PoolBuilder) WithCapacity(capacity, booked int) *PoolBuilder {
	b.Capacity = capacity
	b.BookedCount = booked
	return b
}

func (b *PoolBuilder) Closed() *PoolBuilder {
	b.Status = pool.StatusClosed
	return b
}

func (b *PoolBuilder) Inactive() *PoolBuilder {
	b.IsActive = false
	return b
}

func (b *PoolBuilder) Deleted() *PoolBuilder {
	b.IsDeleted = true
	return b
}

func (b *PoolBuilder) StartingIn(d time.Duration) *PoolBuilder {
	length := b.EndAt.Sub(b.StartAt)
	b.StartAt = b.Now.Add(d)
	b.EndAt = b.StartAt.Add(length)
	return b
}
