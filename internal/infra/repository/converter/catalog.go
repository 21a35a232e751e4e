package converter

import (
	"strings"
	"time"

	"cozycup/internal/domain/menu"
	"cozycup/internal/domain/pool"

	"github.com/google/uuid"
)

const PoolColumns = `id, kind, start_at, end_at, capacity, booked_count, status,
	is_active, is_deleted, display_order, notes, created_at, updated_at`

func ScanPool(row Row) (*pool.Pool, error) {
	var (
		id                             uuid.UUID
		kind, status, notes            string
		startAt, endAt                 time.Time
		capacity, booked, displayOrder int
		isActive, isDeleted            bool
		createdAt, updatedAt           time.Time
	)
	err := row.Scan(
		&id, &kind, &startAt, &endAt, &capacity, &booked, &status,
		&isActive, &isDeleted, &displayOrder, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pool.Reconstruct(
		id, pool.Kind(kind), startAt.UTC(), endAt.UTC(), capacity, booked,
		pool.Status(status), isActive, isDeleted, displayOrder, notes,
		createdAt.UTC(), updatedAt.UTC(),
	), nil
}

// PoolArgs lists p's values in PoolColumns order.
func PoolArgs(p *pool.Pool) []any {
	return []any{
		p.ID(), p.Kind().String(), p.StartAt(), p.EndAt(), p.Capacity(), p.BookedCount(), p.Status().String(),
		p.IsActive(), p.IsDeleted(), p.DisplayOrder(), p.Notes(), p.CreatedAt(), p.UpdatedAt(),
	}
}

const MenuColumns = `id, name, description, image_url, category, price_cents, currency,
	display_order, tags, allergens, is_active, is_deleted, created_at, updated_at`

func ScanMenuItem(row Row) (*menu.Item, error) {
	var s menu.Snapshot
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.ImageURL, &s.Category, &s.PriceCents, &s.Currency,
		&s.DisplayOrder, &s.Tags, &s.Allergens, &s.IsActive, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Currency = strings.TrimSpace(s.Currency)
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return menu.Reconstruct(s), nil
}

// MenuArgs lists it's values in MenuColumns order.
func MenuArgs(it *menu.Item) []any {
	return []any{
		it.ID(), it.Name(), it.Description(), it.ImageURL(), it.Category(), it.PriceCents(), it.Currency(),
		it.DisplayOrder(), StringList(it.Tags()), StringList(it.Allergens()), it.IsActive(), it.IsDeleted(),
		it.CreatedAt(), it.UpdatedAt(),
	}
}

// StringList keeps text[] NOT NULL columns from receiving NULL.
func StringList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
