package repository

import (
	"context"

	"cozycup/internal/domain/menu"
	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertMenuItem = `INSERT INTO menu_items (` + converter.MenuColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	selectMenuItemForUpdate = `SELECT ` + converter.MenuColumns + ` FROM menu_items WHERE id = $1 FOR UPDATE`

	updateMenuItem = `UPDATE menu_items
SET name = $2, description = $3, image_url = $4, category = $5, price_cents = $6, currency = $7,
    display_order = $8, tags = $9, allergens = $10, is_active = $11, is_deleted = $12, updated_at = $13
WHERE id = $1`

	selectOrderableMenuItems = `SELECT ` + converter.MenuColumns + `
FROM menu_items WHERE id = ANY($1) AND is_active AND NOT is_deleted`
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

func (r *MenuRepository) Create(ctx context.Context, tx db.DBTX, it *menu.Item) error {
	if _, err := tx.Exec(ctx, insertMenuItem, converter.MenuArgs(it)...); err != nil {
		return infra.WrapRepoErr("failed to create menu item", err)
	}
	return nil
}

func (r *MenuRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*menu.Item, error) {
	it, err := converter.ScanMenuItem(tx.QueryRow(ctx, selectMenuItemForUpdate, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item", err)
	}
	return it, nil
}

func (r *MenuRepository) Update(ctx context.Context, tx db.DBTX, it *menu.Item) error {
	tag, err := tx.Exec(ctx, updateMenuItem,
		it.ID(), it.Name(), it.Description(), it.ImageURL(), it.Category(), it.PriceCents(), it.Currency(),
		it.DisplayOrder(), converter.StringList(it.Tags()), converter.StringList(it.Allergens()), it.IsActive(), it.IsDeleted(), it.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("menu item not found")
	}
	return nil
}

func (r *MenuRepository) FindOrderable(ctx context.Context, tx db.DBTX, ids []uuid.UUID) ([]*menu.Item, error) {
	rows, err := tx.Query(ctx, selectOrderableMenuItems, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load menu items", err)
	}
	defer rows.Close()

	var items []*menu.Item
	for rows.Next() {
		it, err := converter.ScanMenuItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load menu items", err)
	}
	return items, nil
}
