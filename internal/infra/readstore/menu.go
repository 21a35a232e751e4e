package readstore

import (
	"context"
	"strings"

	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/usecase/queries"
)

type MenuReadStore struct {
	db db.DBTX
}

func NewMenuReadStore(db db.DBTX) *MenuReadStore {
	return &MenuReadStore{db: db}
}

func menuWhere(f queries.MenuFilter) *where {
	w := &where{}
	w.raw("is_active AND NOT is_deleted")
	if f.Category != "" {
		w.add("category = $%d", f.Category)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		w.add("name ILIKE '%%' || $%d || '%%'", escapeLike(q))
	}
	return w
}

// orderBy renders keys as an ORDER BY clause. Fields are column names from
// queries.ParseMenuSort, never raw user input.
func orderBy(keys []queries.SortKey) string {
	if len(keys) == 0 {
		keys = queries.DefaultMenuSort
	}
	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		if k.Desc {
			parts = append(parts, k.Field+" DESC")
		} else {
			parts = append(parts, k.Field)
		}
	}
	parts = append(parts, "id")
	return " ORDER BY " + strings.Join(parts, ", ")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (s *MenuReadStore) List(ctx context.Context, f queries.MenuFilter) ([]*queries.MenuItemView, error) {
	w := menuWhere(f)
	limit, args := w.page(f.Limit, f.Offset)
	query := "SELECT " + converter.MenuColumns + " FROM menu_items" + w.String() + orderBy(f.Sort) + limit

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	views, err := collect(rows, converter.ScanMenuItem, queries.NewMenuItemView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan menu items", err)
	}
	return views, nil
}

func (s *MenuReadStore) Count(ctx context.Context, f queries.MenuFilter) (int, error) {
	w := menuWhere(f)
	return count(ctx, s.db, "SELECT count(*) FROM menu_items"+w.String(), w.args, "menu items")
}
