package readstore

import (
	"context"

	"cozycup/internal/domain/pool"
	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/usecase/queries"
)

type PoolReadStore struct {
	db db.DBTX
}

func NewPoolReadStore(db db.DBTX) *PoolReadStore {
	return &PoolReadStore{db: db}
}

func poolWhere(f queries.PoolFilter) *where {
	w := &where{}
	w.add("kind = $%d", f.Kind.String())
	w.raw("is_active AND NOT is_deleted")
	if !f.IncludeClosed {
		w.add("status = $%d", pool.StatusOpen.String())
	}
	if f.From != nil {
		w.add("end_at >= $%d", *f.From)
	}
	if f.To != nil {
		w.add("start_at <= $%d", *f.To)
	}
	return w
}

func (s *PoolReadStore) List(ctx context.Context, f queries.PoolFilter) ([]*queries.PoolView, error) {
	w := poolWhere(f)
	limit, args := w.page(f.Limit, f.Offset)
	query := "SELECT " + converter.PoolColumns + " FROM pools" + w.String() +
		" ORDER BY start_at, display_order, id" + limit

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pools", err)
	}
	views, err := collect(rows, converter.ScanPool, queries.NewPoolView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan pools", err)
	}
	return views, nil
}

func (s *PoolReadStore) Count(ctx context.Context, f queries.PoolFilter) (int, error) {
	w := poolWhere(f)
	return count(ctx, s.db, "SELECT count(*) FROM pools"+w.String(), w.args, "pools")
}
