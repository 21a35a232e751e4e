package readstore

import (
	"context"

	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	listActivePackages = `SELECT ` + converter.PackageColumns + `
FROM packages WHERE is_active ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`

	countActivePackages = `SELECT count(*) FROM packages WHERE is_active`

	selectPackagesByIDs = `SELECT ` + converter.PackageColumns + ` FROM packages WHERE id = ANY($1)`
)

type PackageReadStore struct {
	db db.DBTX
}

func NewPackageReadStore(db db.DBTX) *PackageReadStore {
	return &PackageReadStore{db: db}
}

func (s *PackageReadStore) ListActive(ctx context.Context, limit, offset int) ([]*queries.PackageView, error) {
	rows, err := s.db.Query(ctx, listActivePackages, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	views, err := collect(rows, converter.ScanPackage, queries.NewPackageView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan packages", err)
	}
	return views, nil
}

func (s *PackageReadStore) CountActive(ctx context.Context) (int, error) {
	return count(ctx, s.db, countActivePackages, nil, "packages")
}

// FindByIDs ignores is_active so purchases keep showing retired packages.
func (s *PackageReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.PackageView, error) {
	rows, err := s.db.Query(ctx, selectPackagesByIDs, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load packages", err)
	}
	views, err := collect(rows, converter.ScanPackage, queries.NewPackageView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan packages", err)
	}
	return views, nil
}
