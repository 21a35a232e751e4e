package repository

import (
	"context"

	"cozycup/internal/domain/wallet"
	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertPackage = `INSERT INTO packages (` + converter.PackageColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectActivePackage = `SELECT ` + converter.PackageColumns + ` FROM packages WHERE id = $1 AND is_active`
)

type PackageRepository struct{}

func NewPackageRepository() *PackageRepository {
	return &PackageRepository{}
}

func (r *PackageRepository) Create(ctx context.Context, tx db.DBTX, p *wallet.Package) error {
	_, err := tx.Exec(ctx, insertPackage,
		p.ID(), p.Name(), p.Credits(), p.PriceCents(), p.IsActive(), p.CreatedAt(), p.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create package", err)
	}
	return nil
}

func (r *PackageRepository) FindActiveByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*wallet.Package, error) {
	p, err := converter.ScanPackage(tx.QueryRow(ctx, selectActivePackage, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package", err)
	}
	return p, nil
}
