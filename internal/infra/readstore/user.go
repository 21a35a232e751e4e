package readstore

import (
	"context"

	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"
	"cozycup/internal/pkg/pgconv"
	"cozycup/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	selectUserByID    = `SELECT ` + converter.UserColumns + ` FROM users WHERE id = $1`
	selectUserByEmail = `SELECT ` + converter.UserColumns + ` FROM users WHERE email = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	return r.find(ctx, "failed to find user by ID", selectUserByID, id)
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	return r.find(ctx, "failed to find user by email", selectUserByEmail, email)
}

func (r *UserReadStore) find(ctx context.Context, msg, query string, arg any) (*queries.AuthorizedUserView, error) {
	v, err := converter.ScanAuthorizedUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return v, nil
}
