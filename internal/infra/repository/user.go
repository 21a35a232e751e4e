package repository

import (
	"context"
	"time"

	"cozycup/internal/domain/user"
	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertUser = `INSERT INTO users (id, email, password_hash, role, name, phone, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	updateUserLastLogin = `UPDATE users SET last_login = $2 WHERE id = $1`

	updateUserRefreshTokenHash = `UPDATE users SET refresh_token_hash = $2, updated_at = now() WHERE id = $1`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, insertUser,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.Name(), u.Phone(),
		u.IsActive(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error {
	return r.exec(ctx, tx, "failed to update user last login", updateUserLastLogin, userID, pgconv.TimeToPgtype(at))
}

func (r *UserRepository) SetRefreshTokenHash(ctx context.Context, tx db.DBTX, userID uuid.UUID, hash *string) error {
	return r.exec(ctx, tx, "failed to store refresh token", updateUserRefreshTokenHash, userID, pgconv.StringPtrToPgtype(hash))
}

func (r *UserRepository) exec(ctx context.Context, tx db.DBTX, msg, query string, args ...any) error {
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}
