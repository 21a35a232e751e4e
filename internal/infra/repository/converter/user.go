package converter

import (
	"cozycup/internal/pkg/pgconv"
	"cozycup/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const UserColumns = `id, email, role, name, phone, is_active, created_at, updated_at,
	password_hash, refresh_token_hash`

func ScanAuthorizedUser(row Row) (*queries.AuthorizedUserView, error) {
	var (
		v           queries.AuthorizedUserView
		refreshHash pgtype.Text
	)
	err := row.Scan(
		&v.ID, &v.Email, &v.Role, &v.Name, &v.Phone, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
		&v.PasswordHash, &refreshHash,
	)
	if err != nil {
		return nil, err
	}
	v.RefreshTokenHash = pgconv.StringPtrFromPgtype(refreshHash)
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return &v, nil
}
