package queries

import (
	"context"
	"time"

	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthorizedUserView adds the secrets the auth flow compares against. It never leaves the use case layer.
type AuthorizedUserView struct {
	UserView
	PasswordHash     string  `json:"-"`
	RefreshTokenHash *string `json:"-"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "User not found")
	}

	if !u.IsActive {
		return nil, errs.Unauthorized("User is inactive")
	}

	return &u.UserView, nil
}
