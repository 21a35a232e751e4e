//go:build unit || e2e

package memstore

import (
	"context"
	"time"

	"cozycup/internal/domain/user"
	"cozycup/internal/infra"
	"cozycup/internal/usecase/queries"

	"github.com/google/uuid"
)

// UserReadStore exposes the stored users through the read-side port.
func (s *Store) UserReadStore() queries.UserReadStore {
	return userReadStore{s}
}

func (s *Store) RefreshTokenHash(userID uuid.UUID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.refreshHashes[userID]
	return h, ok
}

func (s *Store) LastLogin(userID uuid.UUID) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.lastLogins[userID]
	return at, ok
}

type userReadStore struct{ s *Store }

func (r userReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return r.s.authorizedView(u), nil
}

func (r userReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email().Value() == email {
			return r.s.authorizedView(u), nil
		}
	}
	return nil, infra.NotFound("user not found")
}

// authorizedView must be called with mu held.
func (s *Store) authorizedView(u *user.User) *queries.AuthorizedUserView {
	v := &queries.AuthorizedUserView{
		UserView: queries.UserView{
			ID:        u.ID(),
			Email:     u.Email().Value(),
			Role:      u.Role().String(),
			Name:      u.Name(),
			Phone:     u.Phone(),
			IsActive:  u.IsActive(),
			CreatedAt: u.CreatedAt(),
			UpdatedAt: u.UpdatedAt(),
		},
		PasswordHash: u.PasswordHash(),
	}
	if h, ok := s.refreshHashes[u.ID()]; ok {
		v.RefreshTokenHash = &h
	}
	return v
}
