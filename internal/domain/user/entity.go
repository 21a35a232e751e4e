package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id               uuid.UUID
	email            Email
	passwordHash     string
	role             Role
	name             string
	phone            string
	refreshTokenHash *string
	lastLogin        *time.Time
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewCustomer is the only way self-registration creates an account; hosts are seeded.
func NewCustomer(email Email, passwordHash, name, phone string, now time.Time) *User {
	return NewUser(email, passwordHash, RoleCustomer, name, phone, now)
}

func NewUser(email Email, passwordHash string, role Role, name, phone string, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		name:         strings.TrimSpace(name),
		phone:        strings.TrimSpace(phone),
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

// Reconstruct restores a stored user without re-running creation rules.
func Reconstruct(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	name, phone string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		name:         name,
		phone:        phone,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID             { return u.id }
func (u *User) Email() Email              { return u.email }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() Role                { return u.role }
func (u *User) Name() string              { return u.name }
func (u *User) Phone() string             { return u.phone }
func (u *User) RefreshTokenHash() *string { return u.refreshTokenHash }
func (u *User) LastLogin() *time.Time     { return u.lastLogin }
func (u *User) IsActive() bool            { return u.isActive }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }
