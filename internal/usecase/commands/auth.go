package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"cozycup/internal/domain/user"
	"cozycup/internal/infra"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/jwt"
	"cozycup/internal/pkg/password"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	User      *queries.UserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	clk clock.Clock,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

// Register always creates a customer; hosts are provisioned out of band.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, validation(err)
	}

	existing, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, shared.TranslateRepoErr(err, "User not found")
	}
	if existing != nil {
		return nil, errs.Conflict("User already exists")
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Internal(err, "Failed to hash password")
	}

	u := user.NewCustomer(credentials.Email(), hash, in.Name, in.Phone, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Conflict("User already exists")
		}
		return nil, shared.TranslateRepoErr(err, "User not found")
	}

	a.logger.Info("user_registered", "user_id", u.ID())

	view := &queries.UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
	return a.issue(ctx, view, false)
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	credentials, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, errs.Unauthorized("Invalid email or password")
	}

	found, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same answer as a password mismatch so accounts cannot be enumerated.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Unauthorized("Invalid email or password")
		}
		return nil, shared.TranslateRepoErr(err, "User not found")
	}
	if !found.IsActive {
		return nil, errs.Forbidden("Account is inactive")
	}
	if err := password.ComparePassword(found.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, errs.Unauthorized("Invalid email or password")
	}

	return a.issue(ctx, &found.UserView, true)
}

// RefreshToken rotates the pair. Only the most recently issued refresh token is accepted.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, errs.Unauthorized("Invalid refresh token")
	}

	found, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Unauthorized("Invalid refresh token")
		}
		return nil, shared.TranslateRepoErr(err, "User not found")
	}
	if !found.IsActive {
		return nil, errs.Unauthorized("User is inactive")
	}
	if found.RefreshTokenHash == nil || *found.RefreshTokenHash != hashToken(refreshToken) {
		return nil, errs.Unauthorized("Refresh token revoked")
	}

	return a.issue(ctx, &found.UserView, false)
}

func (a *authCommandsImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetRefreshTokenHash(ctx, tx.DB(), userID, nil)
	})
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return shared.TranslateRepoErr(err, "User not found")
	}
	return nil
}

func (a *authCommandsImpl) issue(ctx context.Context, u *queries.UserView, touchLogin bool) (*AuthResult, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		return nil, errs.Internal(err, "Failed to generate token")
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(u.ID, u.Role)
	if err != nil {
		return nil, errs.Internal(err, "Failed to generate token")
	}

	hash := hashToken(refreshToken)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().SetRefreshTokenHash(ctx, tx.DB(), u.ID, &hash); err != nil {
			return err
		}
		if touchLogin {
			return tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID, a.clock.Now())
		}
		return nil
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "User not found")
	}

	return &AuthResult{
		User:      u,
		TokenPair: &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
	}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
