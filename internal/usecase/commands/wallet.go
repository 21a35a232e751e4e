package commands

import (
	"context"
	"log/slog"
	"time"

	"cozycup/internal/domain/wallet"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/qrtoken"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePackageInput struct {
	Name       string
	Credits    int
	PriceCents int64
	IsActive   bool
}

type PurchaseInput struct {
	PackageID     uuid.UUID
	PaymentMethod string
}

// RedeemInput names the purchase directly or through a signed redeem token. Exactly one is set.
type RedeemInput struct {
	PurchaseID *uuid.UUID
	Token      string
}

type RedeemResult struct {
	PurchaseID   uuid.UUID
	CreditsLeft  int
	RedemptionID uuid.UUID
	Redemption   *queries.RedemptionView
}

type WalletCommands interface {
	CreatePackage(ctx context.Context, caller Principal, in CreatePackageInput) (*queries.PackageView, error)
	Purchase(ctx context.Context, customerID uuid.UUID, in PurchaseInput) (*queries.PurchaseView, error)
	Redeem(ctx context.Context, customerID uuid.UUID, in RedeemInput) (*RedeemResult, error)
	MintRedeemToken(ctx context.Context, customerID, purchaseID uuid.UUID) (*QRToken, error)
}

// RedeemTokens is the part of the QR service the wallet needs.
type RedeemTokens interface {
	MintRedeem(purchaseID, customerID uuid.UUID) (string, time.Time, error)
	VerifyRedeem(token string) (*qrtoken.RedeemClaims, error)
}

type walletCommandsImpl struct {
	uow        shared.UnitOfWork
	store      shared.WalletStore
	tokens     RedeemTokens
	publisher  shared.EventPublisher
	maxRetries int
	clock      clock.Clock
	logger     *slog.Logger
}

func NewWalletCommands(
	uow shared.UnitOfWork,
	store shared.WalletStore,
	tokens RedeemTokens,
	publisher shared.EventPublisher,
	maxRetries int,
	clk clock.Clock,
	logger *slog.Logger,
) WalletCommands {
	if maxRetries <= 0 {
		maxRetries = 1
	}
	return &walletCommandsImpl{
		uow:        uow,
		store:      store,
		tokens:     tokens,
		publisher:  publisher,
		maxRetries: maxRetries,
		clock:      clk,
		logger:     logger,
	}
}

func (w *walletCommandsImpl) CreatePackage(ctx context.Context, caller Principal, in CreatePackageInput) (*queries.PackageView, error) {
	pkg, err := wallet.NewPackage(in.Name, in.Credits, in.PriceCents, in.IsActive, w.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Packages().Create(ctx, tx.DB(), pkg)
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Package not found")
	}

	publish(ctx, w.publisher, w.logger, shared.NewEvent(shared.EventPackageCreated, pkg.ID(), &caller.UserID, pkg.CreatedAt(), map[string]any{
		"credits":    pkg.Credits(),
		"priceCents": pkg.PriceCents(),
	}))
	return queries.NewPackageView(pkg), nil
}

func (w *walletCommandsImpl) Purchase(ctx context.Context, customerID uuid.UUID, in PurchaseInput) (*queries.PurchaseView, error) {
	var pkg *wallet.Package
	err := w.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		pkg, err = tx.Packages().FindActiveByID(ctx, tx.DB(), in.PackageID)
		return err
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Package not found/active")
	}

	p, err := wallet.NewPurchase(customerID, pkg, wallet.ParsePaymentMethod(in.PaymentMethod), w.clock.Now())
	if err != nil {
		return nil, errs.NotFound("Package not found/active").WithCause(err)
	}
	if err := w.store.CreatePurchase(ctx, p); err != nil {
		return nil, shared.TranslateRepoErr(err, "Purchase not found")
	}

	publish(ctx, w.publisher, w.logger, shared.NewEvent(shared.EventPurchaseCreated, p.ID(), &customerID, p.CreatedAt(), map[string]any{
		"packageId":     p.PackageID(),
		"credits":       p.CreditsTotal(),
		"paymentMethod": p.PaymentMethod().String(),
	}))
	return queries.NewPurchaseView(p), nil
}

func (w *walletCommandsImpl) MintRedeemToken(ctx context.Context, customerID, purchaseID uuid.UUID) (*QRToken, error) {
	p, err := w.store.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Purchase not found")
	}
	if !p.IsOwnedBy(customerID) {
		return nil, errs.Forbidden("Not your purchase")
	}
	if !p.HasCredits() {
		return nil, errs.Conflict("No credits to redeem")
	}

	token, exp, err := w.tokens.MintRedeem(p.ID(), customerID)
	if err != nil {
		return nil, qrError(err)
	}
	return &QRToken{Token: token, ExpiresAt: exp}, nil
}
