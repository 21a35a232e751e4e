package commands

import (
	"context"

	"cozycup/internal/domain/wallet"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/qrtoken"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
)

// Redeem takes one credit from an owned purchase and records the redemption.
// The debit and the redemption row land together or not at all: inside one
// transaction when the store offers it, otherwise through a versioned
// compare-and-set with a refund if the redemption insert fails.
func (w *walletCommandsImpl) Redeem(ctx context.Context, customerID uuid.UUID, in RedeemInput) (*RedeemResult, error) {
	purchaseID, err := w.resolvePurchase(customerID, in)
	if err != nil {
		return nil, err
	}

	var (
		p *wallet.Purchase
		r *wallet.Redemption
	)
	if w.store.SupportsTransactions() {
		p, r, err = w.redeemInTx(ctx, purchaseID, customerID)
	} else {
		p, r, err = w.redeemWithCAS(ctx, purchaseID, customerID)
	}
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "Purchase not found")
	}

	publish(ctx, w.publisher, w.logger, shared.NewEvent(shared.EventCreditRedeemed, r.ID(), &customerID, r.RedeemedAt(), map[string]any{
		"purchaseId":  p.ID(),
		"creditsLeft": p.CreditsLeft(),
	}))
	return &RedeemResult{
		PurchaseID:   p.ID(),
		CreditsLeft:  p.CreditsLeft(),
		RedemptionID: r.ID(),
		Redemption:   queries.NewRedemptionView(r),
	}, nil
}

func (w *walletCommandsImpl) resolvePurchase(customerID uuid.UUID, in RedeemInput) (uuid.UUID, error) {
	if in.PurchaseID != nil {
		return *in.PurchaseID, nil
	}
	if in.Token == "" {
		return uuid.Nil, errs.Validation("purchaseId or token is required")
	}

	claims, err := w.tokens.VerifyRedeem(in.Token)
	if err != nil {
		if errs.Is(err, qrtoken.ErrKeyMissing) {
			return uuid.Nil, qrError(err)
		}
		return uuid.Nil, errs.Forbidden("Invalid or expired QR token").WithCause(err)
	}
	owner, err := claims.CustomerID()
	if err != nil || owner != customerID {
		return uuid.Nil, errs.Forbidden("Token does not belong to current user")
	}
	return claims.PurchaseID, nil
}

func (w *walletCommandsImpl) redeemInTx(ctx context.Context, purchaseID, customerID uuid.UUID) (*wallet.Purchase, *wallet.Redemption, error) {
	var (
		p *wallet.Purchase
		r *wallet.Redemption
	)
	err := w.store.WithinTx(ctx, func(ctx context.Context, tx shared.WalletWriter) error {
		var err error
		p, err = tx.FindOwnedPurchase(ctx, purchaseID, customerID)
		if err != nil {
			return err
		}
		expected := p.Version()
		now := w.clock.Now()
		if err := p.Debit(now); err != nil {
			return errs.Conflict("No credits left")
		}
		ok, err := tx.CompareAndSetCredits(ctx, p, expected)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Conflict("Purchase changed concurrently, retry")
		}
		r = wallet.NewRedemption(p, now)
		return tx.InsertRedemption(ctx, r)
	})
	if err != nil {
		return nil, nil, err
	}
	return p, r, nil
}

// redeemWithCAS re-reads and retries when another writer bumped the version first.
func (w *walletCommandsImpl) redeemWithCAS(ctx context.Context, purchaseID, customerID uuid.UUID) (*wallet.Purchase, *wallet.Redemption, error) {
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		p, err := w.store.FindOwnedPurchase(ctx, purchaseID, customerID)
		if err != nil {
			return nil, nil, err
		}
		expected := p.Version()
		now := w.clock.Now()
		if err := p.Debit(now); err != nil {
			return nil, nil, errs.Conflict("No credits left")
		}

		ok, err := w.store.CompareAndSetCredits(ctx, p, expected)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			w.logger.Debug("redeem lost a race, retrying", "purchase_id", purchaseID, "attempt", attempt)
			continue
		}

		r := wallet.NewRedemption(p, now)
		if err := w.store.InsertRedemption(ctx, r); err != nil {
			if refundErr := w.store.RefundCredit(ctx, purchaseID); refundErr != nil {
				w.logger.Error("failed to refund credit after redemption insert failed",
					"purchase_id", purchaseID, "error", refundErr.Error(), "cause", err.Error())
			}
			return nil, nil, err
		}
		return p, r, nil
	}
	return nil, nil, errs.Conflict("Could not redeem credit, please retry")
}
