package commands

import (
	"context"
	"log/slog"

	"storefront-api/internal/domain/coupon"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// PreviewResult reports the outcome of a dry-run coupon application. A
// business-rule rejection is a normal outcome here, not an error: Valid is
// false and Reason explains why.
type PreviewResult struct {
	Valid               bool
	RejectCode          string
	Reason              string
	CampaignName        string
	DiscountDescription string
	DiscountCents       int64
	ApplicableItemCount int
	ApplicableCents     int64
	CartTotalCents      int64
}

type RedeemResult struct {
	BindingID     uuid.UUID
	CampaignName  string
	DiscountCents int64
}

type CouponCommands interface {
	// Preview runs the evaluation pipeline without mutating anything.
	Preview(ctx context.Context, code string, userID uuid.UUID) (*PreviewResult, error)
	// Redeem re-evaluates and then flips the redeemed flag with a conditional
	// update, so concurrent redemptions of the same binding cannot both win.
	Redeem(ctx context.Context, code string, userID uuid.UUID) (*RedeemResult, error)
}

type couponCommandsImpl struct {
	coupons CouponRepository
	users   UserRepository
	carts   CartRepository
	audit   AuditRepository
	clock   clock.Clock
}

func NewCouponCommands(
	coupons CouponRepository,
	users UserRepository,
	carts CartRepository,
	audit AuditRepository,
	clk clock.Clock,
) CouponCommands {
	return &couponCommandsImpl{
		coupons: coupons,
		users:   users,
		carts:   carts,
		audit:   audit,
		clock:   clk,
	}
}

func (c *couponCommandsImpl) Preview(ctx context.Context, code string, userID uuid.UUID) (*PreviewResult, error) {
	evaluation, _, err := c.evaluate(ctx, code, userID)
	if err != nil {
		if rej, ok := coupon.AsRejection(err); ok {
			// Deterministic rejection: expected, user-facing, not an error.
			return &PreviewResult{
				Valid:      false,
				RejectCode: string(rej.Code),
				Reason:     rej.Reason,
			}, nil
		}
		return nil, err
	}

	return &PreviewResult{
		Valid:               true,
		CampaignName:        evaluation.CampaignName,
		DiscountDescription: evaluation.DiscountDescription,
		DiscountCents:       evaluation.DiscountCents,
		ApplicableItemCount: evaluation.ApplicableItemCount,
		ApplicableCents:     evaluation.ApplicableCents,
		CartTotalCents:      evaluation.CartTotalCents,
	}, nil
}

func (c *couponCommandsImpl) Redeem(ctx context.Context, code string, userID uuid.UUID) (*RedeemResult, error) {
	evaluation, binding, err := c.evaluate(ctx, code, userID)
	if err != nil {
		if _, ok := coupon.AsRejection(err); ok {
			return nil, errs.Mark(err, errs.ErrCouponRejected)
		}
		return nil, err
	}

	flipped, err := c.coupons.MarkRedeemed(ctx, binding.ID(), c.clock.Now())
	if err != nil {
		return nil, err
	}
	if !flipped {
		// Lost the race against a concurrent redemption of the same binding.
		return nil, errs.Mark(
			&coupon.RejectionError{Code: coupon.RejectNotUsable, Reason: "coupon has already been redeemed"},
			errs.ErrCouponRejected,
		)
	}

	c.recordAudit(ctx, AuditEntry{
		ActorID: userID,
		Action:  "coupon.redeem",
		Subject: binding.Code(),
		Detail:  evaluation.CampaignName,
	})

	return &RedeemResult{
		BindingID:     binding.ID(),
		CampaignName:  evaluation.CampaignName,
		DiscountCents: evaluation.DiscountCents,
	}, nil
}

// evaluate loads the binding, campaign, cart and profile and runs the domain
// pipeline. Rejections come back as *coupon.RejectionError.
func (c *couponCommandsImpl) evaluate(ctx context.Context, code string, userID uuid.UUID) (*coupon.Evaluation, *coupon.UserCoupon, error) {
	binding, campaign, err := c.coupons.FindBindingWithCampaign(ctx, code, userID)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := c.carts.Snapshot(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	userSnap, err := c.users.FindSnapshotByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	completedOrders, err := c.users.CountCompletedOrders(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	profile := coupon.EligibilityProfile{
		UserID:          userSnap.ID,
		AccountCreated:  userSnap.CreatedAt,
		CompletedOrders: completedOrders,
		ReferredBy:      userSnap.ReferredBy,
		Group:           userSnap.Group,
	}

	evaluation, err := coupon.Evaluate(binding, campaign, snapshot, profile, c.clock.Now())
	if err != nil {
		return nil, binding, err
	}
	return evaluation, binding, nil
}

func (c *couponCommandsImpl) recordAudit(ctx context.Context, entry AuditEntry) {
	if err := c.audit.Record(ctx, entry); err != nil {
		slog.Warn("failed to record audit entry",
			"action", entry.Action,
			"subject", entry.Subject,
			"error", err)
	}
}
