package coupon

import (
	"errors"
	"time"

	"storefront-api/internal/domain/cart"
)

type RejectCode string

const (
	RejectNotUsable     RejectCode = "not_usable"
	RejectBelowMinimum  RejectCode = "below_minimum"
	RejectNotApplicable RejectCode = "not_applicable"
	RejectNotEligible   RejectCode = "not_eligible"
)

// RejectionError is a deterministic business-rule rejection. It carries a
// human-readable reason for the caller and is never worth retrying.
type RejectionError struct {
	Code   RejectCode
	Reason string
}

func (e *RejectionError) Error() string {
	return string(e.Code) + ": " + e.Reason
}

func reject(code RejectCode, reason string) error {
	return &RejectionError{Code: code, Reason: reason}
}

// AsRejection unwraps err into a RejectionError if it is one.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// Evaluation is the successful outcome of the apply pipeline.
type Evaluation struct {
	CampaignName        string
	DiscountDescription string
	DiscountCents       int64
	ApplicableItemCount int
	ApplicableCents     int64
	CartTotalCents      int64
}

// Evaluate runs the fixed coupon pipeline against an already-loaded binding,
// campaign, cart and user profile. Each stage short-circuits on failure and
// nothing is mutated; redemption is a separate operation.
func Evaluate(
	binding *UserCoupon,
	campaign *Campaign,
	snapshot cart.Snapshot,
	profile EligibilityProfile,
	now time.Time,
) (*Evaluation, error) {
	// Stage 2: usability of the binding and of the campaign itself.
	if reason, ok := binding.UsabilityReason(now); !ok {
		return nil, reject(RejectNotUsable, reason)
	}
	if !campaign.ValidAt(now) {
		return nil, reject(RejectNotUsable, "campaign is not currently active")
	}

	// Stage 3: minimum purchase against the full cart total.
	total := snapshot.TotalCents()
	if total < campaign.MinPurchaseCents() {
		return nil, reject(RejectBelowMinimum, "cart total is below the campaign minimum")
	}

	// Stage 4: applicability scoping.
	applicable := campaign.ApplicableItems(snapshot)
	if len(applicable) == 0 && !snapshot.IsEmpty() {
		return nil, reject(RejectNotApplicable, "no cart items qualify for this coupon")
	}

	// Stage 5: eligibility criteria, first failure wins.
	if reason, ok := CheckEligibility(campaign.Criteria(), profile, now); !ok {
		return nil, reject(RejectNotEligible, reason)
	}

	// Stage 6: discount over the applicable amount, capped at the cart total.
	var applicableCents int64
	for _, item := range applicable {
		applicableCents += item.SubtotalCents()
	}
	discount := campaign.Discount().AmountFor(applicableCents)
	if discount > total {
		discount = total
	}

	return &Evaluation{
		CampaignName:        campaign.Name(),
		DiscountDescription: campaign.Discount().Describe(),
		DiscountCents:       discount,
		ApplicableItemCount: len(applicable),
		ApplicableCents:     applicableCents,
		CartTotalCents:      total,
	}, nil
}
