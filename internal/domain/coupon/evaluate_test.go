//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/domain/coupon"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

type campaignParams struct {
	active      bool
	discount    coupon.Discount
	minPurchase int64
	categories  []uuid.UUID
	variants    []uuid.UUID
	criteria    []coupon.Criterion
	validFrom   *time.Time
	validTo     *time.Time
}

func buildCampaign(t *testing.T, p campaignParams) *coupon.Campaign {
	t.Helper()
	if p.discount == nil {
		d, err := coupon.NewPercentageDiscount(10, 0)
		require.NoError(t, err)
		p.discount = d
	}
	c, err := coupon.NewCampaign(
		uuid.New(), "Summer Promo", p.active, p.discount,
		p.minPurchase, p.categories, p.variants, p.criteria,
		p.validFrom, p.validTo,
	)
	require.NoError(t, err)
	return c
}

func buildBinding(userID uuid.UUID, campaignID uuid.UUID, mutate func(*bindingParams)) *coupon.UserCoupon {
	p := &bindingParams{
		active:    true,
		redeemed:  false,
		expiresAt: evalNow.Add(72 * time.Hour),
	}
	if mutate != nil {
		mutate(p)
	}
	return coupon.NewUserCoupon(
		uuid.New(), "SUMMER10", userID, campaignID,
		p.active, p.redeemed, nil, p.expiresAt, evalNow.Add(-24*time.Hour),
	)
}

type bindingParams struct {
	active    bool
	redeemed  bool
	expiresAt time.Time
}

func openProfile() coupon.EligibilityProfile {
	return coupon.EligibilityProfile{
		UserID:          uuid.New(),
		AccountCreated:  evalNow.Add(-90 * 24 * time.Hour),
		CompletedOrders: 3,
		Group:           "standard",
	}
}

func singleItemCart(userID uuid.UUID, priceCents int64, qty int32) cart.Snapshot {
	return cart.Snapshot{
		UserID: userID,
		Items: []cart.Item{
			{VariantID: uuid.New(), CategoryID: uuid.New(), UnitPriceCents: priceCents, Quantity: qty},
		},
	}
}

func TestEvaluate_Usability(t *testing.T) {
	userID := uuid.New()
	snapshot := singleItemCart(userID, 1000, 1)

	tests := []struct {
		name       string
		mutateBind func(*bindingParams)
		campaign   campaignParams
		wantCode   coupon.RejectCode
	}{
		{
			name:       "inactive binding",
			mutateBind: func(p *bindingParams) { p.active = false },
			campaign:   campaignParams{active: true},
			wantCode:   coupon.RejectNotUsable,
		},
		{
			name:       "redeemed binding",
			mutateBind: func(p *bindingParams) { p.redeemed = true },
			campaign:   campaignParams{active: true},
			wantCode:   coupon.RejectNotUsable,
		},
		{
			name:       "expired binding",
			mutateBind: func(p *bindingParams) { p.expiresAt = evalNow.Add(-time.Minute) },
			campaign:   campaignParams{active: true},
			wantCode:   coupon.RejectNotUsable,
		},
		{
			name:     "inactive campaign",
			campaign: campaignParams{active: false},
			wantCode: coupon.RejectNotUsable,
		},
		{
			name: "campaign outside validity window",
			campaign: func() campaignParams {
				from := evalNow.Add(time.Hour)
				return campaignParams{active: true, validFrom: &from}
			}(),
			wantCode: coupon.RejectNotUsable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := buildCampaign(t, tt.campaign)
			binding := buildBinding(userID, campaign.ID(), tt.mutateBind)

			_, err := coupon.Evaluate(binding, campaign, snapshot, openProfile(), evalNow)
			rej, ok := coupon.AsRejection(err)
			require.True(t, ok, "expected a rejection, got %v", err)
			assert.Equal(t, tt.wantCode, rej.Code)
			assert.NotEmpty(t, rej.Reason)
		})
	}
}

func TestEvaluate_MinimumPurchase(t *testing.T) {
	userID := uuid.New()
	campaign := buildCampaign(t, campaignParams{active: true, minPurchase: 2000})
	binding := buildBinding(userID, campaign.ID(), nil)

	_, err := coupon.Evaluate(binding, campaign, singleItemCart(userID, 1000, 1), openProfile(), evalNow)
	rej, ok := coupon.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, coupon.RejectBelowMinimum, rej.Code)

	// Quantity pushes the total over the minimum.
	_, err = coupon.Evaluate(binding, campaign, singleItemCart(userID, 1000, 2), openProfile(), evalNow)
	assert.NoError(t, err)
}

func TestEvaluate_Scoping(t *testing.T) {
	userID := uuid.New()

	t.Run("category allow-list limits the applicable amount", func(t *testing.T) {
		inCategory := uuid.New()
		outCategory := uuid.New()
		snapshot := cart.Snapshot{
			UserID: userID,
			Items: []cart.Item{
				{VariantID: uuid.New(), CategoryID: inCategory, UnitPriceCents: 200, Quantity: 2},
				{VariantID: uuid.New(), CategoryID: outCategory, UnitPriceCents: 100, Quantity: 1},
			},
		}
		campaign := buildCampaign(t, campaignParams{
			active:     true,
			categories: []uuid.UUID{inCategory},
		})
		binding := buildBinding(userID, campaign.ID(), nil)

		eval, err := coupon.Evaluate(binding, campaign, snapshot, openProfile(), evalNow)
		require.NoError(t, err)

		want := &coupon.Evaluation{
			CampaignName:        "Summer Promo",
			DiscountDescription: "10% off",
			DiscountCents:       40, // 10% of the 400 applicable, not of 500
			ApplicableItemCount: 1,
			ApplicableCents:     400,
			CartTotalCents:      500,
		}
		if diff := cmp.Diff(want, eval); diff != "" {
			t.Errorf("evaluation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("variant allow-list matches independently of category", func(t *testing.T) {
		variantID := uuid.New()
		snapshot := cart.Snapshot{
			UserID: userID,
			Items: []cart.Item{
				{VariantID: variantID, CategoryID: uuid.New(), UnitPriceCents: 300, Quantity: 1},
			},
		}
		campaign := buildCampaign(t, campaignParams{
			active:   true,
			variants: []uuid.UUID{variantID},
		})
		binding := buildBinding(userID, campaign.ID(), nil)

		eval, err := coupon.Evaluate(binding, campaign, snapshot, openProfile(), evalNow)
		require.NoError(t, err)
		assert.Equal(t, 1, eval.ApplicableItemCount)
		assert.Equal(t, int64(300), eval.ApplicableCents)
	})

	t.Run("nothing applicable in a non-empty cart", func(t *testing.T) {
		campaign := buildCampaign(t, campaignParams{
			active:     true,
			categories: []uuid.UUID{uuid.New()},
		})
		binding := buildBinding(userID, campaign.ID(), nil)

		_, err := coupon.Evaluate(binding, campaign, singleItemCart(userID, 500, 1), openProfile(), evalNow)
		rej, ok := coupon.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, coupon.RejectNotApplicable, rej.Code)
	})

	t.Run("empty allow-lists apply to the entire cart", func(t *testing.T) {
		campaign := buildCampaign(t, campaignParams{active: true})
		binding := buildBinding(userID, campaign.ID(), nil)

		eval, err := coupon.Evaluate(binding, campaign, singleItemCart(userID, 500, 2), openProfile(), evalNow)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), eval.ApplicableCents)
	})
}

func TestEvaluate_Eligibility(t *testing.T) {
	userID := uuid.New()
	snapshot := singleItemCart(userID, 1000, 1)

	t.Run("first order rejects repeat buyers with a specific reason", func(t *testing.T) {
		campaign := buildCampaign(t, campaignParams{
			active:   true,
			criteria: []coupon.Criterion{{Kind: coupon.CriterionFirstOrder}},
		})
		binding := buildBinding(userID, campaign.ID(), nil)

		profile := openProfile()
		profile.CompletedOrders = 1

		_, err := coupon.Evaluate(binding, campaign, snapshot, profile, evalNow)
		rej, ok := coupon.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, coupon.RejectNotEligible, rej.Code)
		assert.Equal(t, "first-time buyers only", rej.Reason)

		profile.CompletedOrders = 0
		_, err = coupon.Evaluate(binding, campaign, snapshot, profile, evalNow)
		assert.NoError(t, err)
	})

	t.Run("new user cutoff is 30 days", func(t *testing.T) {
		campaign := buildCampaign(t, campaignParams{
			active:   true,
			criteria: []coupon.Criterion{{Kind: coupon.CriterionNewUser}},
		})
		binding := buildBinding(userID, campaign.ID(), nil)

		profile := openProfile()
		profile.AccountCreated = evalNow.Add(-29 * 24 * time.Hour)
		_, err := coupon.Evaluate(binding, campaign, snapshot, profile, evalNow)
		assert.NoError(t, err)

		profile.AccountCreated = evalNow.Add(-31 * 24 * time.Hour)
		_, err = coupon.Evaluate(binding, campaign, snapshot, profile, evalNow)
		rej, ok := coupon.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, coupon.RejectNotEligible, rej.Code)
	})

	t.Run("referral requires a referrer reference", func(t *testing.T) {
		campaign := buildCampaign(t, campaignParams{
			active:   true,
			criteria: []coupon.Criterion{{Kind: coupon.CriterionReferral}},
		})
		binding := buildBinding(userID, campaign.ID(), nil)

		_, err := coupon.Evaluate(binding, campaign, snapshot, openProfile(), evalNow)
		rej, ok := coupon.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, coupon.RejectNotEligible, rej.Code)

		profile := openProfile()
		referrer := uuid.New()
		profile.ReferredBy = &referrer
		_, err = coupon.Evaluate(binding, campaign, snapshot, profile, evalNow)
		assert.NoError(t, err)
	})

	t.Run("specific group checks membership", func(t *testing.T) {
		campaign := buildCampaign(t, campaignParams{
			active: true,
			criteria: []coupon.Criterion{
				{Kind: coupon.CriterionSpecificGroup, Groups: []string{"vip", "wholesale"}},
			},
		})
		binding := buildBinding(userID, campaign.ID(), nil)

		profile := openProfile()
		profile.Group = "vip"
		_, err := coupon.Evaluate(binding, campaign, snapshot, profile, evalNow)
		assert.NoError(t, err)

		profile.Group = "standard"
		_, err = coupon.Evaluate(binding, campaign, snapshot, profile, evalNow)
		rej, ok := coupon.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, coupon.RejectNotEligible, rej.Code)
	})

	t.Run("first failing criterion is reported in list order", func(t *testing.T) {
		campaign := buildCampaign(t, campaignParams{
			active: true,
			criteria: []coupon.Criterion{
				{Kind: coupon.CriterionFirstOrder},
				{Kind: coupon.CriterionReferral},
			},
		})
		binding := buildBinding(userID, campaign.ID(), nil)

		// Both criteria fail; the first one's reason must surface.
		profile := openProfile()
		profile.CompletedOrders = 2
		profile.ReferredBy = nil

		_, err := coupon.Evaluate(binding, campaign, snapshot, profile, evalNow)
		rej, ok := coupon.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, "first-time buyers only", rej.Reason)
	})

	t.Run("none sentinel opens the coupon to everyone", func(t *testing.T) {
		campaign := buildCampaign(t, campaignParams{
			active:   true,
			criteria: []coupon.Criterion{{Kind: coupon.CriterionNone}},
		})
		binding := buildBinding(userID, campaign.ID(), nil)

		profile := openProfile()
		profile.CompletedOrders = 42
		_, err := coupon.Evaluate(binding, campaign, snapshot, profile, evalNow)
		assert.NoError(t, err)
	})
}

func TestEvaluate_DiscountCaps(t *testing.T) {
	userID := uuid.New()

	t.Run("percentage capped by max discount", func(t *testing.T) {
		d, err := coupon.NewPercentageDiscount(20, 100)
		require.NoError(t, err)
		campaign := buildCampaign(t, campaignParams{active: true, discount: d})
		binding := buildBinding(userID, campaign.ID(), nil)

		eval, err := coupon.Evaluate(binding, campaign, singleItemCart(userID, 1000, 1), openProfile(), evalNow)
		require.NoError(t, err)
		assert.Equal(t, int64(100), eval.DiscountCents)
	})

	t.Run("fixed amount capped at cart total", func(t *testing.T) {
		d, err := coupon.NewFixedDiscount(500)
		require.NoError(t, err)
		campaign := buildCampaign(t, campaignParams{active: true, discount: d})
		binding := buildBinding(userID, campaign.ID(), nil)

		eval, err := coupon.Evaluate(binding, campaign, singleItemCart(userID, 300, 1), openProfile(), evalNow)
		require.NoError(t, err)
		assert.Equal(t, int64(300), eval.DiscountCents)
	})

	t.Run("discount never exceeds cart total for any configuration", func(t *testing.T) {
		discounts := []coupon.Discount{}
		for _, pct := range []float64{1, 10, 50, 100} {
			d, err := coupon.NewPercentageDiscount(pct, 0)
			require.NoError(t, err)
			discounts = append(discounts, d)
		}
		for _, amt := range []int64{1, 250, 10000} {
			d, err := coupon.NewFixedDiscount(amt)
			require.NoError(t, err)
			discounts = append(discounts, d)
		}

		for _, d := range discounts {
			campaign := buildCampaign(t, campaignParams{active: true, discount: d})
			binding := buildBinding(userID, campaign.ID(), nil)
			snapshot := singleItemCart(userID, 199, 3)

			eval, err := coupon.Evaluate(binding, campaign, snapshot, openProfile(), evalNow)
			require.NoError(t, err)
			assert.LessOrEqual(t, eval.DiscountCents, snapshot.TotalCents(), "discount %s", d.Describe())
		}
	})
}
