//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/domain/coupon"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"
	commandsmock "storefront-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var couponNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

type CouponCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockCoupons *commandsmock.MockCouponRepository
	mockUsers   *commandsmock.MockUserRepository
	mockCarts   *commandsmock.MockCartRepository
	mockAudit   *commandsmock.MockAuditRepository
	clock       *clock.FixedClock
	commands    commands.CouponCommands

	userID uuid.UUID
}

func (s *CouponCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCoupons = commandsmock.NewMockCouponRepository(s.mockCtrl)
	s.mockUsers = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.mockCarts = commandsmock.NewMockCartRepository(s.mockCtrl)
	s.mockAudit = commandsmock.NewMockAuditRepository(s.mockCtrl)
	s.clock = clock.NewFixedClock(couponNow)
	s.commands = commands.NewCouponCommands(s.mockCoupons, s.mockUsers, s.mockCarts, s.mockAudit, s.clock)
	s.userID = uuid.New()
}

func (s *CouponCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponCommandsSuite(t *testing.T) {
	suite.Run(t, new(CouponCommandsTestSuite))
}

func (s *CouponCommandsTestSuite) newCampaign(active bool, minPurchase int64) *coupon.Campaign {
	discount, err := coupon.NewPercentageDiscount(10, 0)
	s.Require().NoError(err)
	campaign, err := coupon.NewCampaign(
		uuid.New(), "Summer Promo", active, discount,
		minPurchase, nil, nil, nil, nil, nil,
	)
	s.Require().NoError(err)
	return campaign
}

func (s *CouponCommandsTestSuite) newBinding(campaignID uuid.UUID, redeemed bool) *coupon.UserCoupon {
	return coupon.NewUserCoupon(
		uuid.New(), "SUMMER10", s.userID, campaignID,
		true, redeemed, nil,
		couponNow.Add(72*time.Hour), couponNow.Add(-24*time.Hour),
	)
}

func (s *CouponCommandsTestSuite) snapshot(totalCents int64) cart.Snapshot {
	return cart.Snapshot{
		UserID: s.userID,
		Items: []cart.Item{
			{VariantID: uuid.New(), CategoryID: uuid.New(), SKU: "SKU-1", UnitPriceCents: totalCents, Quantity: 1},
		},
	}
}

func (s *CouponCommandsTestSuite) profile() *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:        s.userID,
		Email:     "test@example.com",
		Role:      "customer",
		IsActive:  true,
		CreatedAt: couponNow.Add(-90 * 24 * time.Hour),
	}
}

// expectEvaluationLoads wires the four reads every evaluation performs.
func (s *CouponCommandsTestSuite) expectEvaluationLoads(binding *coupon.UserCoupon, campaign *coupon.Campaign, snapshot cart.Snapshot) {
	s.mockCoupons.EXPECT().FindBindingWithCampaign(gomock.Any(), "SUMMER10", s.userID).
		Return(binding, campaign, nil)
	s.mockCarts.EXPECT().Snapshot(gomock.Any(), s.userID).Return(snapshot, nil)
	s.mockUsers.EXPECT().FindSnapshotByID(gomock.Any(), s.userID).Return(s.profile(), nil)
	s.mockUsers.EXPECT().CountCompletedOrders(gomock.Any(), s.userID).Return(int64(0), nil)
}

func (s *CouponCommandsTestSuite) TestPreview() {
	s.Run("valid coupon reports the discount without mutating anything", func() {
		campaign := s.newCampaign(true, 0)
		binding := s.newBinding(campaign.ID(), false)
		s.expectEvaluationLoads(binding, campaign, s.snapshot(1000))
		// MarkRedeemed must never be called on a preview.

		result, err := s.commands.Preview(context.Background(), "SUMMER10", s.userID)
		s.Require().NoError(err)
		s.True(result.Valid)
		s.Equal("Summer Promo", result.CampaignName)
		s.Equal(int64(100), result.DiscountCents)
		s.Equal(int64(1000), result.CartTotalCents)
	})

	s.Run("rejection is a valid=false outcome, not an error", func() {
		campaign := s.newCampaign(true, 5000)
		binding := s.newBinding(campaign.ID(), false)
		s.expectEvaluationLoads(binding, campaign, s.snapshot(1000))

		result, err := s.commands.Preview(context.Background(), "SUMMER10", s.userID)
		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(string(coupon.RejectBelowMinimum), result.RejectCode)
		s.NotEmpty(result.Reason)
	})

	s.Run("infrastructure failure surfaces as an error", func() {
		s.mockCoupons.EXPECT().FindBindingWithCampaign(gomock.Any(), "SUMMER10", s.userID).
			Return(nil, nil, errors.New("connection refused"))

		result, err := s.commands.Preview(context.Background(), "SUMMER10", s.userID)
		s.Error(err)
		s.Nil(result)
	})
}

func (s *CouponCommandsTestSuite) TestRedeem() {
	s.Run("successful redemption flips the binding and records audit", func() {
		campaign := s.newCampaign(true, 0)
		binding := s.newBinding(campaign.ID(), false)
		s.expectEvaluationLoads(binding, campaign, s.snapshot(1000))
		s.mockCoupons.EXPECT().MarkRedeemed(gomock.Any(), binding.ID(), couponNow).Return(true, nil)
		s.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.Redeem(context.Background(), "SUMMER10", s.userID)
		s.Require().NoError(err)
		s.Equal(binding.ID(), result.BindingID)
		s.Equal(int64(100), result.DiscountCents)
	})

	s.Run("rejection surfaces as a marked error and never touches the flag", func() {
		campaign := s.newCampaign(true, 0)
		binding := s.newBinding(campaign.ID(), true) // already redeemed
		s.expectEvaluationLoads(binding, campaign, s.snapshot(1000))

		_, err := s.commands.Redeem(context.Background(), "SUMMER10", s.userID)
		s.Require().Error(err)
		s.ErrorIs(err, errs.ErrCouponRejected)
		rej, ok := coupon.AsRejection(err)
		s.Require().True(ok)
		s.Equal(coupon.RejectNotUsable, rej.Code)
	})

	s.Run("losing the redemption race is a rejection", func() {
		campaign := s.newCampaign(true, 0)
		binding := s.newBinding(campaign.ID(), false)
		s.expectEvaluationLoads(binding, campaign, s.snapshot(1000))
		// Another request won between evaluation and the conditional update.
		s.mockCoupons.EXPECT().MarkRedeemed(gomock.Any(), binding.ID(), couponNow).Return(false, nil)

		_, err := s.commands.Redeem(context.Background(), "SUMMER10", s.userID)
		s.Require().Error(err)
		s.ErrorIs(err, errs.ErrCouponRejected)
	})

	s.Run("audit failure does not fail the redemption", func() {
		campaign := s.newCampaign(true, 0)
		binding := s.newBinding(campaign.ID(), false)
		s.expectEvaluationLoads(binding, campaign, s.snapshot(1000))
		s.mockCoupons.EXPECT().MarkRedeemed(gomock.Any(), binding.ID(), couponNow).Return(true, nil)
		s.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit store down"))

		result, err := s.commands.Redeem(context.Background(), "SUMMER10", s.userID)
		s.Require().NoError(err)
		s.NotNil(result)
	})
}
