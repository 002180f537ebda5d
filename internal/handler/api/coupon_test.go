//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-api/internal/domain/coupon"
	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/api"
	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/common/testutil"
	commandsmock "storefront-api/tests/mock/commands"
	queriesmock "storefront-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
	userID       uuid.UUID
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.GET("/coupons", authMiddleware, s.handler.ListMine)
	s.router.POST("/coupons/preview", authMiddleware, s.handler.Preview)
	s.router.POST("/coupons/redeem", authMiddleware, s.handler.Redeem)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

// ================================================================================
// TestPreview
// ================================================================================

func (s *CouponHandlerTestSuite) TestPreview() {
	url := "/coupons/preview"
	validReq := reqdto.PreviewCouponRequest{Code: "SUMMER10"}

	s.Run("success: valid coupon reports the discount", func() {
		s.mockCommands.EXPECT().Preview(gomock.Any(), "SUMMER10", s.userID).
			Return(&commands.PreviewResult{
				Valid:               true,
				CampaignName:        "Summer Promo",
				DiscountDescription: "10% off",
				DiscountCents:       100,
				ApplicableItemCount: 2,
				ApplicableCents:     1000,
				CartTotalCents:      1500,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")

		var body resdto.CouponPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal("Summer Promo", body.CampaignName)
		s.Equal(int64(100), body.DiscountCents)
	})

	s.Run("success: rejection is still a 200 with valid=false", func() {
		s.mockCommands.EXPECT().Preview(gomock.Any(), "SUMMER10", s.userID).
			Return(&commands.PreviewResult{
				Valid:      false,
				RejectCode: string(coupon.RejectBelowMinimum),
				Reason:     "cart total is below the campaign minimum",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")

		var body resdto.CouponPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
		s.Equal(string(coupon.RejectBelowMinimum), body.RejectCode)
		s.NotEmpty(body.Reason)
	})

	s.Run("success: code is trimmed before lookup", func() {
		s.mockCommands.EXPECT().Preview(gomock.Any(), "SUMMER10", s.userID).
			Return(&commands.PreviewResult{Valid: true}, nil)

		padded := testutil.DtoMap(s.T(), validReq, testutil.Field("code", "  SUMMER10  "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, padded, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when the code is missing", func() {
		body := testutil.DtoMap(s.T(), validReq, testutil.Field("code", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 for an unknown or foreign code", func() {
		s.mockCommands.EXPECT().Preview(gomock.Any(), "SUMMER10", s.userID).
			Return(nil, infra.WrapRepoErr("find", errs.New("no rows"), infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *CouponHandlerTestSuite) TestRedeem() {
	url := "/coupons/redeem"
	validReq := reqdto.RedeemCouponRequest{Code: "SUMMER10"}

	s.Run("success: returns the redeemed binding", func() {
		bindingID := uuid.New()
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "SUMMER10", s.userID).
			Return(&commands.RedeemResult{
				BindingID:     bindingID,
				CampaignName:  "Summer Promo",
				DiscountCents: 100,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")

		var body resdto.CouponRedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bindingID, body.BindingID)
		s.Equal(int64(100), body.DiscountCents)
	})

	s.Run("error: 422 with the domain reason on rejection", func() {
		rejection := &coupon.RejectionError{
			Code:   coupon.RejectNotUsable,
			Reason: "coupon has already been redeemed",
		}
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "SUMMER10", s.userID).
			Return(nil, errs.Mark(rejection, errs.ErrCouponRejected))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "already been redeemed")
	})

	s.Run("error: 404 for an unknown or foreign code", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "SUMMER10", s.userID).
			Return(nil, infra.WrapRepoErr("find", errs.New("no rows"), infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 when the code is missing", func() {
		body := testutil.DtoMap(s.T(), validReq, testutil.Field("code", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *CouponHandlerTestSuite) TestListMine() {
	s.Run("success: returns the user's bindings", func() {
		now := time.Now().UTC().Truncate(time.Second)
		views := []*queries.CouponBindingView{
			{
				ID:                  uuid.New(),
				Code:                "SUMMER10",
				CampaignName:        "Summer Promo",
				DiscountDescription: "10% off",
				Active:              true,
				Redeemed:            false,
				ExpiresAt:           now.Add(72 * time.Hour),
				IssuedAt:            now,
			},
		}
		s.mockQueries.EXPECT().ListUserCoupons(gomock.Any(), s.userID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons", nil, "bearer-token")

		var body []resdto.CouponBindingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("SUMMER10", body[0].Code)
		s.False(body[0].Redeemed)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
