//go:build e2e

package coupon_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/dto/request"
	"storefront-api/internal/handler/dto/response"
	"storefront-api/tests/common/authtest"
	"storefront-api/tests/common/dbtest"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	couponsURL = "/api/coupons"
	previewURL = "/api/coupons/preview"
	redeemURL  = "/api/coupons/redeem"
)

type CouponSuite struct {
	e2e.SharedSuite
}

func (s *CouponSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCouponSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CouponSuite))
}

// seedCartWithCoupon creates a customer with a 2 x 500 cents cart and a coupon
// bound to a fresh campaign. Returns the user ID and their coupon code.
func seedCartWithCoupon(t *testing.T, db *pgxpool.Pool, email, code string, percent float64, expiresAt time.Time) uuid.UUID {
	t.Helper()

	userID := dbtest.CreateTestUser(t, db, email, string(user.RoleCustomer))
	categoryID := dbtest.CreateTestCategory(t, db, "beverages-test")
	productID := dbtest.CreateTestProduct(t, db, categoryID, "Cola")
	variantID := dbtest.CreateTestVariant(t, db, productID, categoryID, "COLA-TEST-1", 500,
		map[string]string{"flavor": "cola"})
	dbtest.AddTestCartItem(t, db, userID, variantID, categoryID, "COLA-TEST-1", 500, 2)

	campaignID := dbtest.CreateTestCampaign(t, db, "Summer Sale", "percentage", percent, 0)
	dbtest.CreateTestCoupon(t, db, userID, campaignID, code, expiresAt)

	return userID
}

// =============================================================================
// TestPreviewCoupon - Coupon preview API tests
// =============================================================================

func (s *CouponSuite) TestPreviewCoupon() {
	s.Run("Normal case: Valid coupon previews discount against cart", func() {
		t := s.T()

		seedCartWithCoupon(t, s.DB, "shopper@example.com", "SUMMER10", 10, time.Now().Add(24*time.Hour))
		token := authtest.LoginUser(t, s.Router, "shopper@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			request.PreviewCouponRequest{Code: "SUMMER10"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes response.CouponPreviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))

		expected := &response.CouponPreviewResponse{
			Valid:               true,
			CampaignName:        "Summer Sale",
			DiscountCents:       100, // 10% of 1000
			ApplicableItemCount: 1,
			ApplicableCents:     1000,
			CartTotalCents:      1000,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.CouponPreviewResponse{}, "DiscountDescription"),
		}
		if diff := cmp.Diff(expected, &actualRes, opts...); diff != "" {
			t.Errorf("Preview response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: Expired coupon previews as invalid without an error status", func() {
		t := s.T()

		seedCartWithCoupon(t, s.DB, "expired@example.com", "OLD10", 10, time.Now().Add(-time.Hour))
		token := authtest.LoginUser(t, s.Router, "expired@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			request.PreviewCouponRequest{Code: "OLD10"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes response.CouponPreviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))
		require.False(t, actualRes.Valid)
		require.Equal(t, "not_usable", actualRes.RejectCode)
		require.Zero(t, actualRes.DiscountCents)
	})

	s.Run("Error case: Unknown code returns 404", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "nocode@example.com", string(user.RoleCustomer))
		token := authtest.LoginUser(t, s.Router, "nocode@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			request.PreviewCouponRequest{Code: "NOPE"}, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			request.PreviewCouponRequest{Code: "SUMMER10"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRedeemCoupon - Coupon redemption API tests
// =============================================================================

func (s *CouponSuite) TestRedeemCoupon() {
	s.Run("Normal case: Coupon redeemed exactly once", func() {
		t := s.T()

		seedCartWithCoupon(t, s.DB, "redeemer@example.com", "TAKE10", 10, time.Now().Add(24*time.Hour))
		token := authtest.LoginUser(t, s.Router, "redeemer@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemCouponRequest{Code: "TAKE10"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes response.CouponRedeemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))
		require.NotEqual(t, uuid.Nil, actualRes.BindingID)
		require.Equal(t, "Summer Sale", actualRes.CampaignName)
		require.Equal(t, int64(100), actualRes.DiscountCents)

		// Second attempt must be rejected: redemption is one-shot.
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemCouponRequest{Code: "TAKE10"}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w2.Code, w2.Body.String())
	})

	s.Run("Error case: Expired coupon cannot be redeemed", func() {
		t := s.T()

		seedCartWithCoupon(t, s.DB, "late@example.com", "LATE10", 10, time.Now().Add(-time.Hour))
		token := authtest.LoginUser(t, s.Router, "late@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemCouponRequest{Code: "LATE10"}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: Another user's coupon is not visible", func() {
		t := s.T()

		seedCartWithCoupon(t, s.DB, "owner@example.com", "MINE10", 10, time.Now().Add(24*time.Hour))
		dbtest.CreateTestUser(t, s.DB, "intruder@example.com", string(user.RoleCustomer))
		token := authtest.LoginUser(t, s.Router, "intruder@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemCouponRequest{Code: "MINE10"}, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestListCoupons - Coupon listing API tests
// =============================================================================

func (s *CouponSuite) TestListCoupons() {
	s.Run("Normal case: Redeemed state is reflected in the listing", func() {
		t := s.T()

		seedCartWithCoupon(t, s.DB, "lister@example.com", "LIST10", 10, time.Now().Add(24*time.Hour))
		token := authtest.LoginUser(t, s.Router, "lister@example.com", "password123")

		redeemResp := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemCouponRequest{Code: "LIST10"}, token)
		require.Equal(t, http.StatusOK, redeemResp.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes []*response.CouponBindingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))
		require.Len(t, actualRes, 1)
		require.Equal(t, "LIST10", actualRes[0].Code)
		require.True(t, actualRes[0].Redeemed)
		require.NotNil(t, actualRes[0].RedeemedAt)
	})

	s.Run("Normal case: Empty listing for user without coupons", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "empty@example.com", string(user.RoleCustomer))
		token := authtest.LoginUser(t, s.Router, "empty@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actualRes []*response.CouponBindingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))
		require.Empty(t, actualRes)
	})
}
