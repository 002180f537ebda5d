//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

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

type InventoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockInventoryQueries
	handler      *api.InventoryHandler
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleStaff)
		c.Next()
	}

	s.router.GET("/variants/:id/stock", s.handler.GetStock)
	s.router.POST("/inventory", authMiddleware, s.handler.CreateInventory)
	s.router.PATCH("/inventory/:variantID", authMiddleware, s.handler.AdjustStock)
	s.router.GET("/inventory/low", authMiddleware, s.handler.ListLowStock)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

// ================================================================================
// TestGetStock
// ================================================================================

func (s *InventoryHandlerTestSuite) TestGetStock() {
	variantID := uuid.New()
	url := "/variants/" + variantID.String() + "/stock"

	s.Run("success: returns the computed stock view", func() {
		baseID := uuid.New()
		s.mockQueries.EXPECT().ComputedStock(gomock.Any(), variantID).Return(&queries.StockView{
			VariantID:         variantID,
			IsBaseUnit:        false,
			PackMultiplier:    6,
			BaseUnitVariantID: &baseID,
			ComputedStock:     16,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.StockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(variantID, body.VariantID)
		s.Equal(6, body.PackMultiplier)
		s.Equal(int64(16), body.ComputedStock)
		s.Require().NotNil(body.BaseUnitVariantID)
		s.Equal(baseID, *body.BaseUnitVariantID)
	})

	s.Run("error: 400 for a non-UUID variant id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/variants/not-a-uuid/stock", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid variant ID")
	})

	s.Run("error: 400 for a malformed pack option", func() {
		s.mockQueries.EXPECT().ComputedStock(gomock.Any(), variantID).
			Return(nil, errs.Mark(errs.New("pack value"), errs.ErrInvalidPackValue))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "malformed pack option")
	})

	s.Run("error: 500 when a pack has no base unit", func() {
		s.mockQueries.EXPECT().ComputedStock(gomock.Any(), variantID).
			Return(nil, errs.Mark(errs.New("no base unit"), errs.ErrBaseUnitNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Stock cannot be computed")
	})

	s.Run("error: 404 for an unknown variant", func() {
		s.mockQueries.EXPECT().ComputedStock(gomock.Any(), variantID).
			Return(nil, infra.WrapRepoErr("find", errs.New("no rows"), infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestCreateInventory
// ================================================================================

func (s *InventoryHandlerTestSuite) TestCreateInventory() {
	url := "/inventory"
	variantID := uuid.New()

	validReq := reqdto.CreateInventoryRequest{
		VariantID:    variantID,
		InitialStock: 100,
		MinimumStock: 10,
	}

	s.Run("success: returns 201 Created", func() {
		recordID := uuid.New()
		s.mockCommands.EXPECT().CreateInventory(gomock.Any(), gomock.Any(), variantID, int64(100), int64(10)).
			Return(&commands.CreateInventoryResult{RecordID: recordID, VariantID: variantID, Quantity: 100}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")

		var body resdto.CreateInventoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(recordID, body.RecordID)
		s.Equal(int64(100), body.Quantity)
	})

	s.Run("validation", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing variant_id", mutate: testutil.Field("variant_id", nil), expectCode: http.StatusBadRequest},
			{name: "negative initial_stock", mutate: testutil.Field("initial_stock", -1), expectCode: http.StatusBadRequest},
			{name: "negative minimum_stock", mutate: testutil.Field("minimum_stock", -5), expectCode: http.StatusBadRequest},
			{name: "zero stock is allowed", mutate: testutil.Field("initial_stock", 0), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateInventory(gomock.Any(), gomock.Any(), variantID, gomock.Any(), gomock.Any()).
						Return(&commands.CreateInventoryResult{RecordID: uuid.New(), VariantID: variantID}, nil)
				}
				body := testutil.DtoMap(s.T(), validReq, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(tc.expectCode, rec.Code, "response: %s", rec.Body.String())
			})
		}
	})

	s.Run("error: 400 when the variant is a pack", func() {
		s.mockCommands.EXPECT().CreateInventory(gomock.Any(), gomock.Any(), variantID, int64(100), int64(10)).
			Return(nil, errs.Mark(errs.New("pack of 6"), errs.ErrInvalidVariantType))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Pack variants do not own inventory")
	})

	s.Run("error: 409 for a duplicate record", func() {
		s.mockCommands.EXPECT().CreateInventory(gomock.Any(), gomock.Any(), variantID, int64(100), int64(10)).
			Return(nil, infra.WrapRepoErr("create", errs.New("unique violation"), infra.KindDuplicateKey))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 404 for an unknown variant", func() {
		s.mockCommands.EXPECT().CreateInventory(gomock.Any(), gomock.Any(), variantID, int64(100), int64(10)).
			Return(nil, infra.WrapRepoErr("create", errs.New("fk violation"), infra.KindForeignKeyViolated))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Variant not found")
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestAdjustStock
// ================================================================================

func (s *InventoryHandlerTestSuite) TestAdjustStock() {
	variantID := uuid.New()
	url := "/inventory/" + variantID.String()

	delta := int64(-5)
	validReq := reqdto.AdjustStockRequest{Delta: &delta}

	s.Run("success: returns the new quantity", func() {
		s.mockCommands.EXPECT().AdjustStock(gomock.Any(), gomock.Any(), variantID, int64(-5)).
			Return(&commands.AdjustStockResult{VariantID: variantID, Quantity: 95}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, validReq, "bearer-token")

		var body resdto.AdjustStockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(95), body.Quantity)
	})

	s.Run("validation: explicit zero delta is accepted, missing delta is not", func() {
		s.mockCommands.EXPECT().AdjustStock(gomock.Any(), gomock.Any(), variantID, int64(0)).
			Return(&commands.AdjustStockResult{VariantID: variantID, Quantity: 100}, nil)

		zero := testutil.DtoMap(s.T(), validReq, testutil.Field("delta", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, zero, "bearer-token")
		s.Equal(http.StatusOK, rec.Code, "response: %s", rec.Body.String())

		missing := testutil.DtoMap(s.T(), validReq, testutil.Field("delta", nil))
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, missing, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 when the delta would drive stock negative", func() {
		s.mockCommands.EXPECT().AdjustStock(gomock.Any(), gomock.Any(), variantID, int64(-5)).
			Return(nil, errs.Mark(errs.New("below zero"), errs.ErrNegativeStock))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, validReq, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "below zero")
	})

	s.Run("error: 404 when no record exists", func() {
		s.mockCommands.EXPECT().AdjustStock(gomock.Any(), gomock.Any(), variantID, int64(-5)).
			Return(nil, infra.WrapRepoErr("find", errs.New("no rows"), infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, validReq, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No inventory record")
	})
}

// ================================================================================
// TestListLowStock
// ================================================================================

func (s *InventoryHandlerTestSuite) TestListLowStock() {
	s.Run("success: returns the low stock records", func() {
		views := []*queries.InventoryView{
			{ID: uuid.New(), VariantID: uuid.New(), SKU: "COLA-350", Quantity: 3, MinimumStock: 10},
		}
		s.mockQueries.EXPECT().ListLowStock(gomock.Any(), 50).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/low", nil, "bearer-token")

		var body []resdto.InventoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("COLA-350", body[0].SKU)
	})

	s.Run("success: limit query parameter is forwarded", func() {
		s.mockQueries.EXPECT().ListLowStock(gomock.Any(), 5).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/inventory/low?limit=%d", 5), nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
