package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	commands commands.InventoryCommands
	queries  queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, qs queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Get computed stock for a variant
// @Description Returns the sellable stock; pack variants derive it from their base unit
// @Tags inventory
// @Produce json
// @Param id path string true "Variant ID"
// @Success 200 {object} resdto.StockResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /variants/{id}/stock [get]
func (h *InventoryHandler) GetStock(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid variant ID", nil)
		return
	}

	view, err := h.queries.ComputedStock(c.Request.Context(), variantID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPackValue):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Variant has a malformed pack option", nil)
		case errors.Is(err, errs.ErrBaseUnitNotFound):
			// Catalog data fault, not a client problem.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Stock cannot be computed for this variant", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Variant or inventory record not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStockView(view))
}

// @Summary Create an inventory record
// @Description Opens a stock record for a base-unit variant
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateInventoryRequest true "Inventory record"
// @Success 201 {object} resdto.CreateInventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /inventory [post]
func (h *InventoryHandler) CreateInventory(c *gin.Context) {
	var req reqdto.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	result, err := h.commands.CreateInventory(c.Request.Context(), actorID, req.VariantID, req.InitialStock, req.MinimumStock)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidVariantType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Pack variants do not own inventory", nil)
		case errors.Is(err, errs.ErrInvalidPackValue):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Variant has a malformed pack option", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Stock values must not be negative", nil)
		case infra.IsKind(err, infra.KindDuplicateKey):
			httperr.AbortWithError(c, http.StatusConflict, err, "Inventory record already exists for this variant", nil)
		case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Variant not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateInventoryResult(result))
}

// @Summary Adjust stock
// @Description Applies a signed delta to a base-unit variant's physical stock
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param variantID path string true "Variant ID"
// @Param request body reqdto.AdjustStockRequest true "Adjustment"
// @Success 200 {object} resdto.AdjustStockResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/{variantID} [patch]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("variantID"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid variant ID", nil)
		return
	}

	var req reqdto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	result, err := h.commands.AdjustStock(c.Request.Context(), actorID, variantID, *req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNegativeStock):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Adjustment would take stock below zero", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No inventory record for this variant", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdjustStockResult(result))
}

// @Summary List low stock records
// @Description Lists inventory records below their minimum stock threshold
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max records" default(50)
// @Success 200 {array} resdto.InventoryResponse
// @Router /inventory/low [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	views, err := h.queries.ListLowStock(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	responses, err := resdto.FromInventoryViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, responses)
}
