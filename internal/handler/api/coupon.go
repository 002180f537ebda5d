package api

import (
	"errors"
	"net/http"

	"storefront-api/internal/domain/coupon"
	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	commands commands.CouponCommands
	queries  queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, qs queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Preview a coupon against the current cart
// @Description Runs the full evaluation pipeline without consuming the coupon
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PreviewCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponPreviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/preview [post]
func (h *CouponHandler) Preview(c *gin.Context) {
	var req reqdto.PreviewCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	result, err := h.commands.Preview(c.Request.Context(), req.NormalizedCode(), userID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			middleware.CountCouponEvaluation("preview", "not_found")
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	outcome := "valid"
	if !result.Valid {
		outcome = result.RejectCode
	}
	middleware.CountCouponEvaluation("preview", outcome)

	c.JSON(http.StatusOK, resdto.FromPreviewResult(result))
}

// @Summary Redeem a coupon
// @Description Re-evaluates the coupon and permanently marks it redeemed
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RedeemCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponRedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /coupons/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	result, err := h.commands.Redeem(c.Request.Context(), req.NormalizedCode(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponRejected):
			middleware.CountCouponEvaluation("redeem", "rejected")
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, rejectionMessage(err), nil)
		case infra.IsKind(err, infra.KindNotFound):
			middleware.CountCouponEvaluation("redeem", "not_found")
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	middleware.CountCouponEvaluation("redeem", "valid")
	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

// @Summary List my coupons
// @Description Lists the authenticated user's coupon bindings
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CouponBindingResponse
// @Router /coupons [get]
func (h *CouponHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	views, err := h.queries.ListUserCoupons(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	responses, err := resdto.FromCouponBindingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// rejectionMessage surfaces the domain rejection reason when present.
func rejectionMessage(err error) string {
	if rej, ok := coupon.AsRejection(err); ok {
		return rej.Reason
	}
	return "Coupon cannot be applied"
}
