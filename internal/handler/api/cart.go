package api

import (
	"errors"
	"net/http"

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

type CartHandler struct {
	commands commands.CartCommands
	queries  queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, qs queries.CartQueries) *CartHandler {
	return &CartHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Get my cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	view, err := h.queries.GetCart(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add an item to my cart
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	if err := h.commands.AddItem(c.Request.Context(), userID, req.VariantID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be positive", nil)
		case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Variant not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove an item from my cart
// @Tags cart
// @Security BearerAuth
// @Param variantID path string true "Variant ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{variantID} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("variantID"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid variant ID", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	if err := h.commands.RemoveItem(c.Request.Context(), userID, variantID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
