package api

import (
	"errors"
	"net/http"

	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	queries queries.CatalogQueries
}

func NewCatalogHandler(qs queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{queries: qs}
}

// @Summary Get a variant
// @Tags catalog
// @Produce json
// @Param id path string true "Variant ID"
// @Success 200 {object} resdto.VariantResponse
// @Failure 404 {object} httperr.Response
// @Router /variants/{id} [get]
func (h *CatalogHandler) GetVariant(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid variant ID", nil)
		return
	}

	view, err := h.queries.GetVariant(c.Request.Context(), variantID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPackValue):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Variant has a malformed pack option", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Variant not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVariantView(view))
}

// @Summary List a product's variants
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} resdto.VariantResponse
// @Router /products/{id}/variants [get]
func (h *CatalogHandler) ListProductVariants(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID", nil)
		return
	}

	views, err := h.queries.ListProductVariants(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPackValue):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Product has a variant with a malformed pack option", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVariantViews(views))
}
