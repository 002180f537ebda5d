package api

import (
	"net/http"
	"strconv"

	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	queries queries.AuditQueries
}

func NewAuditHandler(qs queries.AuditQueries) *AuditHandler {
	return &AuditHandler{queries: qs}
}

// @Summary List audit entries
// @Description Lists recent admin-relevant actions, newest first
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max entries" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} resdto.AuditEntryResponse
// @Router /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	views, err := h.queries.ListEntries(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	responses, err := resdto.FromAuditEntryViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, responses)
}
