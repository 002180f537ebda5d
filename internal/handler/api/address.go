package api

import (
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

type AddressHandler struct {
	commands commands.AddressCommands
	queries  queries.AddressQueries
}

func NewAddressHandler(cmds commands.AddressCommands, qs queries.AddressQueries) *AddressHandler {
	return &AddressHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List my addresses
// @Tags addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.AddressResponse
// @Router /addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	views, err := h.queries.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	responses, err := resdto.FromAddressViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get one of my addresses
// @Tags addresses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} resdto.AddressResponse
// @Failure 404 {object} httperr.Response
// @Router /addresses/{id} [get]
func (h *AddressHandler) Get(c *gin.Context) {
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid address ID", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	view, err := h.queries.GetAddress(c.Request.Context(), userID, addressID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Address not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.FromAddressView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create an address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddressRequest true "Address"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var req reqdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), userID, cmd)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update an address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Param id path string true "Address ID"
// @Param request body reqdto.AddressRequest true "Address"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /addresses/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid address ID", nil)
		return
	}

	var req reqdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	if err := h.commands.Update(c.Request.Context(), userID, addressID, cmd); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Address not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete an address
// @Tags addresses
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid address ID", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Authentication required", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), userID, addressID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Address not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
