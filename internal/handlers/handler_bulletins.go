package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type bulletinHandler struct {
	bulletinService portssvc.BulletinSvcFacade
}

func newBulletinHandler(bs portssvc.BulletinSvcFacade) *bulletinHandler {
	return &bulletinHandler{bulletinService: bs}
}

func registerBulletinRoutes(rg *gin.RouterGroup, bs portssvc.BulletinSvcFacade) {
	h := newBulletinHandler(bs)

	bulletins := rg.Group("/bulletins")
	{
		bulletins.GET("", h.listBulletins)
		bulletins.POST("/:id/read", h.markRead)
		bulletins.POST("/:id/confirm", h.confirmRead)
	}
}

// listBulletins godoc
// @Summary Bulletins
// @Description Lists active bulletins in a month range (open when not given) with the acting person's read state.
// @Tags bulletins
// @Produce json
// @Param desde query string false "From month (YYYY-MM)"
// @Param hasta query string false "To month (YYYY-MM)"
// @Param marca query string false "Brand contains"
// @Param tipo query string false "Category contains"
// @Param orden query string false "fecha|boletin|marca|tipo"
// @Param dir query string false "asc|desc"
// @Success 200 {object} dto.BulletinListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bulletins [get]
func (h *bulletinHandler) listBulletins(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, err := h.bulletinService.ListBulletins(c.Request.Context(), actor, c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Failed to list bulletins")
		return
	}
	c.JSON(http.StatusOK, dto.ToBulletinListResponse(page))
}

// markRead godoc
// @Summary Mark a bulletin read
// @Tags bulletins
// @Param id path int true "Bulletin ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bulletins/{id}/read [post]
func (h *bulletinHandler) markRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	bulletinID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.bulletinService.MarkRead(c.Request.Context(), actor, bulletinID); err != nil {
		respondError(c, err, "Failed to mark bulletin read")
		return
	}
	c.Status(http.StatusNoContent)
}

// confirmRead godoc
// @Summary Confirm a bulletin read
// @Tags bulletins
// @Param id path int true "Bulletin ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bulletins/{id}/confirm [post]
func (h *bulletinHandler) confirmRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	bulletinID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.bulletinService.ConfirmRead(c.Request.Context(), actor, bulletinID); err != nil {
		respondError(c, err, "Failed to confirm bulletin read")
		return
	}
	c.Status(http.StatusNoContent)
}
