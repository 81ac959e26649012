package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/dto"
	"github.com/SscSPs/sales_commissions_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// managementHandler serves the management dashboards.
type managementHandler struct {
	commissionService portssvc.CommissionSvcFacade
	incidentService   portssvc.IncidentSvcFacade
}

func newManagementHandler(cs portssvc.CommissionSvcFacade, is portssvc.IncidentSvcFacade) *managementHandler {
	return &managementHandler{commissionService: cs, incidentService: is}
}

func registerManagementRoutes(rg *gin.RouterGroup, cs portssvc.CommissionSvcFacade, is portssvc.IncidentSvcFacade) {
	h := newManagementHandler(cs, is)

	{
		rg.GET("/commissions", h.listCommissions)
		rg.PATCH("/commissions/:id", h.reviewCommission)
		rg.GET("/incidents", h.listIncidents)
		rg.PATCH("/incidents/:id", h.reviewIncident)
	}
}

// listCommissions godoc
// @Summary Commissions dashboard
// @Description Lists every sale in a day range with its commission and the number of incidents pending review.
// @Tags management
// @Produce json
// @Param desde query string false "From day (YYYY-MM-DD)"
// @Param hasta query string false "To day (YYYY-MM-DD)"
// @Param vendedor query string false "Seller username, name or plate contains; 'Todos' disables the filter"
// @Param idv query string false "Exact deal id"
// @Param tipo_venta query string false "Sale type code"
// @Param tipo_cliente query string false "Buyer type code"
// @Param orden query string false "fecha_venta|matricula|idv|tipo_venta|empleado"
// @Param dir query string false "asc|desc"
// @Success 200 {object} dto.CommissionBoardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /management/commissions [get]
func (h *managementHandler) listCommissions(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	board, err := h.commissionService.ListCommissionBoard(c.Request.Context(), actor, c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Failed to list commissions")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionBoardResponse(board))
}

// reviewCommission godoc
// @Summary Review a commission
// @Tags management
// @Accept json
// @Produce json
// @Param id path int true "Commission ID"
// @Param review body dto.ReviewCommissionRequest true "New status"
// @Success 200 {object} dto.CommissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /management/commissions/{id} [patch]
func (h *managementHandler) reviewCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	commissionID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req dto.ReviewCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind commission review", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	commission, err := h.commissionService.ReviewCommission(c.Request.Context(), actor, commissionID, req.Status)
	if err != nil {
		respondError(c, err, "Failed to review commission")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionResponse(*commission))
}

// listIncidents godoc
// @Summary Incidents dashboard
// @Description Lists every incident in a day range with its reporter.
// @Tags management
// @Produce json
// @Param desde query string false "From day (YYYY-MM-DD)"
// @Param hasta query string false "To day (YYYY-MM-DD)"
// @Param vendedor query string false "Reporter username or name contains; 'Todos' disables the filter"
// @Param matricula query string false "Plate contains; 'general' also matches general incidents"
// @Param tipo query string false "Type contains"
// @Param estado query string false "Status code"
// @Param orden query string false "fecha|tipo|estado|vendedor"
// @Param dir query string false "asc|desc"
// @Success 200 {object} dto.IncidentListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /management/incidents [get]
func (h *managementHandler) listIncidents(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, err := h.incidentService.ListIncidentBoard(c.Request.Context(), actor, c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Failed to list incidents")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncidentListResponse(page))
}

// reviewIncident godoc
// @Summary Review an incident
// @Tags management
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Param review body dto.ReviewIncidentRequest true "Status and validation flag"
// @Success 200 {object} dto.IncidentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /management/incidents/{id} [patch]
func (h *managementHandler) reviewIncident(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	incidentID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req dto.ReviewIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind incident review", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	incident, err := h.incidentService.ReviewIncident(c.Request.Context(), actor, incidentID, req.Status, req.ValidationOK)
	if err != nil {
		respondError(c, err, "Failed to review incident")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncidentResponse(*incident))
}
