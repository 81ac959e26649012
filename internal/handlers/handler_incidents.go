package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/dto"
	"github.com/SscSPs/sales_commissions_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// incidentHandler serves the incidents a person reports.
type incidentHandler struct {
	incidentService portssvc.IncidentSvcFacade
	saleService     portssvc.SaleSvcFacade
}

func newIncidentHandler(is portssvc.IncidentSvcFacade, ss portssvc.SaleSvcFacade) *incidentHandler {
	return &incidentHandler{incidentService: is, saleService: ss}
}

func registerIncidentRoutes(rg *gin.RouterGroup, is portssvc.IncidentSvcFacade, ss portssvc.SaleSvcFacade) {
	h := newIncidentHandler(is, ss)

	incidents := rg.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/plates", h.listPlateOptions)
		incidents.GET("/:id", h.getIncident)
	}
}

// listIncidents godoc
// @Summary My incidents
// @Description Lists the incidents the acting person reported in a day range.
// @Tags incidents
// @Produce json
// @Param desde query string false "From day (YYYY-MM-DD)"
// @Param hasta query string false "To day (YYYY-MM-DD)"
// @Param matricula query string false "Plate contains; 'general' also matches general incidents"
// @Param tipo query string false "Type contains"
// @Param estado query string false "Status code"
// @Param orden query string false "fecha|tipo|estado"
// @Param dir query string false "asc|desc"
// @Success 200 {object} dto.IncidentListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incidents [get]
func (h *incidentHandler) listIncidents(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, err := h.incidentService.ListMyIncidents(c.Request.Context(), actor, c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Failed to list incidents")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncidentListResponse(page))
}

// createIncident godoc
// @Summary Register an incident
// @Description Files an incident against one of the acting person's plates or GENERAL. Every failed rule is listed in details.
// @Tags incidents
// @Accept json
// @Produce json
// @Param incident body dto.CreateIncidentRequest true "Incident"
// @Success 201 {object} dto.IncidentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incidents [post]
func (h *incidentHandler) createIncident(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind incident", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	incident, err := h.incidentService.RegisterIncident(c.Request.Context(), actor, portssvc.NewIncident{
		Date:   req.Date,
		Plate:  req.Plate,
		Type:   req.Type,
		Detail: req.Detail,
	})
	if err != nil {
		respondError(c, err, "Failed to register incident")
		return
	}
	c.JSON(http.StatusCreated, dto.ToIncidentResponse(*incident))
}

// listPlateOptions godoc
// @Summary Incident plate options
// @Description Lists GENERAL followed by the acting person's sale plates.
// @Tags incidents
// @Produce json
// @Success 200 {object} dto.PlateOptionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incidents/plates [get]
func (h *incidentHandler) listPlateOptions(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	plates, err := h.saleService.IncidentPlateOptions(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list plates")
		return
	}
	c.JSON(http.StatusOK, dto.PlateOptionsResponse{Plates: plates})
}

// getIncident godoc
// @Summary My incident
// @Description Returns one of the acting person's incidents with its neighbours in the list filtered by the same query.
// @Tags incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} dto.IncidentDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incidents/{id} [get]
func (h *incidentHandler) getIncident(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	incidentID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	detail, err := h.incidentService.GetMyIncident(c.Request.Context(), actor, incidentID, c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Failed to retrieve incident")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncidentDetailResponse(detail))
}
