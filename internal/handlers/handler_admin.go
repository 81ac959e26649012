package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/dto"
	"github.com/SscSPs/sales_commissions_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves person registration and hierarchy assignment.
type adminHandler struct {
	personService  portssvc.PersonSvcFacade
	profileService portssvc.ProfileSvcFacade
}

func newAdminHandler(ps portssvc.PersonSvcFacade, prs portssvc.ProfileSvcFacade) *adminHandler {
	return &adminHandler{personService: ps, profileService: prs}
}

func registerAdminRoutes(rg *gin.RouterGroup, ps portssvc.PersonSvcFacade, prs portssvc.ProfileSvcFacade) {
	h := newAdminHandler(ps, prs)

	rg.POST("/persons", h.createPerson)
	profiles := rg.Group("/profiles")
	{
		profiles.PUT("/:personID", h.assignHierarchy)
		profiles.POST("/:personID/recompute", h.recomputeSubordinates)
	}
}

// createPerson godoc
// @Summary Register a person
// @Description Creates a person with roles and an initial profile.
// @Tags admin
// @Accept json
// @Produce json
// @Param person body dto.CreatePersonRequest true "Person"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/persons [post]
func (h *adminHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind person", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), actor, portssvc.NewPerson{
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Roles:      req.Roles,
		NationalID: req.NationalID,
		Site:       req.Site,
		Area:       req.Area,
	})
	if err != nil {
		respondError(c, err, "Failed to create person")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPersonResponse(*person))
}

// assignHierarchy godoc
// @Summary Assign hierarchy
// @Description Sets a profile's supervisor (and, at the top of the chain, manager and director). Manager and director are derived from the supervisor chain.
// @Tags admin
// @Accept json
// @Produce json
// @Param personID path string true "Person ID"
// @Param assignment body dto.AssignHierarchyRequest true "Hierarchy"
// @Success 200 {object} dto.HierarchyProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/profiles/{personID} [put]
func (h *adminHandler) assignHierarchy(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.AssignHierarchyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind hierarchy assignment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.AssignHierarchy(c.Request.Context(), actor, c.Param("personID"), portssvc.HierarchyAssignment{
		SupervisorID: req.SupervisorID,
		ManagerID:    req.ManagerID,
		DirectorID:   req.DirectorID,
		NationalID:   req.NationalID,
		Site:         req.Site,
		Area:         req.Area,
	})
	if err != nil {
		respondError(c, err, "Failed to assign hierarchy")
		return
	}
	c.JSON(http.StatusOK, dto.ToHierarchyProfileResponse(*profile))
}

// recomputeSubordinates godoc
// @Summary Recompute subordinates
// @Description Re-saves the direct subordinates of a person so their derived manager and director follow the person's current chain. One level only.
// @Tags admin
// @Produce json
// @Param personID path string true "Person ID"
// @Success 200 {array} dto.HierarchyProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/profiles/{personID}/recompute [post]
func (h *adminHandler) recomputeSubordinates(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	profiles, err := h.profileService.RecomputeSubordinates(c.Request.Context(), actor, c.Param("personID"))
	if err != nil {
		respondError(c, err, "Failed to recompute subordinates")
		return
	}
	c.JSON(http.StatusOK, dto.ToHierarchyProfileResponses(profiles))
}
