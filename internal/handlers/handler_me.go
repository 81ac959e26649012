package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/dto"
	"github.com/SscSPs/sales_commissions_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// meHandler serves the acting person's own data.
type meHandler struct {
	personService  portssvc.PersonSvcFacade
	profileService portssvc.ProfileSvcFacade
}

func newMeHandler(ps portssvc.PersonSvcFacade, prs portssvc.ProfileSvcFacade) *meHandler {
	return &meHandler{personService: ps, profileService: prs}
}

func registerMeRoutes(rg *gin.RouterGroup, ps portssvc.PersonSvcFacade, prs portssvc.ProfileSvcFacade) {
	h := newMeHandler(ps, prs)

	me := rg.Group("/me")
	{
		me.GET("/landing", h.getLanding)
		me.GET("/profile", h.getProfile)
		me.PUT("/profile", h.updateProfile)
		me.POST("/password", h.changePassword)
	}
}

// getLanding godoc
// @Summary Landing view
// @Description Names the view the acting person should land on after login.
// @Tags me
// @Produce json
// @Success 200 {object} dto.LandingResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/landing [get]
func (h *meHandler) getLanding(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.LandingResponse{Landing: actor.Landing()})
}

// getProfile godoc
// @Summary My profile
// @Description Returns the acting person's profile with supervisor, manager and director names. Creates an empty profile when missing.
// @Tags me
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/profile [get]
func (h *meHandler) getProfile(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	view, err := h.profileService.GetMyProfile(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(*view))
}

// updateProfile godoc
// @Summary Update my contact details
// @Description Updates the acting person's email and phone.
// @Tags me
// @Accept json
// @Produce json
// @Param profile body dto.UpdateMyProfileRequest true "Contact details"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/profile [put]
func (h *meHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.UpdateMyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind profile update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Introduce un email válido y un teléfono válido."})
		return
	}

	view, err := h.profileService.UpdateMyContact(c.Request.Context(), actor, portssvc.ContactUpdate{Email: req.Email, Phone: req.Phone})
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(*view))
}

// changePassword godoc
// @Summary Change my password
// @Tags me
// @Accept json
// @Param password body dto.ChangePasswordRequest true "Current and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/password [post]
func (h *meHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind password change", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "La contraseña actual y la nueva son obligatorias."})
		return
	}

	if err := h.personService.ChangePassword(c.Request.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}
	c.Status(http.StatusNoContent)
}
