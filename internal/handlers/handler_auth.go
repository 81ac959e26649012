package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/dto"
	"github.com/SscSPs/sales_commissions_app/internal/middleware"
	"github.com/SscSPs/sales_commissions_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{tokenService: ts}
}

// registerAuthRoutes sets up the public authentication routes. Login is
// rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, tokenService portssvc.TokenSvcFacade) error {
	h := newAuthHandler(tokenService)

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRate)
	if err != nil {
		return err
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
	return nil
}

// login godoc
// @Summary Log in
// @Description Authenticates a national ID (DNI) or username and returns a JWT with the landing view.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "DNI y contraseña son obligatorios."})
		return
	}

	result, err := h.tokenService.Login(c.Request.Context(), req.Credential, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login rejected")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "DNI o contraseña incorrectos."})
			return
		}
		respondError(c, err, "Failed to log in")
		return
	}

	logger.Info("Login successful", slog.String("person_id", result.Person.PersonID), slog.String("landing", string(result.Landing)))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     result.AccessToken,
		ExpiresAt: result.ExpiresAt,
		Landing:   result.Landing,
		Person:    dto.ToPersonResponse(result.Person),
	})
}
