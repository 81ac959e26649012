package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
	// Details lists every failed form rule when the error is a validation failure.
	Details []string `json:"details,omitempty"`
}

// respondError answers with the status mapped from err. Server errors are
// logged and answered with fallback; client errors echo a safe message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromContext(c)
	status := apperrors.StatusCode(err)

	var validation *apperrors.ValidationErrors
	switch {
	case errors.As(err, &validation):
		logger.Warn("Validation failed", slog.Any("messages", validation.Messages))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Revisa los datos del formulario.", Details: validation.Messages})
	case status == http.StatusBadRequest:
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: err.Error()})
	case status == http.StatusNotFound:
		c.JSON(status, ErrorResponse{Error: "No encontrado"})
	case status == http.StatusForbidden:
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: "No tienes permiso para esta acción."})
	case status == http.StatusUnauthorized:
		c.JSON(status, ErrorResponse{Error: "Sesión no válida"})
	case status == http.StatusConflict:
		c.JSON(status, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// actorFrom returns the acting person loaded by ActorMiddleware, answering
// 401 when it is missing.
func actorFrom(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromContext(c).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Sesión no válida"})
		return domain.Actor{}, false
	}
	return actor, true
}

// int64Param parses a positive numeric path parameter, answering 400 when
// it is malformed.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
