package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ActorMiddleware loads the authenticated person's roles and stores the
// resulting domain.Actor. It must run after AuthMiddleware. Deactivated or
// deleted persons are rejected even when their token is still valid.
func ActorMiddleware(persons portssvc.PersonReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)
		personID, ok := GetPersonIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
			return
		}

		actor, err := persons.ActorFor(c.Request.Context(), personID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Warn("Token subject is not an active person")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
				return
			}
			logger.Error("Failed to load acting person", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRoles rejects requests whose actor holds none of roles.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
			return
		}
		if !actor.HasRole(roles...) {
			GetLoggerFromContext(c).Warn("Role check failed", slog.Any("required", roles))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para esta acción."})
			return
		}
		c.Next()
	}
}
