package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/sales_commissions_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer JWT and stores its subject as the
// acting person id. ActorMiddleware loads the person afterwards.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		scheme, token, found := strings.Cut(c.GetHeader("Authorization"), " ")
		if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
			logger.Warn("Missing or malformed Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesión no iniciada"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(token, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Sesión no válida"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "La sesión ha caducado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		personID := claims.Subject
		if personID == "" {
			logger.Error("Person ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
			return
		}

		c.Set(string(personIDKey), personID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), personIDKey, personID))
		SetLogger(c, logger.With(slog.String("person_id", personID)))

		c.Next()
	}
}
