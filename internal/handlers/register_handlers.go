package handlers

import (
	"github.com/SscSPs/sales_commissions_app/cmd/docs"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/middleware"
	"github.com/SscSPs/sales_commissions_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	if err := registerAuthRoutes(r, cfg, services.Token); err != nil {
		return err
	}

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Every v1 route needs a token and an active person behind it
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ActorMiddleware(service.Person),
	)

	registerMeRoutes(v1, service.Person, service.Profile)
	registerSaleRoutes(v1, service.Sale)
	registerIncidentRoutes(v1, service.Incident, service.Sale)
	registerBulletinRoutes(v1, service.Bulletin)

	management := v1.Group("/management", middleware.RequireRoles(
		domain.RoleGeneralManager,
		domain.RoleCommercialDirector,
		domain.RoleAdmin,
	))
	registerManagementRoutes(management, service.Commission, service.Incident)

	admin := v1.Group("/admin", middleware.RequireRoles(domain.RoleAdmin))
	registerAdminRoutes(admin, service.Person, service.Profile)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
