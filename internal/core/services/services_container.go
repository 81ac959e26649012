package services

import (
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// notifier may be nil when incident mail is not configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.IncidentNotifier, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Profiles first: person creation goes through the hierarchy resolver
	container.Profile = NewProfileService(repos.ProfileRepo, repos.PersonRepo, options...)
	container.Person = NewPersonService(repos.PersonRepo, container.Profile, options...)
	container.Token = NewTokenService(cfg, container.Person, options...)

	container.Sale = NewSaleService(repos.SaleRepo, repos.CommissionRepo, options...)
	container.Commission = NewCommissionService(repos.SaleRepo, repos.CommissionRepo, repos.IncidentRepo, options...)
	container.Incident = NewIncidentService(repos.IncidentRepo, repos.SaleRepo, repos.PersonRepo, notifier, options...)
	container.Bulletin = NewBulletinService(repos.BulletinRepo, options...)

	return container
}
