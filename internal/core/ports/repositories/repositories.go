package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PersonRepo     PersonRepositoryFacade
	ProfileRepo    ProfileRepositoryFacade
	SaleRepo       SaleRepositoryFacade
	CommissionRepo CommissionRepositoryFacade
	IncidentRepo   IncidentRepositoryFacade
	BulletinRepo   BulletinRepositoryFacade
	Maintenance    DataResetter
}
