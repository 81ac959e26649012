package repositories

import (
	"context"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
)

// IncidentQuery selects incidents for a list view.
type IncidentQuery struct {
	// ReporterID restricts the list to one person's reports when set.
	ReporterID *string
	Spec       listquery.Spec
}

// IncidentReader defines read operations for incident data
type IncidentReader interface {
	// ListIncidents retrieves the incidents matching query in the spec's order,
	// with linked sales and the reporter loaded.
	ListIncidents(ctx context.Context, query IncidentQuery) ([]domain.Incident, error)

	// FindIncidentByID retrieves an incident with its linked sales and reporter.
	FindIncidentByID(ctx context.Context, incidentID int64) (*domain.Incident, error)

	// CountIncidentsByStatus counts incidents in the given status.
	CountIncidentsByStatus(ctx context.Context, status domain.IncidentStatus) (int, error)
}

// IncidentWriter defines write operations for incident data
type IncidentWriter interface {
	// SaveIncident inserts an incident and its sale links atomically and sets
	// its generated ID.
	SaveIncident(ctx context.Context, incident *domain.Incident) error

	// UpdateIncidentReview sets the review status and validation flag.
	UpdateIncidentReview(ctx context.Context, incidentID int64, status domain.IncidentStatus, validationOK bool) error
}

// IncidentRepositoryFacade combines all incident-related repository interfaces
type IncidentRepositoryFacade interface {
	IncidentReader
	IncidentWriter
}

// IncidentRepositoryWithTx extends IncidentRepositoryFacade with transaction capabilities
type IncidentRepositoryWithTx interface {
	IncidentRepositoryFacade
	TransactionManager
}
