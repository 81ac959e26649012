package repositories

import (
	"context"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
)

// CommissionReader defines read operations for commission data
type CommissionReader interface {
	// FindCommissionByID retrieves a commission by its ID.
	FindCommissionByID(ctx context.Context, commissionID int64) (*domain.Commission, error)

	// FindCommissionsBySaleIDs retrieves the commissions of the given sales,
	// grouped by sale ID and ordered newest first within each sale.
	FindCommissionsBySaleIDs(ctx context.Context, saleIDs []int64) (map[int64][]domain.Commission, error)
}

// CommissionWriter defines write operations for commission data
type CommissionWriter interface {
	// SaveCommission inserts a commission and sets its generated ID.
	SaveCommission(ctx context.Context, commission *domain.Commission) error

	// UpdateCommissionStatus sets the review status of a commission.
	UpdateCommissionStatus(ctx context.Context, commissionID int64, status domain.CommissionStatus) error
}

// CommissionRepositoryFacade combines all commission-related repository interfaces
type CommissionRepositoryFacade interface {
	CommissionReader
	CommissionWriter
}
