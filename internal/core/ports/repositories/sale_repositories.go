package repositories

import (
	"context"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
)

// SaleQuery selects sales for a list view.
type SaleQuery struct {
	// OwnerID restricts the list to one person's sales when set.
	OwnerID *string
	// SaleIDs further restricts the list to an explicit selection when non-empty.
	SaleIDs []int64
	Spec    listquery.Spec
}

// SaleReader defines read operations for sale data
type SaleReader interface {
	// ListSales retrieves the sales matching query in the spec's order, with
	// the owning person joined.
	ListSales(ctx context.Context, query SaleQuery) ([]domain.Sale, error)

	// FindSalesByOwnerAndPlate retrieves the sales of ownerID carrying plate.
	FindSalesByOwnerAndPlate(ctx context.Context, ownerID, plate string) ([]domain.Sale, error)

	// ListOwnerPlates returns the distinct plates of ownerID's sales, most
	// recent sale first.
	ListOwnerPlates(ctx context.Context, ownerID string) ([]string, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale inserts a sale and sets its generated ID.
	SaveSale(ctx context.Context, sale *domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
