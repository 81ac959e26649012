package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
	"github.com/shopspring/decimal"
)

// SalesPage is a person's filtered sales list.
type SalesPage struct {
	Spec  listquery.Spec
	Sales []domain.Sale
	// ApprovedTotal sums the approved commissions of Sales; HasApproved is
	// false when there is none.
	ApprovedTotal decimal.Decimal
	HasApproved   bool
}

// SaleReaderSvc defines read operations for sale data
type SaleReaderSvc interface {
	// ListMySales lists the actor's sales for the raw query parameters.
	ListMySales(ctx context.Context, actor domain.Actor, params url.Values) (*SalesPage, error)

	// ExportMySales resolves params like ListMySales and optionally narrows the
	// result to saleIDs.
	ExportMySales(ctx context.Context, actor domain.Actor, params url.Values, saleIDs []int64) ([]domain.Sale, error)

	// IncidentPlateOptions lists the plates the actor may file an incident
	// against, GENERAL first.
	IncidentPlateOptions(ctx context.Context, actor domain.Actor) ([]string, error)
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
}
