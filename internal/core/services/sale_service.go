package services

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
	"github.com/shopspring/decimal"
)

type saleService struct {
	BaseService
	saleRepo       portsrepo.SaleReader
	commissionRepo portsrepo.CommissionReader
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleReader, commissionRepo portsrepo.CommissionReader, options ...ServiceOption) portssvc.SaleSvcFacade {
	return &saleService{
		BaseService:    newBaseService(options),
		saleRepo:       saleRepo,
		commissionRepo: commissionRepo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func saleIDs(sales []domain.Sale) []int64 {
	ids := make([]int64, len(sales))
	for i, sale := range sales {
		ids[i] = sale.SaleID
	}
	return ids
}

func (s *saleService) listOwned(ctx context.Context, actor domain.Actor, spec listquery.Spec, ids []int64) ([]domain.Sale, error) {
	if spec.Empty {
		return []domain.Sale{}, nil
	}
	ownerID := actor.PersonID
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleQuery{OwnerID: &ownerID, SaleIDs: ids, Spec: spec})
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales", slog.String("person_id", actor.PersonID))
		return nil, err
	}
	return sales, nil
}

// ListMySales lists the actor's sales and the approved commission total.
func (s *saleService) ListMySales(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.SalesPage, error) {
	spec := listquery.Resolve(params, portsrepo.MySalesCatalog, listquery.DayPolicy, s.Now())
	sales, err := s.listOwned(ctx, actor, spec, nil)
	if err != nil {
		return nil, err
	}

	page := &portssvc.SalesPage{Spec: spec, Sales: sales, ApprovedTotal: decimal.Zero}
	if len(sales) == 0 {
		return page, nil
	}

	bySale, err := s.commissionRepo.FindCommissionsBySaleIDs(ctx, saleIDs(sales))
	if err != nil {
		s.LogError(ctx, err, "Failed to load commissions", slog.String("person_id", actor.PersonID))
		return nil, err
	}
	var all []domain.Commission
	for _, commissions := range bySale {
		all = append(all, commissions...)
	}
	page.ApprovedTotal, page.HasApproved = domain.SumApproved(all)

	s.LogDebug(ctx, "Sales listed", slog.Int("count", len(sales)), slog.String("from", spec.Period.FromDisplay), slog.String("to", spec.Period.ToDisplay))
	return page, nil
}

// ExportMySales returns the rows of an export of the actor's sales.
func (s *saleService) ExportMySales(ctx context.Context, actor domain.Actor, params url.Values, ids []int64) ([]domain.Sale, error) {
	spec := listquery.Resolve(params, portsrepo.MySalesCatalog, listquery.DayPolicy, s.Now())
	return s.listOwned(ctx, actor, spec, ids)
}

// IncidentPlateOptions lists GENERAL followed by the actor's plates.
func (s *saleService) IncidentPlateOptions(ctx context.Context, actor domain.Actor) ([]string, error) {
	plates, err := s.saleRepo.ListOwnerPlates(ctx, actor.PersonID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list plates", slog.String("person_id", actor.PersonID))
		return nil, err
	}
	return append([]string{domain.GeneralPlate}, plates...), nil
}
