package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
)

type commissionService struct {
	BaseService
	saleRepo       portsrepo.SaleReader
	commissionRepo portsrepo.CommissionRepositoryFacade
	incidentRepo   portsrepo.IncidentReader
}

// NewCommissionService creates a new commission service.
func NewCommissionService(saleRepo portsrepo.SaleReader, commissionRepo portsrepo.CommissionRepositoryFacade, incidentRepo portsrepo.IncidentReader, options ...ServiceOption) portssvc.CommissionSvcFacade {
	return &commissionService{
		BaseService:    newBaseService(options),
		saleRepo:       saleRepo,
		commissionRepo: commissionRepo,
		incidentRepo:   incidentRepo,
	}
}

var _ portssvc.CommissionSvcFacade = (*commissionService)(nil)

// ListCommissionBoard lists all sales in range with their newest commission.
func (s *commissionService) ListCommissionBoard(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.CommissionBoard, error) {
	if err := s.AuthorizeManagement(ctx, actor); err != nil {
		return nil, err
	}

	spec := listquery.Resolve(params, portsrepo.ManagementCommissionsCatalog, listquery.DayPolicy, s.Now())
	pending, err := s.incidentRepo.CountIncidentsByStatus(ctx, domain.IncidentPendingReview)
	if err != nil {
		s.LogError(ctx, err, "Failed to count pending incidents")
		return nil, err
	}
	board := &portssvc.CommissionBoard{Spec: spec, Rows: []portssvc.CommissionRow{}, PendingIncidents: pending}
	if spec.Empty {
		return board, nil
	}

	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleQuery{Spec: spec})
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for commission board")
		return nil, err
	}
	if len(sales) == 0 {
		return board, nil
	}
	bySale, err := s.commissionRepo.FindCommissionsBySaleIDs(ctx, saleIDs(sales))
	if err != nil {
		s.LogError(ctx, err, "Failed to load commissions for board")
		return nil, err
	}

	board.Rows = make([]portssvc.CommissionRow, len(sales))
	for i, sale := range sales {
		row := portssvc.CommissionRow{Sale: sale}
		if commissions := bySale[sale.SaleID]; len(commissions) > 0 {
			c := commissions[0]
			row.Commission = &c
		}
		board.Rows[i] = row
	}
	return board, nil
}

// ReviewCommission sets the status of a commission.
func (s *commissionService) ReviewCommission(ctx context.Context, actor domain.Actor, commissionID int64, status domain.CommissionStatus) (*domain.Commission, error) {
	if err := s.AuthorizeManagement(ctx, actor); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown commission status %q", apperrors.ErrValidation, status)
	}

	if err := s.commissionRepo.UpdateCommissionStatus(ctx, commissionID, status); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update commission status", slog.Int64("commission_id", commissionID))
		}
		return nil, err
	}
	commission, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Commission reviewed",
		slog.Int64("commission_id", commissionID),
		slog.String("status", string(status)),
		slog.String("reviewed_by", actor.PersonID))
	return commission, nil
}
