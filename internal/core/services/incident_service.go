package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
	"github.com/SscSPs/sales_commissions_app/internal/utils/period"
)

type incidentService struct {
	BaseService
	incidentRepo portsrepo.IncidentRepositoryFacade
	saleRepo     portsrepo.SaleReader
	personRepo   portsrepo.PersonReader
	notifier     portssvc.IncidentNotifier
}

// NewIncidentService creates a new incident service. notifier may be nil,
// in which case registrations are not announced.
func NewIncidentService(
	incidentRepo portsrepo.IncidentRepositoryFacade,
	saleRepo portsrepo.SaleReader,
	personRepo portsrepo.PersonReader,
	notifier portssvc.IncidentNotifier,
	options ...ServiceOption,
) portssvc.IncidentSvcFacade {
	return &incidentService{
		BaseService:  newBaseService(options),
		incidentRepo: incidentRepo,
		saleRepo:     saleRepo,
		personRepo:   personRepo,
		notifier:     notifier,
	}
}

var _ portssvc.IncidentSvcFacade = (*incidentService)(nil)

func (s *incidentService) list(ctx context.Context, reporterID *string, spec listquery.Spec) ([]domain.Incident, error) {
	if spec.Empty {
		return []domain.Incident{}, nil
	}
	incidents, err := s.incidentRepo.ListIncidents(ctx, portsrepo.IncidentQuery{ReporterID: reporterID, Spec: spec})
	if err != nil {
		s.LogError(ctx, err, "Failed to list incidents")
		return nil, err
	}
	return incidents, nil
}

// ListMyIncidents lists the incidents the actor reported.
func (s *incidentService) ListMyIncidents(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.IncidentPage, error) {
	spec := listquery.Resolve(params, portsrepo.MyIncidentsCatalog, listquery.DayPolicy, s.Now())
	reporterID := actor.PersonID
	incidents, err := s.list(ctx, &reporterID, spec)
	if err != nil {
		return nil, err
	}
	return &portssvc.IncidentPage{Spec: spec, Incidents: incidents}, nil
}

// RegisterIncident validates and stores a new incident filed by the actor.
func (s *incidentService) RegisterIncident(ctx context.Context, actor domain.Actor, req portssvc.NewIncident) (*domain.Incident, error) {
	plate := strings.TrimSpace(req.Plate)
	incidentType := strings.TrimSpace(req.Type)
	detail := strings.TrimSpace(req.Detail)
	now := s.Now()

	var errs apperrors.ValidationErrors
	date, ok := period.ParseDay(req.Date)
	switch {
	case !ok:
		errs.Add("La fecha de incidencia no es válida.")
	case date.After(period.Day(now)):
		errs.Add("La fecha de incidencia no puede estar en el futuro.")
	}

	isGeneral := strings.EqualFold(plate, domain.GeneralPlate)
	var refs []domain.SaleRef
	if !isGeneral {
		var sales []domain.Sale
		if plate != "" {
			var err error
			sales, err = s.saleRepo.FindSalesByOwnerAndPlate(ctx, actor.PersonID, plate)
			if err != nil {
				s.LogError(ctx, err, "Failed to look up sales by plate", slog.String("plate", plate))
				return nil, err
			}
		}
		if len(sales) == 0 {
			errs.Add("Debes seleccionar una matrícula de tus ventas.")
		}
		for _, sale := range sales {
			refs = append(refs, domain.SaleRef{SaleID: sale.SaleID, Plate: sale.Plate})
		}
	}
	if incidentType == "" {
		errs.Add("El tipo de incidencia es obligatorio.")
	}
	if detail == "" {
		errs.Add("El detalle de incidencia es obligatorio.")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	reporterID := actor.PersonID
	incident := domain.Incident{
		ReporterID:   &reporterID,
		Sales:        refs,
		IsGeneral:    isGeneral,
		IncidentDate: date,
		Type:         incidentType,
		Detail:       detail,
		Status:       domain.IncidentPendingReview,
		ValidationOK: false,
		CreatedAt:    now,
	}
	if err := s.incidentRepo.SaveIncident(ctx, &incident); err != nil {
		s.LogError(ctx, err, "Failed to save incident", slog.String("person_id", actor.PersonID))
		return nil, err
	}
	s.LogInfo(ctx, "Incident registered",
		slog.Int64("incident_id", incident.IncidentID),
		slog.String("plate", incident.PlateDisplay()),
		slog.Int("linked_sales", len(refs)))

	s.notify(ctx, incident)
	return &incident, nil
}

// notify announces the incident. Failures are logged and never undo the
// registration.
func (s *incidentService) notify(ctx context.Context, incident domain.Incident) {
	if s.notifier == nil {
		return
	}
	reporter, err := s.personRepo.FindPersonByID(ctx, *incident.ReporterID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load reporter for notification", slog.Int64("incident_id", incident.IncidentID))
		return
	}
	if err := s.notifier.NotifyIncident(ctx, incident, *reporter); err != nil {
		s.LogError(ctx, err, "Failed to send incident notification", slog.Int64("incident_id", incident.IncidentID))
	}
}

// GetMyIncident returns an incident reported by the actor with its position
// in the actor's filtered list.
func (s *incidentService) GetMyIncident(ctx context.Context, actor domain.Actor, incidentID int64, params url.Values) (*portssvc.IncidentDetail, error) {
	incident, err := s.incidentRepo.FindIncidentByID(ctx, incidentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find incident", slog.Int64("incident_id", incidentID))
		}
		return nil, err
	}
	if incident.ReporterID == nil || *incident.ReporterID != actor.PersonID {
		return nil, fmt.Errorf("incident %d of another reporter: %w", incidentID, apperrors.ErrNotFound)
	}

	spec := listquery.Resolve(params, portsrepo.MyIncidentsCatalog, listquery.DayPolicy, s.Now())
	reporterID := actor.PersonID
	siblings, err := s.list(ctx, &reporterID, spec)
	if err != nil {
		return nil, err
	}

	detail := &portssvc.IncidentDetail{Incident: *incident, Spec: spec, Total: len(siblings)}
	for idx, sibling := range siblings {
		if sibling.IncidentID != incidentID {
			continue
		}
		detail.Position = idx + 1
		if idx > 0 {
			prev := siblings[idx-1].IncidentID
			detail.PreviousID = &prev
		}
		if idx < len(siblings)-1 {
			next := siblings[idx+1].IncidentID
			detail.NextID = &next
		}
		break
	}
	return detail, nil
}

// ListIncidentBoard lists every incident in range for management.
func (s *incidentService) ListIncidentBoard(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.IncidentPage, error) {
	if err := s.AuthorizeManagement(ctx, actor); err != nil {
		return nil, err
	}
	spec := listquery.Resolve(params, portsrepo.ManagementIncidentsCatalog, listquery.DayPolicy, s.Now())
	pending, err := s.incidentRepo.CountIncidentsByStatus(ctx, domain.IncidentPendingReview)
	if err != nil {
		s.LogError(ctx, err, "Failed to count pending incidents")
		return nil, err
	}
	incidents, err := s.list(ctx, nil, spec)
	if err != nil {
		return nil, err
	}
	return &portssvc.IncidentPage{Spec: spec, Incidents: incidents, PendingIncidents: pending}, nil
}

// ReviewIncident records a management decision on an incident.
func (s *incidentService) ReviewIncident(ctx context.Context, actor domain.Actor, incidentID int64, status domain.IncidentStatus, validationOK bool) (*domain.Incident, error) {
	if err := s.AuthorizeManagement(ctx, actor); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown incident status %q", apperrors.ErrValidation, status)
	}
	if err := s.incidentRepo.UpdateIncidentReview(ctx, incidentID, status, validationOK); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to review incident", slog.Int64("incident_id", incidentID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Incident reviewed",
		slog.Int64("incident_id", incidentID),
		slog.String("status", string(status)),
		slog.String("reviewed_by", actor.PersonID))
	return s.incidentRepo.FindIncidentByID(ctx, incidentID)
}
