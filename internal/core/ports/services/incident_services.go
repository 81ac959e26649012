package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
)

// NewIncident is the raw input of an incident registration.
type NewIncident struct {
	Date   string
	Plate  string
	Type   string
	Detail string
}

// IncidentPage is a filtered incident list.
type IncidentPage struct {
	Spec             listquery.Spec
	Incidents        []domain.Incident
	PendingIncidents int
}

// IncidentDetail is one incident with its neighbours in the reporter's list.
type IncidentDetail struct {
	Incident   domain.Incident
	Spec       listquery.Spec
	PreviousID *int64
	NextID     *int64
	// Position is 1-based; zero when the incident is outside the list range.
	Position int
	Total    int
}

// IncidentReporterSvc covers a person's own incidents
type IncidentReporterSvc interface {
	ListMyIncidents(ctx context.Context, actor domain.Actor, params url.Values) (*IncidentPage, error)
	RegisterIncident(ctx context.Context, actor domain.Actor, req NewIncident) (*domain.Incident, error)
	GetMyIncident(ctx context.Context, actor domain.Actor, incidentID int64, params url.Values) (*IncidentDetail, error)
}

// IncidentReviewSvc covers management review of incidents
type IncidentReviewSvc interface {
	ListIncidentBoard(ctx context.Context, actor domain.Actor, params url.Values) (*IncidentPage, error)
	ReviewIncident(ctx context.Context, actor domain.Actor, incidentID int64, status domain.IncidentStatus, validationOK bool) (*domain.Incident, error)
}

// IncidentSvcFacade combines all incident-related service interfaces
type IncidentSvcFacade interface {
	IncidentReporterSvc
	IncidentReviewSvc
}

// IncidentNotifier delivers the notice of a newly registered incident.
type IncidentNotifier interface {
	NotifyIncident(ctx context.Context, incident domain.Incident, reporter domain.Person) error
}
