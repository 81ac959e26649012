package dto

import (
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils/period"
)

// CreateIncidentRequest is the raw form of a new incident. Values are
// validated by the service so every problem is reported at once.
type CreateIncidentRequest struct {
	Date   string `json:"fecha"`
	Plate  string `json:"matricula"`
	Type   string `json:"tipo"`
	Detail string `json:"detalle"`
}

// ReviewIncidentRequest records a management decision on an incident.
type ReviewIncidentRequest struct {
	Status       domain.IncidentStatus `json:"status" binding:"required,oneof=pte_revision aceptada rechazada"`
	ValidationOK bool                  `json:"validationOK"`
}

// IncidentResponse defines the data returned for an incident.
type IncidentResponse struct {
	IncidentID   int64     `json:"incidentID"`
	Plate        string    `json:"plate"`
	SaleIDs      []int64   `json:"saleIDs"`
	IsGeneral    bool      `json:"isGeneral"`
	IncidentDate string    `json:"incidentDate"`
	Type         string    `json:"type"`
	Detail       string    `json:"detail"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"statusLabel"`
	ValidationOK bool      `json:"validationOK"`
	Reporter     string    `json:"reporter"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IncidentListResponse is a filtered incident list.
type IncidentListResponse struct {
	Meta             ListMeta           `json:"meta"`
	Count            int                `json:"count"`
	Incidents        []IncidentResponse `json:"incidents"`
	PendingIncidents int                `json:"pendingIncidents"`
}

// IncidentDetailResponse is one incident with its neighbours.
type IncidentDetailResponse struct {
	Incident   IncidentResponse `json:"incident"`
	Meta       ListMeta         `json:"meta"`
	PreviousID *int64           `json:"previousID"`
	NextID     *int64           `json:"nextID"`
	Position   int              `json:"position"`
	Total      int              `json:"total"`
}

// ToIncidentResponse converts a domain.Incident.
func ToIncidentResponse(i domain.Incident) IncidentResponse {
	saleIDs := make([]int64, len(i.Sales))
	for idx, ref := range i.Sales {
		saleIDs[idx] = ref.SaleID
	}
	return IncidentResponse{
		IncidentID:   i.IncidentID,
		Plate:        i.PlateDisplay(),
		SaleIDs:      saleIDs,
		IsGeneral:    i.IsGeneral,
		IncidentDate: i.IncidentDate.Format(period.DayLayout),
		Type:         i.Type,
		Detail:       i.Detail,
		Status:       string(i.Status),
		StatusLabel:  i.Status.Label(),
		ValidationOK: i.ValidationOK,
		Reporter:     i.ReporterDisplayName(),
		CreatedAt:    i.CreatedAt,
	}
}

// ToIncidentListResponse converts an incident page.
func ToIncidentListResponse(page *portssvc.IncidentPage) IncidentListResponse {
	res := IncidentListResponse{
		Meta:             ToListMeta(page.Spec),
		Count:            len(page.Incidents),
		Incidents:        make([]IncidentResponse, len(page.Incidents)),
		PendingIncidents: page.PendingIncidents,
	}
	for idx, i := range page.Incidents {
		res.Incidents[idx] = ToIncidentResponse(i)
	}
	return res
}

// ToIncidentDetailResponse converts an incident detail.
func ToIncidentDetailResponse(d *portssvc.IncidentDetail) IncidentDetailResponse {
	return IncidentDetailResponse{
		Incident:   ToIncidentResponse(d.Incident),
		Meta:       ToListMeta(d.Spec),
		PreviousID: d.PreviousID,
		NextID:     d.NextID,
		Position:   d.Position,
		Total:      d.Total,
	}
}
