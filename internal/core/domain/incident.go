package domain

import (
	"strings"
	"time"
)

// GeneralPlate is the plate shown for incidents not tied to a sale.
const GeneralPlate = "GENERAL"

// IncidentStatus is the review state of an incident.
type IncidentStatus string

const (
	IncidentPendingReview IncidentStatus = "pte_revision"
	IncidentAccepted      IncidentStatus = "aceptada"
	IncidentRejected      IncidentStatus = "rechazada"
)

func (s IncidentStatus) Valid() bool   { return IncidentStatusLabels.Has(string(s)) }
func (s IncidentStatus) Label() string { return IncidentStatusLabels.Label(string(s)) }

// SaleRef is the part of a linked sale an incident needs for display.
type SaleRef struct {
	SaleID int64  `json:"saleID"`
	Plate  string `json:"plate"`
}

// Incident is a report filed by a person, optionally about specific sales.
type Incident struct {
	IncidentID   int64          `json:"incidentID"`
	ReporterID   *string        `json:"reporterID,omitempty"`
	Sales        []SaleRef      `json:"sales"`
	IsGeneral    bool           `json:"isGeneral"`
	IncidentDate time.Time      `json:"incidentDate"`
	Type         string         `json:"type"`
	Detail       string         `json:"detail"`
	Status       IncidentStatus `json:"status"`
	ValidationOK bool           `json:"validationOK"`
	CreatedAt    time.Time      `json:"createdAt"`

	// Reporter is populated by queries that join the reporting person.
	Reporter *Person `json:"-"`
}

// PlateDisplay is GENERAL for general incidents and incidents without linked
// sales, otherwise the comma-joined plates of the linked sales.
func (i Incident) PlateDisplay() string {
	if i.IsGeneral || len(i.Sales) == 0 {
		return GeneralPlate
	}
	plates := make([]string, len(i.Sales))
	for idx, s := range i.Sales {
		plates[idx] = s.Plate
	}
	return strings.Join(plates, ", ")
}

// ReporterDisplayName returns the reporter's name or an empty string.
func (i Incident) ReporterDisplayName() string {
	if i.Reporter == nil {
		return ""
	}
	return i.Reporter.DisplayName()
}
