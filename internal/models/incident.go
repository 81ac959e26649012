package models

import "time"

// Incident is a row of the incidents table joined with its reporter.
type Incident struct {
	IncidentID        int64     `db:"incident_id"`
	ReporterID        *string   `db:"reporter_id"`
	IsGeneral         bool      `db:"is_general"`
	IncidentDate      time.Time `db:"incident_date"`
	IncidentType      string    `db:"incident_type"`
	Detail            string    `db:"detail"`
	Status            string    `db:"status"`
	ValidationOK      bool      `db:"validation_ok"`
	CreatedAt         time.Time `db:"created_at"`
	ReporterUsername  *string   `db:"reporter_username"`
	ReporterFirstName *string   `db:"reporter_first_name"`
	ReporterLastName  *string   `db:"reporter_last_name"`
}

// IncidentSale is a linked sale of an incident.
type IncidentSale struct {
	IncidentID int64  `db:"incident_id"`
	SaleID     int64  `db:"sale_id"`
	Plate      string `db:"plate"`
}
