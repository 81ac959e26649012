package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	"github.com/SscSPs/sales_commissions_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIncidentRepository struct {
	BaseRepository
}

func newPgxIncidentRepository(pool *pgxpool.Pool) portsrepo.IncidentRepositoryWithTx {
	return &PgxIncidentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxIncidentRepository implements portsrepo.IncidentRepositoryWithTx
var _ portsrepo.IncidentRepositoryWithTx = (*PgxIncidentRepository)(nil)

var FULL_INCIDENT_SELECT_QUERY = `
SELECT
	i.incident_id, i.reporter_id, i.is_general, i.incident_date, i.incident_type,
	i.detail, i.status, i.validation_ok, i.created_at,
	r.username AS reporter_username, r.first_name AS reporter_first_name, r.last_name AS reporter_last_name
FROM incidents i
LEFT JOIN persons r ON r.person_id = i.reporter_id
`

func toDomainIncident(m models.Incident) domain.Incident {
	incident := domain.Incident{
		IncidentID:   m.IncidentID,
		ReporterID:   m.ReporterID,
		Sales:        []domain.SaleRef{},
		IsGeneral:    m.IsGeneral,
		IncidentDate: m.IncidentDate,
		Type:         m.IncidentType,
		Detail:       m.Detail,
		Status:       domain.IncidentStatus(m.Status),
		ValidationOK: m.ValidationOK,
		CreatedAt:    m.CreatedAt,
	}
	if m.ReporterID != nil && m.ReporterUsername != nil {
		reporter := domain.Person{PersonID: *m.ReporterID, Username: *m.ReporterUsername}
		if m.ReporterFirstName != nil {
			reporter.FirstName = *m.ReporterFirstName
		}
		if m.ReporterLastName != nil {
			reporter.LastName = *m.ReporterLastName
		}
		incident.Reporter = &reporter
	}
	return incident
}

// getIncidents runs the select with filterQuery and attaches the linked
// sales of every returned incident with a second query.
func (r *PgxIncidentRepository) getIncidents(ctx context.Context, filterQuery string, args ...any) ([]domain.Incident, error) {
	rows, err := r.Pool.Query(ctx, FULL_INCIDENT_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query incidents", err)
	}
	defer rows.Close()

	modelIncidents, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Incident])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect incident rows", err)
	}
	if len(modelIncidents) == 0 {
		return []domain.Incident{}, nil
	}

	incidents := make([]domain.Incident, len(modelIncidents))
	ids := make([]int64, len(modelIncidents))
	position := make(map[int64]int, len(modelIncidents))
	for i, m := range modelIncidents {
		incidents[i] = toDomainIncident(m)
		ids[i] = m.IncidentID
		position[m.IncidentID] = i
	}

	links, err := r.findLinkedSales(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		idx := position[link.IncidentID]
		incidents[idx].Sales = append(incidents[idx].Sales, domain.SaleRef{SaleID: link.SaleID, Plate: link.Plate})
	}
	return incidents, nil
}

func (r *PgxIncidentRepository) findLinkedSales(ctx context.Context, incidentIDs []int64) ([]models.IncidentSale, error) {
	query := `
		SELECT isl.incident_id, isl.sale_id, s.plate
		FROM incident_sales isl
		JOIN sales s ON s.sale_id = isl.sale_id
		WHERE isl.incident_id = ANY($1)
		ORDER BY isl.incident_id, s.plate, s.sale_id;
	`
	rows, err := r.Pool.Query(ctx, query, incidentIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query incident sales", err)
	}
	links, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.IncidentSale])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect incident sale rows", err)
	}
	return links, nil
}

func (r *PgxIncidentRepository) ListIncidents(ctx context.Context, query portsrepo.IncidentQuery) ([]domain.Incident, error) {
	var conditions []string
	var args []any
	if query.ReporterID != nil {
		args = append(args, *query.ReporterID)
		conditions = append(conditions, fmt.Sprintf("i.reporter_id = $%d", len(args)))
	}
	where, specArgs := query.Spec.Where(len(args) + 1)
	conditions = append(conditions, where)
	args = append(args, specArgs...)

	filterQuery := "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY " + query.Spec.Sort.OrderBy()
	return r.getIncidents(ctx, filterQuery, args...)
}

func (r *PgxIncidentRepository) FindIncidentByID(ctx context.Context, incidentID int64) (*domain.Incident, error) {
	incidents, err := r.getIncidents(ctx, `WHERE i.incident_id = $1`, incidentID)
	if err != nil {
		return nil, err
	}
	if len(incidents) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &incidents[0], nil
}

func (r *PgxIncidentRepository) CountIncidentsByStatus(ctx context.Context, status domain.IncidentStatus) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM incidents WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count incidents", err)
	}
	return count, nil
}

// SaveIncident inserts the incident and its sale links in one transaction.
func (r *PgxIncidentRepository) SaveIncident(ctx context.Context, incident *domain.Incident) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO incidents (
				reporter_id, is_general, incident_date, incident_type, detail,
				status, validation_ok, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING incident_id;
		`,
			incident.ReporterID, incident.IsGeneral, incident.IncidentDate, incident.Type,
			incident.Detail, string(incident.Status), incident.ValidationOK, incident.CreatedAt,
		).Scan(&incident.IncidentID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert incident", err)
		}

		if len(incident.Sales) == 0 {
			return nil
		}
		batch := &pgx.Batch{}
		for _, ref := range incident.Sales {
			batch.Queue(`INSERT INTO incident_sales (incident_id, sale_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				incident.IncidentID, ref.SaleID)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(500, fmt.Sprintf("failed to link sales to incident %d", incident.IncidentID), err)
		}
		return nil
	})
}

func (r *PgxIncidentRepository) UpdateIncidentReview(ctx context.Context, incidentID int64, status domain.IncidentStatus, validationOK bool) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE incidents SET status = $2, validation_ok = $3 WHERE incident_id = $1`,
		incidentID, string(status), validationOK)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update incident review", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
