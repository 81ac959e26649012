package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	"github.com/SscSPs/sales_commissions_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProfileRepository implements portsrepo.ProfileRepositoryFacade
var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

var FULL_PROFILE_SELECT_QUERY = `
SELECT
	pr.person_id, pr.national_id, pr.phone, pr.site, pr.area,
	pr.supervisor_id, pr.manager_id, pr.director_id,
	pr.initial_profile_seen, pr.photo_path,
	pr.created_at, pr.created_by, pr.last_updated_at, pr.last_updated_by
FROM profiles pr
`

func toModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		PersonID:           d.PersonID,
		NationalID:         d.NationalID,
		Phone:              d.Phone,
		Site:               d.Site,
		Area:               d.Area,
		SupervisorID:       d.SupervisorID,
		ManagerID:          d.ManagerID,
		DirectorID:         d.DirectorID,
		InitialProfileSeen: d.InitialProfileSeen,
		PhotoPath:          d.PhotoPath,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		PersonID:           m.PersonID,
		NationalID:         m.NationalID,
		Phone:              m.Phone,
		Site:               m.Site,
		Area:               m.Area,
		SupervisorID:       m.SupervisorID,
		ManagerID:          m.ManagerID,
		DirectorID:         m.DirectorID,
		InitialProfileSeen: m.InitialProfileSeen,
		PhotoPath:          m.PhotoPath,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxProfileRepository) getProfiles(ctx context.Context, filterQuery string, args ...any) ([]domain.Profile, error) {
	rows, err := r.Pool.Query(ctx, FULL_PROFILE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query profiles", err)
	}
	defer rows.Close()

	modelProfiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect profile rows", err)
	}
	profiles := make([]domain.Profile, len(modelProfiles))
	for i, m := range modelProfiles {
		profiles[i] = toDomainProfile(m)
	}
	return profiles, nil
}

func (r *PgxProfileRepository) FindProfileByPersonID(ctx context.Context, personID string) (*domain.Profile, error) {
	profiles, err := r.getProfiles(ctx, `WHERE pr.person_id = $1`, personID)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &profiles[0], nil
}

func (r *PgxProfileRepository) FindDirectSubordinates(ctx context.Context, personID string) ([]domain.Profile, error) {
	query := `
		WHERE pr.supervisor_id = $1
		   OR (pr.supervisor_id IS NULL AND pr.manager_id = $1)
		ORDER BY pr.person_id`
	return r.getProfiles(ctx, query, personID)
}

func (r *PgxProfileRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	m := toModelProfile(profile)
	query := `
		INSERT INTO profiles (
			person_id, national_id, phone, site, area,
			supervisor_id, manager_id, director_id,
			initial_profile_seen, photo_path,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (person_id) DO UPDATE SET
			national_id = EXCLUDED.national_id,
			phone = EXCLUDED.phone,
			site = EXCLUDED.site,
			area = EXCLUDED.area,
			supervisor_id = EXCLUDED.supervisor_id,
			manager_id = EXCLUDED.manager_id,
			director_id = EXCLUDED.director_id,
			initial_profile_seen = EXCLUDED.initial_profile_seen,
			photo_path = EXCLUDED.photo_path,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PersonID, m.NationalID, m.Phone, m.Site, m.Area,
		m.SupervisorID, m.ManagerID, m.DirectorID,
		m.InitialProfileSeen, m.PhotoPath,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert profile "+profile.PersonID, err)
	}
	return nil
}

func (r *PgxProfileRepository) CreateProfileIfMissing(ctx context.Context, personID string, at time.Time) (bool, error) {
	query := `
		INSERT INTO profiles (person_id, area, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $1, $3, $1)
		ON CONFLICT (person_id) DO NOTHING;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, personID, domain.AreaSales, at)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to create profile for "+personID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxProfileRepository) UpdateContactDetails(ctx context.Context, personID, phone string, updatedAt time.Time) error {
	query := `
		UPDATE profiles
		SET phone = $2, initial_profile_seen = TRUE, last_updated_at = $3, last_updated_by = $1
		WHERE person_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, personID, phone, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update profile contact of "+personID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProfileRepository) MarkInitialProfileSeen(ctx context.Context, personID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE profiles SET initial_profile_seen = TRUE WHERE person_id = $1`, personID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark profile seen for "+personID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
