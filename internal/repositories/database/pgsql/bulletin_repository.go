package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	"github.com/SscSPs/sales_commissions_app/internal/models"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBulletinRepository struct {
	BaseRepository
}

func newPgxBulletinRepository(pool *pgxpool.Pool) portsrepo.BulletinRepositoryFacade {
	return &PgxBulletinRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBulletinRepository implements portsrepo.BulletinRepositoryFacade
var _ portsrepo.BulletinRepositoryFacade = (*PgxBulletinRepository)(nil)

// The receipt columns come from a LEFT JOIN on one reader; $1 is that
// reader's person ID (or NULL when no receipt is wanted).
var FULL_BULLETIN_SELECT_QUERY = `
SELECT
	b.bulletin_id, b.title, b.bulletin_date, b.brand, b.category, b.active,
	br.read_at, br.confirmed
FROM bulletins b
LEFT JOIN bulletin_reads br ON br.bulletin_id = b.bulletin_id AND br.person_id = $1
`

func toDomainBulletinView(m models.Bulletin, personID string) domain.BulletinView {
	view := domain.BulletinView{Bulletin: domain.Bulletin{
		BulletinID: m.BulletinID,
		Title:      m.Title,
		Date:       m.BulletinDate,
		Brand:      m.Brand,
		Category:   m.Category,
		Active:     m.Active,
	}}
	if m.ReadAt != nil {
		read := &domain.BulletinRead{BulletinID: m.BulletinID, PersonID: personID, ReadAt: *m.ReadAt}
		if m.Confirmed != nil {
			read.Confirmed = *m.Confirmed
		}
		view.Read = read
	}
	return view
}

func (r *PgxBulletinRepository) getBulletins(ctx context.Context, personID *string, filterQuery string, args ...any) ([]domain.BulletinView, error) {
	rows, err := r.Pool.Query(ctx, FULL_BULLETIN_SELECT_QUERY+filterQuery, append([]any{personID}, args...)...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bulletins", err)
	}
	defer rows.Close()

	modelBulletins, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Bulletin])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect bulletin rows", err)
	}
	reader := ""
	if personID != nil {
		reader = *personID
	}
	views := make([]domain.BulletinView, len(modelBulletins))
	for i, m := range modelBulletins {
		views[i] = toDomainBulletinView(m, reader)
	}
	return views, nil
}

func (r *PgxBulletinRepository) ListActiveBulletins(ctx context.Context, personID string, spec listquery.Spec) ([]domain.BulletinView, error) {
	where, args := spec.Where(2)
	filterQuery := "WHERE b.active AND " + where + " ORDER BY " + spec.Sort.OrderBy()
	return r.getBulletins(ctx, &personID, filterQuery, args...)
}

func (r *PgxBulletinRepository) FindBulletinByID(ctx context.Context, bulletinID int64) (*domain.Bulletin, error) {
	views, err := r.getBulletins(ctx, nil, `WHERE b.bulletin_id = $2`, bulletinID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &views[0].Bulletin, nil
}

func (r *PgxBulletinRepository) SaveBulletin(ctx context.Context, bulletin *domain.Bulletin) error {
	query := `
		INSERT INTO bulletins (title, bulletin_date, brand, category, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING bulletin_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		bulletin.Title, bulletin.Date, bulletin.Brand, bulletin.Category, bulletin.Active,
	).Scan(&bulletin.BulletinID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save bulletin "+bulletin.Title, err)
	}
	return nil
}

func (r *PgxBulletinRepository) MarkRead(ctx context.Context, bulletinID int64, personID string, at time.Time) error {
	query := `
		INSERT INTO bulletin_reads (bulletin_id, person_id, read_at, confirmed)
		VALUES ($1, $2, $3, FALSE)
		ON CONFLICT (bulletin_id, person_id) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, query, bulletinID, personID, at); err != nil {
		return apperrors.NewAppError(500, "failed to mark bulletin read", err)
	}
	return nil
}

func (r *PgxBulletinRepository) ConfirmRead(ctx context.Context, bulletinID int64, personID string, at time.Time) error {
	query := `
		INSERT INTO bulletin_reads (bulletin_id, person_id, read_at, confirmed)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (bulletin_id, person_id) DO UPDATE SET confirmed = TRUE;
	`
	if _, err := r.Pool.Exec(ctx, query, bulletinID, personID, at); err != nil {
		return apperrors.NewAppError(500, "failed to confirm bulletin read", err)
	}
	return nil
}
