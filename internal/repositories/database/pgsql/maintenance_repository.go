package pgsql

import (
	"context"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMaintenanceRepository struct {
	BaseRepository
}

func newPgxMaintenanceRepository(pool *pgxpool.Pool) portsrepo.DataResetter {
	return &PgxMaintenanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DataResetter = (*PgxMaintenanceRepository)(nil)

// ResetAll empties every application table and restarts the ID sequences.
func (r *PgxMaintenanceRepository) ResetAll(ctx context.Context) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			TRUNCATE bulletin_reads, bulletins, incident_sales, incidents,
				commissions, sales, profiles, persons
			RESTART IDENTITY CASCADE;
		`)
		if err != nil {
			return apperrors.NewAppError(500, "failed to reset data", err)
		}
		return nil
	})
}
