package pgsql

import (
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PersonRepo:     newPgxPersonRepository(dbPool),
		ProfileRepo:    newPgxProfileRepository(dbPool),
		SaleRepo:       newPgxSaleRepository(dbPool),
		CommissionRepo: newPgxCommissionRepository(dbPool),
		IncidentRepo:   newPgxIncidentRepository(dbPool),
		BulletinRepo:   newPgxBulletinRepository(dbPool),
		Maintenance:    newPgxMaintenanceRepository(dbPool),
	}
}
