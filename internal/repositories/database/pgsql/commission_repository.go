package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	"github.com/SscSPs/sales_commissions_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCommissionRepository struct {
	BaseRepository
}

func newPgxCommissionRepository(pool *pgxpool.Pool) portsrepo.CommissionRepositoryFacade {
	return &PgxCommissionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCommissionRepository implements portsrepo.CommissionRepositoryFacade
var _ portsrepo.CommissionRepositoryFacade = (*PgxCommissionRepository)(nil)

var FULL_COMMISSION_SELECT_QUERY = `
SELECT
	c.commission_id, c.sale_id, c.amount, c.revenue, c.gross_margin, c.cost,
	c.financing_commission, c.total_benefit, c.insurance, c.computed_commission,
	c.status, c.created_at
FROM commissions c
`

func toDomainCommission(m models.Commission) domain.Commission {
	return domain.Commission{
		CommissionID:        m.CommissionID,
		SaleID:              m.SaleID,
		Amount:              m.Amount,
		Revenue:             m.Revenue,
		GrossMargin:         m.GrossMargin,
		Cost:                m.Cost,
		FinancingCommission: m.FinancingCommission,
		TotalBenefit:        m.TotalBenefit,
		Insurance:           m.Insurance,
		ComputedCommission:  m.ComputedCommission,
		Status:              domain.CommissionStatus(m.Status),
		CreatedAt:           m.CreatedAt,
	}
}

func (r *PgxCommissionRepository) getCommissions(ctx context.Context, filterQuery string, args ...any) ([]domain.Commission, error) {
	rows, err := r.Pool.Query(ctx, FULL_COMMISSION_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query commissions", err)
	}
	defer rows.Close()

	modelCommissions, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Commission])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect commission rows", err)
	}
	commissions := make([]domain.Commission, len(modelCommissions))
	for i, m := range modelCommissions {
		commissions[i] = toDomainCommission(m)
	}
	return commissions, nil
}

func (r *PgxCommissionRepository) FindCommissionByID(ctx context.Context, commissionID int64) (*domain.Commission, error) {
	commissions, err := r.getCommissions(ctx, `WHERE c.commission_id = $1`, commissionID)
	if err != nil {
		return nil, err
	}
	if len(commissions) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &commissions[0], nil
}

func (r *PgxCommissionRepository) FindCommissionsBySaleIDs(ctx context.Context, saleIDs []int64) (map[int64][]domain.Commission, error) {
	bySale := make(map[int64][]domain.Commission)
	if len(saleIDs) == 0 {
		return bySale, nil
	}
	commissions, err := r.getCommissions(ctx,
		`WHERE c.sale_id = ANY($1) ORDER BY c.sale_id, c.created_at DESC, c.commission_id DESC`, saleIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range commissions {
		bySale[c.SaleID] = append(bySale[c.SaleID], c)
	}
	return bySale, nil
}

func (r *PgxCommissionRepository) SaveCommission(ctx context.Context, commission *domain.Commission) error {
	query := `
		INSERT INTO commissions (
			sale_id, amount, revenue, gross_margin, cost, financing_commission,
			total_benefit, insurance, computed_commission, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING commission_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		commission.SaleID, commission.Amount, commission.Revenue, commission.GrossMargin,
		commission.Cost, commission.FinancingCommission, commission.TotalBenefit,
		commission.Insurance, commission.ComputedCommission, string(commission.Status), commission.CreatedAt,
	).Scan(&commission.CommissionID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: sale %d does not exist", apperrors.ErrValidation, commission.SaleID)
		}
		return apperrors.NewAppError(500, "failed to save commission", err)
	}
	return nil
}

func (r *PgxCommissionRepository) UpdateCommissionStatus(ctx context.Context, commissionID int64, status domain.CommissionStatus) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE commissions SET status = $2 WHERE commission_id = $1`, commissionID, string(status))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update commission status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
