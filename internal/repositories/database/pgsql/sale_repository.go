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

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

var FULL_SALE_SELECT_QUERY = `
SELECT
	s.sale_id, s.owner_id, s.plate, s.deal_id, s.sale_type, s.financed_units,
	s.buyer_tax_id, s.buyer_type, s.buyer_name, s.sale_date, s.created_at,
	p.username AS owner_username, p.first_name AS owner_first_name, p.last_name AS owner_last_name
FROM sales s
LEFT JOIN persons p ON p.person_id = s.owner_id
`

func toDomainSale(m models.Sale) domain.Sale {
	sale := domain.Sale{
		SaleID:     m.SaleID,
		OwnerID:    m.OwnerID,
		Plate:      m.Plate,
		DealID:     m.DealID,
		SaleType:   domain.SaleType(m.SaleType),
		BuyerTaxID: m.BuyerTaxID,
		BuyerType:  domain.BuyerType(m.BuyerType),
		BuyerName:  m.BuyerName,
		SaleDate:   m.SaleDate,
		CreatedAt:  m.CreatedAt,
	}
	if m.FinancedUnits != nil {
		units := int(*m.FinancedUnits)
		sale.FinancedUnits = &units
	}
	if m.OwnerID != nil && m.OwnerUsername != nil {
		owner := domain.Person{PersonID: *m.OwnerID, Username: *m.OwnerUsername}
		if m.OwnerFirstName != nil {
			owner.FirstName = *m.OwnerFirstName
		}
		if m.OwnerLastName != nil {
			owner.LastName = *m.OwnerLastName
		}
		sale.Owner = &owner
	}
	return sale
}

func (r *PgxSaleRepository) getSales(ctx context.Context, filterQuery string, args ...any) ([]domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, FULL_SALE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales", err)
	}
	defer rows.Close()

	modelSales, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Sale])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect sale rows", err)
	}
	sales := make([]domain.Sale, len(modelSales))
	for i, m := range modelSales {
		sales[i] = toDomainSale(m)
	}
	return sales, nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, query portsrepo.SaleQuery) ([]domain.Sale, error) {
	var conditions []string
	var args []any
	if query.OwnerID != nil {
		args = append(args, *query.OwnerID)
		conditions = append(conditions, fmt.Sprintf("s.owner_id = $%d", len(args)))
	}
	if len(query.SaleIDs) > 0 {
		args = append(args, query.SaleIDs)
		conditions = append(conditions, fmt.Sprintf("s.sale_id = ANY($%d)", len(args)))
	}
	where, specArgs := query.Spec.Where(len(args) + 1)
	conditions = append(conditions, where)
	args = append(args, specArgs...)

	filterQuery := "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY " + query.Spec.Sort.OrderBy()
	return r.getSales(ctx, filterQuery, args...)
}

func (r *PgxSaleRepository) FindSalesByOwnerAndPlate(ctx context.Context, ownerID, plate string) ([]domain.Sale, error) {
	return r.getSales(ctx, `WHERE s.owner_id = $1 AND UPPER(s.plate) = UPPER($2) ORDER BY s.sale_date DESC, s.sale_id DESC`, ownerID, plate)
}

func (r *PgxSaleRepository) ListOwnerPlates(ctx context.Context, ownerID string) ([]string, error) {
	query := `
		SELECT s.plate
		FROM sales s
		WHERE s.owner_id = $1 AND s.plate <> ''
		GROUP BY s.plate
		ORDER BY MAX(s.sale_date) DESC, s.plate;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query owner plates", err)
	}
	plates, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect owner plates", err)
	}
	return plates, nil
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale *domain.Sale) error {
	var financedUnits *int32
	if sale.FinancedUnits != nil {
		units := int32(*sale.FinancedUnits)
		financedUnits = &units
	}
	query := `
		INSERT INTO sales (
			owner_id, plate, deal_id, sale_type, financed_units,
			buyer_tax_id, buyer_type, buyer_name, sale_date, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING sale_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		sale.OwnerID, sale.Plate, sale.DealID, string(sale.SaleType), financedUnits,
		sale.BuyerTaxID, string(sale.BuyerType), sale.BuyerName, sale.SaleDate, sale.CreatedAt,
	).Scan(&sale.SaleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save sale "+sale.Plate, err)
	}
	return nil
}
