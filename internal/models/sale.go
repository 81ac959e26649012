package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table joined with its owner. Owner columns
// are nil for unassigned sales.
type Sale struct {
	SaleID         int64     `db:"sale_id"`
	OwnerID        *string   `db:"owner_id"`
	Plate          string    `db:"plate"`
	DealID         int64     `db:"deal_id"`
	SaleType       string    `db:"sale_type"`
	FinancedUnits  *int32    `db:"financed_units"`
	BuyerTaxID     string    `db:"buyer_tax_id"`
	BuyerType      string    `db:"buyer_type"`
	BuyerName      string    `db:"buyer_name"`
	SaleDate       time.Time `db:"sale_date"`
	CreatedAt      time.Time `db:"created_at"`
	OwnerUsername  *string   `db:"owner_username"`
	OwnerFirstName *string   `db:"owner_first_name"`
	OwnerLastName  *string   `db:"owner_last_name"`
}

// Commission is a row of the commissions table.
type Commission struct {
	CommissionID        int64               `db:"commission_id"`
	SaleID              int64               `db:"sale_id"`
	Amount              decimal.Decimal     `db:"amount"`
	Revenue             decimal.NullDecimal `db:"revenue"`
	GrossMargin         decimal.NullDecimal `db:"gross_margin"`
	Cost                decimal.NullDecimal `db:"cost"`
	FinancingCommission decimal.NullDecimal `db:"financing_commission"`
	TotalBenefit        decimal.NullDecimal `db:"total_benefit"`
	Insurance           decimal.NullDecimal `db:"insurance"`
	ComputedCommission  decimal.NullDecimal `db:"computed_commission"`
	Status              string              `db:"status"`
	CreatedAt           time.Time           `db:"created_at"`
}
