package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus is the approval state of a commission.
type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "pendiente"
	CommissionApproved CommissionStatus = "aprobada"
	CommissionRejected CommissionStatus = "rechazada"
)

func (s CommissionStatus) Valid() bool   { return CommissionStatusLabels.Has(string(s)) }
func (s CommissionStatus) Label() string { return CommissionStatusLabels.Label(string(s)) }

// Commission is the payout record of a sale. Amounts are exact decimals.
type Commission struct {
	CommissionID        int64               `json:"commissionID"`
	SaleID              int64               `json:"saleID"`
	Amount              decimal.Decimal     `json:"amount"`
	Revenue             decimal.NullDecimal `json:"revenue"`
	GrossMargin         decimal.NullDecimal `json:"grossMargin"`
	Cost                decimal.NullDecimal `json:"cost"`
	FinancingCommission decimal.NullDecimal `json:"financingCommission"`
	TotalBenefit        decimal.NullDecimal `json:"totalBenefit"`
	Insurance           decimal.NullDecimal `json:"insurance"`
	ComputedCommission  decimal.NullDecimal `json:"computedCommission"`
	Status              CommissionStatus    `json:"status"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// SumApproved adds the amounts of the approved commissions. The boolean is
// false when none of them is approved.
func SumApproved(commissions []Commission) (decimal.Decimal, bool) {
	total := decimal.Zero
	found := false
	for _, c := range commissions {
		if c.Status != CommissionApproved {
			continue
		}
		total = total.Add(c.Amount)
		found = true
	}
	return total, found
}
