package dto

import (
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils"
	"github.com/SscSPs/sales_commissions_app/internal/utils/period"
)

// CommissionResponse carries the display values of a commission. Missing
// sub-amounts render as "-".
type CommissionResponse struct {
	CommissionID        int64     `json:"commissionID"`
	SaleID              int64     `json:"saleID"`
	Amount              string    `json:"amount"`
	Revenue             string    `json:"revenue"`
	GrossMargin         string    `json:"grossMargin"`
	Cost                string    `json:"cost"`
	FinancingCommission string    `json:"financingCommission"`
	TotalBenefit        string    `json:"totalBenefit"`
	Insurance           string    `json:"insurance"`
	ComputedCommission  string    `json:"computedCommission"`
	Status              string    `json:"status"`
	StatusLabel         string    `json:"statusLabel"`
	CreatedAt           time.Time `json:"createdAt"`
}

// CommissionBoardRow is one sale of the management commissions dashboard.
type CommissionBoardRow struct {
	SaleID         int64               `json:"saleID"`
	Employee       string              `json:"employee"`
	Plate          string              `json:"plate"`
	DealID         int64               `json:"dealID"`
	SaleDate       string              `json:"saleDate"`
	SaleTypeLabel  string              `json:"saleTypeLabel"`
	BuyerTypeLabel string              `json:"buyerTypeLabel"`
	Commission     *CommissionResponse `json:"commission"`
}

// CommissionBoardResponse is the management commissions dashboard.
type CommissionBoardResponse struct {
	Meta             ListMeta             `json:"meta"`
	Count            int                  `json:"count"`
	Rows             []CommissionBoardRow `json:"rows"`
	PendingIncidents int                  `json:"pendingIncidents"`
}

// ReviewCommissionRequest sets the status of a commission.
type ReviewCommissionRequest struct {
	Status domain.CommissionStatus `json:"status" binding:"required,oneof=pendiente aprobada rechazada"`
}

// ToCommissionResponse converts a domain.Commission.
func ToCommissionResponse(c domain.Commission) CommissionResponse {
	return CommissionResponse{
		CommissionID:        c.CommissionID,
		SaleID:              c.SaleID,
		Amount:              utils.FormatAmountES(c.Amount),
		Revenue:             utils.FormatOptionalAmountES(c.Revenue),
		GrossMargin:         utils.FormatOptionalAmountES(c.GrossMargin),
		Cost:                utils.FormatOptionalAmountES(c.Cost),
		FinancingCommission: utils.FormatOptionalAmountES(c.FinancingCommission),
		TotalBenefit:        utils.FormatOptionalAmountES(c.TotalBenefit),
		Insurance:           utils.FormatOptionalAmountES(c.Insurance),
		ComputedCommission:  utils.FormatOptionalAmountES(c.ComputedCommission),
		Status:              string(c.Status),
		StatusLabel:         c.Status.Label(),
		CreatedAt:           c.CreatedAt,
	}
}

// ToCommissionBoardResponse converts the management dashboard.
func ToCommissionBoardResponse(board *portssvc.CommissionBoard) CommissionBoardResponse {
	res := CommissionBoardResponse{
		Meta:             ToListMeta(board.Spec),
		Count:            len(board.Rows),
		Rows:             make([]CommissionBoardRow, len(board.Rows)),
		PendingIncidents: board.PendingIncidents,
	}
	for i, row := range board.Rows {
		out := CommissionBoardRow{
			SaleID:         row.Sale.SaleID,
			Employee:       row.Sale.OwnerDisplayName(),
			Plate:          row.Sale.Plate,
			DealID:         row.Sale.DealID,
			SaleDate:       row.Sale.SaleDate.Format(period.DayLayout),
			SaleTypeLabel:  row.Sale.SaleType.Label(),
			BuyerTypeLabel: row.Sale.BuyerType.Label(),
		}
		if row.Commission != nil {
			c := ToCommissionResponse(*row.Commission)
			out.Commission = &c
		}
		res.Rows[i] = out
	}
	return res
}
