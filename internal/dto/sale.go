package dto

import (
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils"
	"github.com/SscSPs/sales_commissions_app/internal/utils/period"
	"github.com/shopspring/decimal"
)

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID         int64  `json:"saleID"`
	Plate          string `json:"plate"`
	DealID         int64  `json:"dealID"`
	SaleType       string `json:"saleType"`
	SaleTypeLabel  string `json:"saleTypeLabel"`
	FinancedUnits  *int   `json:"financedUnits"`
	BuyerTaxID     string `json:"buyerTaxID"`
	BuyerType      string `json:"buyerType"`
	BuyerTypeLabel string `json:"buyerTypeLabel"`
	BuyerName      string `json:"buyerName"`
	SaleDate       string `json:"saleDate"`
	Employee       string `json:"employee"`
}

// SalesListResponse is a person's filtered sales list.
type SalesListResponse struct {
	Meta  ListMeta       `json:"meta"`
	Count int            `json:"count"`
	Sales []SaleResponse `json:"sales"`
	// ApprovedTotal is formatted es-ES and empty when no commission of the
	// listed sales is approved.
	ApprovedTotal    string           `json:"approvedTotal"`
	ApprovedTotalRaw *decimal.Decimal `json:"approvedTotalRaw"`
}

// PlateOptionsResponse lists the plates an incident can be filed against.
type PlateOptionsResponse struct {
	Plates []string `json:"plates"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:         s.SaleID,
		Plate:          s.Plate,
		DealID:         s.DealID,
		SaleType:       string(s.SaleType),
		SaleTypeLabel:  s.SaleType.Label(),
		FinancedUnits:  s.FinancedUnits,
		BuyerTaxID:     s.BuyerTaxID,
		BuyerType:      string(s.BuyerType),
		BuyerTypeLabel: s.BuyerType.Label(),
		BuyerName:      s.BuyerName,
		SaleDate:       s.SaleDate.Format(period.DayLayout),
		Employee:       s.OwnerDisplayName(),
	}
}

// ToSalesListResponse converts a sales page.
func ToSalesListResponse(page *portssvc.SalesPage) SalesListResponse {
	res := SalesListResponse{
		Meta:  ToListMeta(page.Spec),
		Count: len(page.Sales),
		Sales: make([]SaleResponse, len(page.Sales)),
	}
	for i, s := range page.Sales {
		res.Sales[i] = ToSaleResponse(s)
	}
	if page.HasApproved {
		total := page.ApprovedTotal
		res.ApprovedTotal = utils.FormatAmountES(total)
		res.ApprovedTotalRaw = &total
	}
	return res
}
