package domain

import "time"

// SaleType is the commercial channel of a sale.
type SaleType string

const (
	SaleTypeExempt     SaleType = "EXENTA"
	SaleTypeRenting    SaleType = "RENTING"
	SaleTypeParticular SaleType = "PARTICULAR"
)

func (t SaleType) Valid() bool   { return SaleTypeLabels.Has(string(t)) }
func (t SaleType) Label() string { return SaleTypeLabels.Label(string(t)) }

// BuyerType distinguishes fleet (company) buyers from private ones.
type BuyerType string

const (
	BuyerTypeCorporate  BuyerType = "CIF"
	BuyerTypeIndividual BuyerType = "NIF"
)

func (t BuyerType) Valid() bool   { return BuyerTypeLabels.Has(string(t)) }
func (t BuyerType) Label() string { return BuyerTypeLabels.Label(string(t)) }

// Sale records one vehicle transaction.
type Sale struct {
	SaleID        int64     `json:"saleID"`
	OwnerID       *string   `json:"ownerID,omitempty"` // nil for legacy or unassigned rows
	Plate         string    `json:"plate"`
	DealID        int64     `json:"dealID"` // external IDV
	SaleType      SaleType  `json:"saleType"`
	FinancedUnits *int      `json:"financedUnits,omitempty"`
	BuyerTaxID    string    `json:"buyerTaxID"`
	BuyerType     BuyerType `json:"buyerType"`
	BuyerName     string    `json:"buyerName"`
	SaleDate      time.Time `json:"saleDate"`
	CreatedAt     time.Time `json:"createdAt"`

	// Owner is populated by queries that join the owning person.
	Owner *Person `json:"-"`
}

// OwnerDisplayName is the owner's display name, or "Sin empleado" for
// unassigned sales.
func (s Sale) OwnerDisplayName() string {
	if s.Owner == nil {
		return "Sin empleado"
	}
	return s.Owner.DisplayName()
}
