package domain

import "sort"

// LabelTable maps the stored code of an enumerated field to its display label.
// Views share these tables instead of carrying their own lookups.
type LabelTable map[string]string

// Label returns the label of code, or code itself when it is unknown.
func (t LabelTable) Label(code string) string {
	if label, ok := t[code]; ok {
		return label
	}
	return code
}

// Has reports whether code is a known value.
func (t LabelTable) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Codes returns the known codes in lexical order.
func (t LabelTable) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

var (
	SaleTypeLabels = LabelTable{
		string(SaleTypeExempt):     "Venta Detall Exenta",
		string(SaleTypeRenting):    "Venta Renting",
		string(SaleTypeParticular): "Venta Detall Particular",
	}

	BuyerTypeLabels = LabelTable{
		string(BuyerTypeCorporate):  "CIF (Flotas)",
		string(BuyerTypeIndividual): "NIF (Particular)",
	}

	CommissionStatusLabels = LabelTable{
		string(CommissionPending):  "Pendiente",
		string(CommissionApproved): "Aprobada",
		string(CommissionRejected): "Rechazada",
	}

	IncidentStatusLabels = LabelTable{
		string(IncidentPendingReview): "Pte. revision",
		string(IncidentAccepted):      "Aceptada",
		string(IncidentRejected):      "Rechazada",
	}

	RoleLabels = LabelTable{
		string(RoleSalesperson):        "Vendedor",
		string(RoleSalesManager):       "Jefe de ventas",
		string(RoleGeneralManager):     "Gerente",
		string(RoleCommercialDirector): "Director Comercial",
		string(RoleAdmin):              "Administrador",
	}
)
