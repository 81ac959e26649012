package domain_test

import (
	"testing"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIncident_PlateDisplay(t *testing.T) {
	tests := []struct {
		name     string
		incident domain.Incident
		want     string
	}{
		{
			name:     "general flag wins over linked sales",
			incident: domain.Incident{IsGeneral: true, Sales: []domain.SaleRef{{SaleID: 1, Plate: "1234ABC"}}},
			want:     "GENERAL",
		},
		{
			name:     "no linked sales",
			incident: domain.Incident{},
			want:     "GENERAL",
		},
		{
			name: "several linked sales",
			incident: domain.Incident{Sales: []domain.SaleRef{
				{SaleID: 1, Plate: "1234ABC"},
				{SaleID: 2, Plate: "5678DEF"},
			}},
			want: "1234ABC, 5678DEF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.incident.PlateDisplay())
		})
	}
}

func TestLabelTables(t *testing.T) {
	assert.Equal(t, "Venta Renting", domain.SaleTypeRenting.Label())
	assert.Equal(t, "CIF (Flotas)", domain.BuyerTypeCorporate.Label())
	assert.Equal(t, "Pte. revision", domain.IncidentPendingReview.Label())
	assert.Equal(t, "Jefe de ventas", domain.RoleSalesManager.Label())
	assert.Equal(t, "UNKNOWN", domain.SaleType("UNKNOWN").Label(), "unknown codes fall back to the code")
	assert.Equal(t, []string{"CIF", "NIF"}, domain.BuyerTypeLabels.Codes())
	assert.False(t, domain.CommissionStatus("paid").Valid())
}

func TestActor_Landing(t *testing.T) {
	tests := []struct {
		name  string
		roles []domain.Role
		want  domain.Landing
	}{
		{"salesperson", []domain.Role{domain.RoleSalesperson}, domain.LandingSales},
		{"sales manager", []domain.Role{domain.RoleSalesManager}, domain.LandingSales},
		{"general manager", []domain.Role{domain.RoleGeneralManager}, domain.LandingManagementCommissions},
		{"admin", []domain.Role{domain.RoleAdmin}, domain.LandingManagementCommissions},
		{"sales team wins", []domain.Role{domain.RoleCommercialDirector, domain.RoleSalesManager}, domain.LandingSales},
		{"no roles", nil, domain.LandingProfile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Actor{PersonID: "p", Roles: tt.roles}.Landing())
		})
	}
}

func TestSumApproved(t *testing.T) {
	commissions := []domain.Commission{
		{Amount: decimal.RequireFromString("100.10"), Status: domain.CommissionApproved},
		{Amount: decimal.RequireFromString("0.20"), Status: domain.CommissionApproved},
		{Amount: decimal.RequireFromString("999"), Status: domain.CommissionPending},
	}
	total, ok := domain.SumApproved(commissions)
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("100.30").Equal(total))

	_, ok = domain.SumApproved(commissions[2:])
	assert.False(t, ok)
}

func TestPerson_DisplayName(t *testing.T) {
	assert.Equal(t, "Valeria Ventas", domain.Person{Username: "v1", FirstName: "Valeria", LastName: "Ventas"}.DisplayName())
	assert.Equal(t, "v1", domain.Person{Username: "v1"}.DisplayName())
	assert.Equal(t, "Sin empleado", domain.Sale{}.OwnerDisplayName())
}
