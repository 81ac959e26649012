package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSalesListResponse_ApprovedTotal(t *testing.T) {
	page := &portssvc.SalesPage{
		Sales: []domain.Sale{{SaleID: 1, Plate: "1234ABC", SaleDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}},
	}
	res := ToSalesListResponse(page)
	assert.Equal(t, "", res.ApprovedTotal, "no approved commission renders empty")
	assert.Nil(t, res.ApprovedTotalRaw)
	assert.Equal(t, "Sin empleado", res.Sales[0].Employee)

	page.ApprovedTotal = decimal.RequireFromString("1325")
	page.HasApproved = true
	res = ToSalesListResponse(page)
	assert.Equal(t, "1.325,00", res.ApprovedTotal)
	require.NotNil(t, res.ApprovedTotalRaw)
	assert.True(t, decimal.RequireFromString("1325").Equal(*res.ApprovedTotalRaw))
}

func TestToCommissionBoardResponse(t *testing.T) {
	board := &portssvc.CommissionBoard{
		Rows: []portssvc.CommissionRow{
			{
				Sale: domain.Sale{SaleID: 1, Plate: "1234ABC", SaleType: domain.SaleTypeRenting, BuyerType: domain.BuyerTypeCorporate,
					Owner: &domain.Person{Username: "v1", FirstName: "Valeria", LastName: "Ventas"}},
				Commission: &domain.Commission{
					CommissionID: 9,
					Amount:       decimal.RequireFromString("250.5"),
					Revenue:      decimal.NewNullDecimal(decimal.RequireFromString("18000")),
					Status:       domain.CommissionApproved,
				},
			},
			{Sale: domain.Sale{SaleID: 2, Plate: "5678DEF"}},
		},
		PendingIncidents: 3,
	}

	res := ToCommissionBoardResponse(board)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, 3, res.PendingIncidents)
	assert.Equal(t, "Valeria Ventas", res.Rows[0].Employee)
	assert.Equal(t, "Venta Renting", res.Rows[0].SaleTypeLabel)
	require.NotNil(t, res.Rows[0].Commission)
	assert.Equal(t, "250,50", res.Rows[0].Commission.Amount)
	assert.Equal(t, "18.000,00", res.Rows[0].Commission.Revenue)
	assert.Equal(t, "-", res.Rows[0].Commission.Cost)
	assert.Equal(t, "Aprobada", res.Rows[0].Commission.StatusLabel)
	assert.Nil(t, res.Rows[1].Commission)
}

func TestToBulletinResponse(t *testing.T) {
	readAt := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	unread := ToBulletinResponse(domain.BulletinView{Bulletin: domain.Bulletin{BulletinID: 1}})
	assert.False(t, unread.Read)
	assert.Nil(t, unread.ReadAt)

	read := ToBulletinResponse(domain.BulletinView{
		Bulletin: domain.Bulletin{BulletinID: 2},
		Read:     &domain.BulletinRead{ReadAt: readAt, Confirmed: true},
	})
	assert.True(t, read.Read)
	assert.True(t, read.Confirmed)
	assert.Equal(t, readAt, *read.ReadAt)
}
