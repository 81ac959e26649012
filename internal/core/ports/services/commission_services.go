package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
)

// CommissionRow is one sale of the management dashboard with its active
// commission, if any.
type CommissionRow struct {
	Sale       domain.Sale
	Commission *domain.Commission
}

// CommissionBoard is the management commissions dashboard.
type CommissionBoard struct {
	Spec             listquery.Spec
	Rows             []CommissionRow
	PendingIncidents int
}

// CommissionSvcFacade defines management operations on commissions
type CommissionSvcFacade interface {
	// ListCommissionBoard lists every sale in range with its commission.
	ListCommissionBoard(ctx context.Context, actor domain.Actor, params url.Values) (*CommissionBoard, error)

	// ReviewCommission sets the status of a commission.
	ReviewCommission(ctx context.Context, actor domain.Actor, commissionID int64, status domain.CommissionStatus) (*domain.Commission, error)
}
