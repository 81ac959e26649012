package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
)

// BulletinPage is the filtered bulletin list of a reader.
type BulletinPage struct {
	Spec      listquery.Spec
	Bulletins []domain.BulletinView
}

// BulletinSvcFacade defines bulletin operations
type BulletinSvcFacade interface {
	ListBulletins(ctx context.Context, actor domain.Actor, params url.Values) (*BulletinPage, error)
	MarkRead(ctx context.Context, actor domain.Actor, bulletinID int64) error
	ConfirmRead(ctx context.Context, actor domain.Actor, bulletinID int64) error
}
