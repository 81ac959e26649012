package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
)

// BulletinReader defines read operations for bulletin data
type BulletinReader interface {
	// ListActiveBulletins retrieves active bulletins matching spec together
	// with personID's read receipts.
	ListActiveBulletins(ctx context.Context, personID string, spec listquery.Spec) ([]domain.BulletinView, error)

	// FindBulletinByID retrieves a bulletin by its ID.
	FindBulletinByID(ctx context.Context, bulletinID int64) (*domain.Bulletin, error)
}

// BulletinWriter defines write operations for bulletin data
type BulletinWriter interface {
	// SaveBulletin inserts a bulletin and sets its generated ID.
	SaveBulletin(ctx context.Context, bulletin *domain.Bulletin) error

	// MarkRead records that personID read the bulletin. Repeated calls keep
	// the first read time.
	MarkRead(ctx context.Context, bulletinID int64, personID string, at time.Time) error

	// ConfirmRead marks the receipt as confirmed, creating it when missing.
	ConfirmRead(ctx context.Context, bulletinID int64, personID string, at time.Time) error
}

// BulletinRepositoryFacade combines all bulletin-related repository interfaces
type BulletinRepositoryFacade interface {
	BulletinReader
	BulletinWriter
}
