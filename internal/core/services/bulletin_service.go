package services

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
	"github.com/SscSPs/sales_commissions_app/internal/utils/period"
)

// bulletinPolicy leaves the month range open unless the reader sets it.
var bulletinPolicy = listquery.Policy{Period: listquery.PeriodMonths, Months: period.MonthUnbounded}

type bulletinService struct {
	BaseService
	bulletinRepo portsrepo.BulletinRepositoryFacade
}

// NewBulletinService creates a new bulletin service.
func NewBulletinService(bulletinRepo portsrepo.BulletinRepositoryFacade, options ...ServiceOption) portssvc.BulletinSvcFacade {
	return &bulletinService{
		BaseService:  newBaseService(options),
		bulletinRepo: bulletinRepo,
	}
}

var _ portssvc.BulletinSvcFacade = (*bulletinService)(nil)

func (s *bulletinService) ListBulletins(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.BulletinPage, error) {
	spec := listquery.Resolve(params, portsrepo.BulletinsCatalog, bulletinPolicy, s.Now())
	page := &portssvc.BulletinPage{Spec: spec, Bulletins: []domain.BulletinView{}}
	if spec.Empty {
		return page, nil
	}
	bulletins, err := s.bulletinRepo.ListActiveBulletins(ctx, actor.PersonID, spec)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bulletins", slog.String("person_id", actor.PersonID))
		return nil, err
	}
	page.Bulletins = bulletins
	return page, nil
}

func (s *bulletinService) activeBulletin(ctx context.Context, bulletinID int64) error {
	bulletin, err := s.bulletinRepo.FindBulletinByID(ctx, bulletinID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bulletin", slog.Int64("bulletin_id", bulletinID))
		}
		return err
	}
	if !bulletin.Active {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *bulletinService) MarkRead(ctx context.Context, actor domain.Actor, bulletinID int64) error {
	if err := s.activeBulletin(ctx, bulletinID); err != nil {
		return err
	}
	if err := s.bulletinRepo.MarkRead(ctx, bulletinID, actor.PersonID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to mark bulletin read", slog.Int64("bulletin_id", bulletinID))
		return err
	}
	return nil
}

func (s *bulletinService) ConfirmRead(ctx context.Context, actor domain.Actor, bulletinID int64) error {
	if err := s.activeBulletin(ctx, bulletinID); err != nil {
		return err
	}
	if err := s.bulletinRepo.ConfirmRead(ctx, bulletinID, actor.PersonID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to confirm bulletin read", slog.Int64("bulletin_id", bulletinID))
		return err
	}
	s.LogInfo(ctx, "Bulletin read confirmed", slog.Int64("bulletin_id", bulletinID), slog.String("person_id", actor.PersonID))
	return nil
}
