package services_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/core/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBulletinService_ListIsOpenByDefault(t *testing.T) {
	repo := new(MockBulletinRepository)
	svc := services.NewBulletinService(repo, services.WithClock(fixedClock))

	repo.On("ListActiveBulletins", mock.Anything, "seller", mock.MatchedBy(func(spec listquery.Spec) bool {
		return !spec.Period.HasFrom() && !spec.Period.HasTo()
	})).Return([]domain.BulletinView{{Bulletin: domain.Bulletin{BulletinID: 1, Active: true}}}, nil).Once()

	page, err := svc.ListBulletins(context.Background(), salesActor, url.Values{})

	require.NoError(t, err)
	assert.Len(t, page.Bulletins, 1)
	repo.AssertExpectations(t)
}

func TestBulletinService_ReadReceipts(t *testing.T) {
	repo := new(MockBulletinRepository)
	svc := services.NewBulletinService(repo, services.WithClock(fixedClock))

	repo.On("FindBulletinByID", mock.Anything, int64(1)).Return(&domain.Bulletin{BulletinID: 1, Active: true}, nil)
	repo.On("FindBulletinByID", mock.Anything, int64(2)).Return(&domain.Bulletin{BulletinID: 2, Active: false}, nil)
	repo.On("FindBulletinByID", mock.Anything, int64(3)).Return(nil, apperrors.ErrNotFound)
	repo.On("MarkRead", mock.Anything, int64(1), "seller", fixedNow).Return(nil).Once()
	repo.On("ConfirmRead", mock.Anything, int64(1), "seller", fixedNow).Return(nil).Once()

	require.NoError(t, svc.MarkRead(context.Background(), salesActor, 1))
	require.NoError(t, svc.ConfirmRead(context.Background(), salesActor, 1))
	assert.True(t, errors.Is(svc.MarkRead(context.Background(), salesActor, 2), apperrors.ErrNotFound))
	assert.True(t, errors.Is(svc.ConfirmRead(context.Background(), salesActor, 3), apperrors.ErrNotFound))
	repo.AssertExpectations(t)
}
