package services_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type IncidentServiceTestSuite struct {
	suite.Suite
	incidents *MockIncidentRepository
	sales     *MockSaleRepository
	persons   *MockPersonRepository
	notifier  *MockNotifier
	svc       portssvc.IncidentSvcFacade
	ctx       context.Context
}

func (s *IncidentServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.incidents = new(MockIncidentRepository)
	s.sales = new(MockSaleRepository)
	s.persons = new(MockPersonRepository)
	s.notifier = new(MockNotifier)
	s.svc = services.NewIncidentService(s.incidents, s.sales, s.persons, s.notifier, services.WithClock(fixedClock))
}

func (s *IncidentServiceTestSuite) TestRegister_LinksEverySaleOfThePlate() {
	s.sales.On("FindSalesByOwnerAndPlate", mock.Anything, "seller", "1234ABC").Return([]domain.Sale{
		{SaleID: 1, Plate: "1234ABC"},
		{SaleID: 6, Plate: "1234ABC"},
	}, nil).Once()
	s.incidents.On("SaveIncident", mock.Anything, mock.MatchedBy(func(i *domain.Incident) bool {
		return len(i.Sales) == 2 && !i.IsGeneral && i.Status == domain.IncidentPendingReview && !i.ValidationOK
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Incident).IncidentID = 31
	}).Return(nil).Once()
	reporter := &domain.Person{PersonID: "seller", FirstName: "Víctor"}
	s.persons.On("FindPersonByID", mock.Anything, "seller").Return(reporter, nil).Once()
	s.notifier.On("NotifyIncident", mock.Anything, mock.MatchedBy(func(i domain.Incident) bool { return i.IncidentID == 31 }), *reporter).Return(nil).Once()

	incident, err := s.svc.RegisterIncident(s.ctx, salesActor, portssvc.NewIncident{
		Date:   "2026-03-14",
		Plate:  " 1234ABC ",
		Type:   "Documentación",
		Detail: "Falta la ficha técnica.",
	})

	s.Require().NoError(err)
	s.Equal(int64(31), incident.IncidentID)
	s.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), incident.IncidentDate.UTC())
	s.Equal(fixedNow, incident.CreatedAt)
	s.incidents.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func (s *IncidentServiceTestSuite) TestRegister_General() {
	s.incidents.On("SaveIncident", mock.Anything, mock.MatchedBy(func(i *domain.Incident) bool {
		return i.IsGeneral && len(i.Sales) == 0
	})).Return(nil).Once()
	s.persons.On("FindPersonByID", mock.Anything, "seller").Return(&domain.Person{PersonID: "seller"}, nil)
	s.notifier.On("NotifyIncident", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	incident, err := s.svc.RegisterIncident(s.ctx, salesActor, portssvc.NewIncident{
		Date: "2026-03-15", Plate: "general", Type: "Sistema", Detail: "No carga.",
	})

	// A failed notification never undoes the registration.
	s.Require().NoError(err)
	s.Equal(domain.GeneralPlate, incident.PlateDisplay())
	s.sales.AssertNotCalled(s.T(), "FindSalesByOwnerAndPlate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *IncidentServiceTestSuite) TestRegister_ReportsEveryProblem() {
	s.sales.On("FindSalesByOwnerAndPlate", mock.Anything, "seller", "0000ZZZ").Return([]domain.Sale{}, nil).Once()

	_, err := s.svc.RegisterIncident(s.ctx, salesActor, portssvc.NewIncident{Date: "2026-03-16", Plate: "0000ZZZ"})

	var verr *apperrors.ValidationErrors
	s.Require().True(errors.As(err, &verr))
	s.Equal([]string{
		"La fecha de incidencia no puede estar en el futuro.",
		"Debes seleccionar una matrícula de tus ventas.",
		"El tipo de incidencia es obligatorio.",
		"El detalle de incidencia es obligatorio.",
	}, verr.Messages)
	s.incidents.AssertNotCalled(s.T(), "SaveIncident", mock.Anything, mock.Anything)
}

func (s *IncidentServiceTestSuite) TestRegister_MalformedDateAndNoPlate() {
	_, err := s.svc.RegisterIncident(s.ctx, salesActor, portssvc.NewIncident{Date: "14/03/2026", Type: "x", Detail: "y"})

	var verr *apperrors.ValidationErrors
	s.Require().True(errors.As(err, &verr))
	s.Len(verr.Messages, 2)
	s.sales.AssertNotCalled(s.T(), "FindSalesByOwnerAndPlate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *IncidentServiceTestSuite) TestGetMyIncident_Navigation() {
	mine := "seller"
	s.incidents.On("FindIncidentByID", mock.Anything, int64(20)).Return(&domain.Incident{IncidentID: 20, ReporterID: &mine}, nil).Once()
	s.incidents.On("ListIncidents", mock.Anything, mock.MatchedBy(func(q portsrepo.IncidentQuery) bool {
		return q.ReporterID != nil && *q.ReporterID == "seller" && q.Spec.Sort.Field == "tipo"
	})).Return([]domain.Incident{{IncidentID: 10}, {IncidentID: 20}, {IncidentID: 30}}, nil).Once()

	detail, err := s.svc.GetMyIncident(s.ctx, salesActor, 20, url.Values{"orden": {"tipo"}})

	s.Require().NoError(err)
	s.Equal(2, detail.Position)
	s.Equal(3, detail.Total)
	s.Require().NotNil(detail.PreviousID)
	s.Require().NotNil(detail.NextID)
	s.Equal(int64(10), *detail.PreviousID)
	s.Equal(int64(30), *detail.NextID)
}

func (s *IncidentServiceTestSuite) TestGetMyIncident_OtherReporterIsNotFound() {
	other := "someone"
	s.incidents.On("FindIncidentByID", mock.Anything, int64(20)).Return(&domain.Incident{IncidentID: 20, ReporterID: &other}, nil).Once()

	_, err := s.svc.GetMyIncident(s.ctx, salesActor, 20, url.Values{})

	s.True(errors.Is(err, apperrors.ErrNotFound))
	s.incidents.AssertNotCalled(s.T(), "ListIncidents", mock.Anything, mock.Anything)
}

func (s *IncidentServiceTestSuite) TestBoardAndReview() {
	_, err := s.svc.ListIncidentBoard(s.ctx, salesActor, url.Values{})
	s.True(errors.Is(err, apperrors.ErrForbidden))

	s.incidents.On("CountIncidentsByStatus", mock.Anything, domain.IncidentPendingReview).Return(4, nil).Once()
	s.incidents.On("ListIncidents", mock.Anything, mock.MatchedBy(func(q portsrepo.IncidentQuery) bool {
		return q.ReporterID == nil
	})).Return([]domain.Incident{{IncidentID: 1}}, nil).Once()
	page, err := s.svc.ListIncidentBoard(s.ctx, manager, url.Values{})
	s.Require().NoError(err)
	s.Equal(4, page.PendingIncidents)
	s.Len(page.Incidents, 1)

	_, err = s.svc.ReviewIncident(s.ctx, manager, 1, "cerrada", true)
	s.True(errors.Is(err, apperrors.ErrValidation))

	s.incidents.On("UpdateIncidentReview", mock.Anything, int64(1), domain.IncidentAccepted, true).Return(nil).Once()
	s.incidents.On("FindIncidentByID", mock.Anything, int64(1)).Return(&domain.Incident{IncidentID: 1, Status: domain.IncidentAccepted, ValidationOK: true}, nil).Once()
	reviewed, err := s.svc.ReviewIncident(s.ctx, manager, 1, domain.IncidentAccepted, true)
	s.Require().NoError(err)
	s.True(reviewed.ValidationOK)
	s.incidents.AssertExpectations(s.T())
}

func TestIncidentService(t *testing.T) {
	suite.Run(t, new(IncidentServiceTestSuite))
}
