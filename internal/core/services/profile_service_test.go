package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	store   *profileStore
	persons *MockPersonRepository
	svc     portssvc.ProfileSvcFacade
	ctx     context.Context
}

// SetupTest stores the chain Director <- Gerente <- Jefe.
func (s *ProfileServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newProfileStore(
		domain.Profile{PersonID: "director"},
		domain.Profile{PersonID: "gerente", DirectorID: ref("director")},
		domain.Profile{PersonID: "jefe", ManagerID: ref("gerente"), DirectorID: ref("director")},
	)
	s.persons = new(MockPersonRepository)
	s.svc = services.NewProfileService(s.store, s.persons, services.WithClock(fixedClock))
}

func (s *ProfileServiceTestSuite) TestSave_FullChain() {
	saved, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{PersonID: "vendedor", SupervisorID: ref("jefe")})

	s.Require().NoError(err)
	s.Equal(ref("gerente"), saved.ManagerID)
	s.Equal(ref("director"), saved.DirectorID)
	s.Equal(fixedNow, saved.CreatedAt)
	s.Equal("admin", saved.CreatedBy)
	s.Equal(*saved, s.store.get("vendedor"))
}

func (s *ProfileServiceTestSuite) TestSave_CallerLinksBelowTopAreIgnored() {
	saved, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{
		PersonID:     "vendedor",
		SupervisorID: ref("jefe"),
		ManagerID:    ref("someone-else"),
		DirectorID:   ref("someone-else"),
	})

	s.Require().NoError(err)
	s.Equal(ref("gerente"), saved.ManagerID)
	s.Equal(ref("director"), saved.DirectorID)
}

func (s *ProfileServiceTestSuite) TestSave_SupervisorWithoutManagerClearsChain() {
	s.Require().NoError(s.store.UpsertProfile(s.ctx, domain.Profile{PersonID: "jefe-suelto"}))

	saved, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{
		PersonID:     "vendedor",
		SupervisorID: ref("jefe-suelto"),
		DirectorID:   ref("director"),
	})

	s.Require().NoError(err)
	s.Nil(saved.ManagerID)
	s.Nil(saved.DirectorID)
}

func (s *ProfileServiceTestSuite) TestSave_SupervisorWithoutProfile() {
	saved, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{PersonID: "vendedor", SupervisorID: ref("fantasma")})

	s.Require().NoError(err)
	s.Equal(ref("fantasma"), saved.SupervisorID)
	s.Nil(saved.ManagerID)
	s.Nil(saved.DirectorID)
}

func (s *ProfileServiceTestSuite) TestSave_ManagerWithoutDirector() {
	s.Require().NoError(s.store.UpsertProfile(s.ctx, domain.Profile{PersonID: "gerente"}))

	saved, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{PersonID: "vendedor", SupervisorID: ref("jefe")})

	s.Require().NoError(err)
	s.Equal(ref("gerente"), saved.ManagerID)
	s.Nil(saved.DirectorID)
}

func (s *ProfileServiceTestSuite) TestSave_ManagerOnlyDerivesDirector() {
	saved, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{
		PersonID:   "jefe2",
		ManagerID:  ref("gerente"),
		DirectorID: ref("ignored"),
	})

	s.Require().NoError(err)
	s.Equal(ref("gerente"), saved.ManagerID)
	s.Equal(ref("director"), saved.DirectorID)
}

func (s *ProfileServiceTestSuite) TestSave_TopOfChainKeepsGivenLinks() {
	saved, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{PersonID: "gerente2", DirectorID: ref("director")})

	s.Require().NoError(err)
	s.Nil(saved.ManagerID)
	s.Equal(ref("director"), saved.DirectorID)
}

func (s *ProfileServiceTestSuite) TestSave_Idempotent() {
	first, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{PersonID: "vendedor", SupervisorID: ref("jefe")})
	s.Require().NoError(err)

	second, err := s.svc.SaveProfile(s.ctx, admin, *first)

	s.Require().NoError(err)
	s.Equal(first.ManagerID, second.ManagerID)
	s.Equal(first.DirectorID, second.DirectorID)
	s.Equal(first.CreatedAt, second.CreatedAt)
}

func (s *ProfileServiceTestSuite) TestSubordinatesStayStaleUntilRecomputed() {
	_, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{PersonID: "vendedor", SupervisorID: ref("jefe")})
	s.Require().NoError(err)

	// The manager moves to another director; nothing below is touched.
	_, err = s.svc.SaveProfile(s.ctx, admin, domain.Profile{PersonID: "gerente", DirectorID: ref("director2")})
	s.Require().NoError(err)
	s.Equal(ref("director"), s.store.get("jefe").DirectorID)
	s.Equal(ref("director"), s.store.get("vendedor").DirectorID)

	recomputed, err := s.svc.RecomputeSubordinates(s.ctx, admin, "gerente")
	s.Require().NoError(err)
	s.Require().Len(recomputed, 1)
	s.Equal("jefe", recomputed[0].PersonID)
	s.Equal(ref("director2"), s.store.get("jefe").DirectorID)

	// One level per call.
	s.Equal(ref("director"), s.store.get("vendedor").DirectorID)
	_, err = s.svc.RecomputeSubordinates(s.ctx, admin, "jefe")
	s.Require().NoError(err)
	s.Equal(ref("director2"), s.store.get("vendedor").DirectorID)
}

func (s *ProfileServiceTestSuite) TestRecompute_RequiresAdmin() {
	_, err := s.svc.RecomputeSubordinates(s.ctx, manager, "gerente")
	s.True(errors.Is(err, apperrors.ErrForbidden))
}

func (s *ProfileServiceTestSuite) TestAssignHierarchy() {
	s.persons.On("FindPersonByID", mock.Anything, "vendedor").Return(&domain.Person{PersonID: "vendedor", Roles: []domain.Role{domain.RoleSalesperson}}, nil)
	s.persons.On("FindPersonByID", mock.Anything, "jefe").Return(&domain.Person{PersonID: "jefe", Roles: []domain.Role{domain.RoleSalesManager}}, nil)

	saved, err := s.svc.AssignHierarchy(s.ctx, admin, "vendedor", portssvc.HierarchyAssignment{
		SupervisorID: ref("jefe"),
		NationalID:   ref(" 12345678z "),
	})

	s.Require().NoError(err)
	s.Equal(ref("gerente"), saved.ManagerID)
	s.Equal(ref("director"), saved.DirectorID)
	s.Equal("12345678Z", saved.NationalID)
	s.Equal(domain.AreaSales, saved.Area)
}

func (s *ProfileServiceTestSuite) TestAssignHierarchy_ValidatesReferences() {
	s.persons.On("FindPersonByID", mock.Anything, "vendedor").Return(&domain.Person{PersonID: "vendedor", Roles: []domain.Role{domain.RoleSalesperson}}, nil)
	s.persons.On("FindPersonByID", mock.Anything, "otro").Return(&domain.Person{PersonID: "otro", Roles: []domain.Role{domain.RoleSalesperson}}, nil)
	s.persons.On("FindPersonByID", mock.Anything, "nadie").Return(nil, apperrors.ErrNotFound)

	_, err := s.svc.AssignHierarchy(s.ctx, admin, "vendedor", portssvc.HierarchyAssignment{
		SupervisorID: ref("otro"),
		ManagerID:    ref("nadie"),
		DirectorID:   ref("vendedor"),
		Area:         ref("taller"),
	})

	var verr *apperrors.ValidationErrors
	s.Require().True(errors.As(err, &verr))
	s.Len(verr.Messages, 4)
	s.Equal(3, len(s.store.profiles))
}

func (s *ProfileServiceTestSuite) TestAssignHierarchy_RequiresAdmin() {
	_, err := s.svc.AssignHierarchy(s.ctx, salesActor, "vendedor", portssvc.HierarchyAssignment{})
	s.True(errors.Is(err, apperrors.ErrForbidden))
	s.persons.AssertNotCalled(s.T(), "FindPersonByID", mock.Anything, mock.Anything)
}

func (s *ProfileServiceTestSuite) TestGetMyProfile_CreatesAndMarksSeen() {
	actor := domain.Actor{PersonID: "nuevo", Roles: []domain.Role{domain.RoleSalesperson}}
	s.persons.On("FindPersonByID", mock.Anything, "nuevo").Return(&domain.Person{PersonID: "nuevo", Username: "nuevo"}, nil)

	view, err := s.svc.GetMyProfile(s.ctx, actor)

	s.Require().NoError(err)
	s.True(view.Profile.InitialProfileSeen)
	s.True(s.store.get("nuevo").InitialProfileSeen)
	s.Nil(view.Supervisor)
	s.persons.AssertNotCalled(s.T(), "FindPersonsByIDs", mock.Anything, mock.Anything)
}

func (s *ProfileServiceTestSuite) TestGetMyProfile_LoadsHierarchyPeople() {
	_, err := s.svc.SaveProfile(s.ctx, admin, domain.Profile{PersonID: "vendedor", SupervisorID: ref("jefe")})
	s.Require().NoError(err)
	s.persons.On("FindPersonByID", mock.Anything, "vendedor").Return(&domain.Person{PersonID: "vendedor"}, nil)
	s.persons.On("FindPersonsByIDs", mock.Anything, []string{"jefe", "gerente", "director"}).Return([]domain.Person{
		{PersonID: "jefe", FirstName: "Julia"},
		{PersonID: "gerente", FirstName: "Gonzalo"},
		{PersonID: "director", FirstName: "Dolores"},
	}, nil)

	view, err := s.svc.GetMyProfile(s.ctx, salesActorFor("vendedor"))

	s.Require().NoError(err)
	s.Require().NotNil(view.Supervisor)
	s.Equal("Julia", view.Supervisor.FirstName)
	s.Equal("Gonzalo", view.Manager.FirstName)
	s.Equal("Dolores", view.Director.FirstName)
}

func (s *ProfileServiceTestSuite) TestUpdateMyContact_Validation() {
	_, err := s.svc.UpdateMyContact(s.ctx, salesActor, portssvc.ContactUpdate{Email: "no-es-email", Phone: "abc"})

	var verr *apperrors.ValidationErrors
	s.Require().True(errors.As(err, &verr))
	s.Len(verr.Messages, 2)
	s.persons.AssertNotCalled(s.T(), "UpdateContact", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProfileServiceTestSuite) TestUpdateMyContact() {
	s.persons.On("UpdateContact", mock.Anything, "seller", "v@concesionario.es", fixedNow).Return(nil).Once()
	s.persons.On("FindPersonByID", mock.Anything, "seller").Return(&domain.Person{PersonID: "seller", Email: "v@concesionario.es"}, nil)

	view, err := s.svc.UpdateMyContact(s.ctx, salesActor, portssvc.ContactUpdate{Email: " v@concesionario.es ", Phone: "+34 600 000 000"})

	s.Require().NoError(err)
	s.Equal("+34 600 000 000", view.Profile.Phone)
	s.persons.AssertExpectations(s.T())
}

func salesActorFor(personID string) domain.Actor {
	return domain.Actor{PersonID: personID, Roles: []domain.Role{domain.RoleSalesperson}}
}

func TestProfileService(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
