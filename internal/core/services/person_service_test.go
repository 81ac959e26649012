package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/core/services"
	"github.com/SscSPs/sales_commissions_app/internal/platform/config"
	"github.com/SscSPs/sales_commissions_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PersonServiceTestSuite struct {
	suite.Suite
	persons  *MockPersonRepository
	profiles *profileStore
	svc      portssvc.PersonSvcFacade
	tokens   portssvc.TokenSvcFacade
	cfg      *config.Config
	ctx      context.Context
}

func (s *PersonServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.persons = new(MockPersonRepository)
	s.profiles = newProfileStore()
	s.cfg = &config.Config{JWTSecret: "person-test-secret", JWTExpiryDuration: 8 * time.Hour, JWTIssuer: "test"}
	profileSvc := services.NewProfileService(s.profiles, s.persons, services.WithClock(fixedClock))
	s.svc = services.NewPersonService(s.persons, profileSvc, services.WithClock(fixedClock))
	s.tokens = services.NewTokenService(s.cfg, s.svc, services.WithClock(fixedClock))
}

func (s *PersonServiceTestSuite) storedPerson(password string, roles ...domain.Role) *domain.Person {
	hash, err := utils.HashPassword(password)
	s.Require().NoError(err)
	return &domain.Person{PersonID: "p-1", Username: "vgomez", FirstName: "Víctor", PasswordHash: hash, Roles: roles, IsActive: true}
}

func (s *PersonServiceTestSuite) TestCreatePerson() {
	s.persons.On("SavePerson", mock.Anything, mock.MatchedBy(func(p domain.Person) bool {
		return p.Username == "vgomez" && p.PasswordHash != "Clave#Segura1" && p.IsActive && p.CreatedBy == "admin"
	})).Return(nil).Once()

	person, err := s.svc.CreatePerson(s.ctx, admin, portssvc.NewPerson{
		Username:   " vgomez ",
		Password:   "Clave#Segura1",
		Roles:      []domain.Role{domain.RoleSalesperson},
		NationalID: "44444444a",
		Site:       "Madrid",
		Area:       domain.AreaSales,
	})

	s.Require().NoError(err)
	s.NotEmpty(person.PersonID)
	s.True(utils.CheckPasswordHash("Clave#Segura1", person.PasswordHash))
	profile := s.profiles.get(person.PersonID)
	s.Equal("44444444A", profile.NationalID)
	s.Equal("Madrid", profile.Site)
	s.persons.AssertExpectations(s.T())
}

func (s *PersonServiceTestSuite) TestCreatePerson_CollectsAllProblems() {
	_, err := s.svc.CreatePerson(s.ctx, admin, portssvc.NewPerson{
		Username: "12345",
		Password: "12345",
		Roles:    []domain.Role{"JEFAZO"},
	})

	var verr *apperrors.ValidationErrors
	s.Require().True(errors.As(err, &verr))
	// too short, contains the username, all digits, unknown role
	s.Len(verr.Messages, 4)
	s.persons.AssertNotCalled(s.T(), "SavePerson", mock.Anything, mock.Anything)
}

func (s *PersonServiceTestSuite) TestCreatePerson_ProfileWithoutAreaStaysInSales() {
	s.persons.On("SavePerson", mock.Anything, mock.Anything).Return(nil).Once()

	person, err := s.svc.CreatePerson(s.ctx, admin, portssvc.NewPerson{
		Username:   "lruiz",
		Password:   "Clave#Segura1",
		NationalID: "44444444a",
	})

	s.Require().NoError(err)
	profile := s.profiles.get(person.PersonID)
	s.Equal("44444444A", profile.NationalID)
	s.Equal(domain.AreaSales, profile.Area)
}

func (s *PersonServiceTestSuite) TestCreatePerson_UnknownAreaSavesNothing() {
	_, err := s.svc.CreatePerson(s.ctx, admin, portssvc.NewPerson{
		Username: "lruiz",
		Password: "Clave#Segura1",
		Area:     "taller",
	})

	var verr *apperrors.ValidationErrors
	s.Require().True(errors.As(err, &verr))
	s.Equal([]string{"El area debe ser ventas o postventa."}, verr.Messages)
	s.persons.AssertNotCalled(s.T(), "SavePerson", mock.Anything, mock.Anything)
	s.Zero(s.profiles.upserts)
}

func (s *PersonServiceTestSuite) TestCreatePerson_RequiresAdmin() {
	_, err := s.svc.CreatePerson(s.ctx, manager, portssvc.NewPerson{Username: "x", Password: "Clave#Segura1"})
	s.True(errors.Is(err, apperrors.ErrForbidden))
}

func (s *PersonServiceTestSuite) TestCreatePerson_Duplicate() {
	s.persons.On("SavePerson", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := s.svc.CreatePerson(s.ctx, admin, portssvc.NewPerson{Username: "vgomez", Password: "Clave#Segura1"})

	s.True(errors.Is(err, apperrors.ErrDuplicate))
}

func (s *PersonServiceTestSuite) TestActorFor_InactiveIsUnauthorized() {
	s.persons.On("FindPersonByID", mock.Anything, "gone").Return(nil, apperrors.ErrNotFound)

	_, err := s.svc.ActorFor(s.ctx, "gone")

	s.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (s *PersonServiceTestSuite) TestChangePassword() {
	stored := s.storedPerson("Antigua#2025", domain.RoleSalesperson)
	s.persons.On("FindPersonByID", mock.Anything, "p-1").Return(stored, nil)
	s.persons.On("UpdatePassword", mock.Anything, "p-1", mock.AnythingOfType("string"), fixedNow).Return(nil).Once()

	actor := domain.ActorFor(*stored)
	err := s.svc.ChangePassword(s.ctx, actor, "incorrecta", "Nueva#2026")
	var verr *apperrors.ValidationErrors
	s.Require().True(errors.As(err, &verr))
	s.Equal([]string{"La contraseña actual no es correcta."}, verr.Messages)

	s.Require().NoError(s.svc.ChangePassword(s.ctx, actor, "Antigua#2025", "Nueva#2026"))
	s.persons.AssertExpectations(s.T())
}

func (s *PersonServiceTestSuite) TestLogin() {
	stored := s.storedPerson("Clave#Segura1", domain.RoleSalesperson, domain.RoleSalesManager)
	s.persons.On("FindPersonByCredential", mock.Anything, "44444444A").Return(stored, nil).Once()
	s.persons.On("TouchLastLogin", mock.Anything, "p-1", fixedNow).Return(nil).Once()

	result, err := s.tokens.Login(s.ctx, " 44444444A ", "Clave#Segura1")

	s.Require().NoError(err)
	s.Equal(domain.LandingSales, result.Landing)
	s.Equal(fixedNow.Add(8*time.Hour), result.ExpiresAt)
	s.Require().NotNil(result.Person.LastLoginAt)
	s.Equal(fixedNow, *result.Person.LastLoginAt)
	s.persons.AssertExpectations(s.T())
}

func (s *PersonServiceTestSuite) TestLogin_Rejections() {
	stored := s.storedPerson("Clave#Segura1", domain.RoleSalesperson)
	s.persons.On("FindPersonByCredential", mock.Anything, "vgomez").Return(stored, nil)
	s.persons.On("FindPersonByCredential", mock.Anything, "nadie").Return(nil, apperrors.ErrNotFound)

	for _, tc := range []struct{ credential, password string }{
		{"vgomez", "mala"},
		{"nadie", "Clave#Segura1"},
		{"", "Clave#Segura1"},
		{"vgomez", ""},
	} {
		_, err := s.tokens.Login(s.ctx, tc.credential, tc.password)
		s.True(errors.Is(err, apperrors.ErrUnauthorized), "credential %q", tc.credential)
	}
	s.persons.AssertNotCalled(s.T(), "TouchLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func TestPersonService(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}

func TestLanding(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s", JWTExpiryDuration: time.Hour}
	for _, tc := range []struct {
		roles []domain.Role
		want  domain.Landing
	}{
		{[]domain.Role{domain.RoleGeneralManager}, domain.LandingManagementCommissions},
		{[]domain.Role{domain.RoleAdmin, domain.RoleSalesperson}, domain.LandingSales},
		{nil, domain.LandingProfile},
	} {
		persons := new(MockPersonRepository)
		hash, err := utils.HashPassword("Clave#Segura1")
		require.NoError(t, err)
		persons.On("FindPersonByCredential", mock.Anything, "u").Return(&domain.Person{PersonID: "u", PasswordHash: hash, Roles: tc.roles}, nil)
		persons.On("TouchLastLogin", mock.Anything, "u", mock.Anything).Return(nil)

		personSvc := services.NewPersonService(persons, services.NewProfileService(newProfileStore(), persons))
		result, err := services.NewTokenService(cfg, personSvc).Login(context.Background(), "u", "Clave#Segura1")
		require.NoError(t, err)
		assert.Equal(t, tc.want, result.Landing)
	}
}
