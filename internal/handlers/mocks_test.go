package handlers_test

import (
	"context"
	"net/url"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock PersonService ---
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockPersonService) ActorFor(ctx context.Context, personID string) (domain.Actor, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).(domain.Actor), args.Error(1)
}
func (m *MockPersonService) CreatePerson(ctx context.Context, actor domain.Actor, req portssvc.NewPerson) (*domain.Person, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockPersonService) ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error {
	args := m.Called(ctx, actor, currentPassword, newPassword)
	return args.Error(0)
}
func (m *MockPersonService) Authenticate(ctx context.Context, credential, password string) (*domain.Person, error) {
	args := m.Called(ctx, credential, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

var _ portssvc.PersonSvcFacade = (*MockPersonService)(nil)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) SaveProfile(ctx context.Context, actor domain.Actor, profile domain.Profile) (*domain.Profile, error) {
	args := m.Called(ctx, actor, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileService) AssignHierarchy(ctx context.Context, actor domain.Actor, personID string, req portssvc.HierarchyAssignment) (*domain.Profile, error) {
	args := m.Called(ctx, actor, personID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileService) RecomputeSubordinates(ctx context.Context, actor domain.Actor, personID string) ([]domain.Profile, error) {
	args := m.Called(ctx, actor, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}
func (m *MockProfileService) EnsureProfile(ctx context.Context, personID string) (*domain.Profile, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileService) GetMyProfile(ctx context.Context, actor domain.Actor) (*domain.ProfileView, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileView), args.Error(1)
}
func (m *MockProfileService) UpdateMyContact(ctx context.Context, actor domain.Actor, req portssvc.ContactUpdate) (*domain.ProfileView, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileView), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, person *domain.Person) (string, time.Time, error) {
	args := m.Called(ctx, person)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) Login(ctx context.Context, credential, password string) (*portssvc.LoginResult, error) {
	args := m.Called(ctx, credential, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.LoginResult), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) ListMySales(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.SalesPage, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SalesPage), args.Error(1)
}
func (m *MockSaleService) ExportMySales(ctx context.Context, actor domain.Actor, params url.Values, saleIDs []int64) ([]domain.Sale, error) {
	args := m.Called(ctx, actor, params, saleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}
func (m *MockSaleService) IncidentPlateOptions(ctx context.Context, actor domain.Actor) ([]string, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock CommissionService ---
type MockCommissionService struct {
	mock.Mock
}

func (m *MockCommissionService) ListCommissionBoard(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.CommissionBoard, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.CommissionBoard), args.Error(1)
}
func (m *MockCommissionService) ReviewCommission(ctx context.Context, actor domain.Actor, commissionID int64, status domain.CommissionStatus) (*domain.Commission, error) {
	args := m.Called(ctx, actor, commissionID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commission), args.Error(1)
}

var _ portssvc.CommissionSvcFacade = (*MockCommissionService)(nil)

// --- Mock IncidentService ---
type MockIncidentService struct {
	mock.Mock
}

func (m *MockIncidentService) ListMyIncidents(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.IncidentPage, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.IncidentPage), args.Error(1)
}
func (m *MockIncidentService) RegisterIncident(ctx context.Context, actor domain.Actor, req portssvc.NewIncident) (*domain.Incident, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Incident), args.Error(1)
}
func (m *MockIncidentService) GetMyIncident(ctx context.Context, actor domain.Actor, incidentID int64, params url.Values) (*portssvc.IncidentDetail, error) {
	args := m.Called(ctx, actor, incidentID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.IncidentDetail), args.Error(1)
}
func (m *MockIncidentService) ListIncidentBoard(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.IncidentPage, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.IncidentPage), args.Error(1)
}
func (m *MockIncidentService) ReviewIncident(ctx context.Context, actor domain.Actor, incidentID int64, status domain.IncidentStatus, validationOK bool) (*domain.Incident, error) {
	args := m.Called(ctx, actor, incidentID, status, validationOK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Incident), args.Error(1)
}

var _ portssvc.IncidentSvcFacade = (*MockIncidentService)(nil)

// --- Mock BulletinService ---
type MockBulletinService struct {
	mock.Mock
}

func (m *MockBulletinService) ListBulletins(ctx context.Context, actor domain.Actor, params url.Values) (*portssvc.BulletinPage, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.BulletinPage), args.Error(1)
}
func (m *MockBulletinService) MarkRead(ctx context.Context, actor domain.Actor, bulletinID int64) error {
	args := m.Called(ctx, actor, bulletinID)
	return args.Error(0)
}
func (m *MockBulletinService) ConfirmRead(ctx context.Context, actor domain.Actor, bulletinID int64) error {
	args := m.Called(ctx, actor, bulletinID)
	return args.Error(0)
}

var _ portssvc.BulletinSvcFacade = (*MockBulletinService)(nil)
