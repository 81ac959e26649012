package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/apperrors"
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils/listquery"
	"github.com/stretchr/testify/mock"
)

// --- Mock PersonRepository ---
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	var person *domain.Person
	if args.Get(0) != nil {
		person = args.Get(0).(*domain.Person)
	}
	return person, args.Error(1)
}

func (m *MockPersonRepository) FindPersonByCredential(ctx context.Context, credential string) (*domain.Person, error) {
	args := m.Called(ctx, credential)
	var person *domain.Person
	if args.Get(0) != nil {
		person = args.Get(0).(*domain.Person)
	}
	return person, args.Error(1)
}

func (m *MockPersonRepository) FindPersonsByIDs(ctx context.Context, personIDs []string) ([]domain.Person, error) {
	args := m.Called(ctx, personIDs)
	var persons []domain.Person
	if args.Get(0) != nil {
		persons = args.Get(0).([]domain.Person)
	}
	return persons, args.Error(1)
}

func (m *MockPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	return m.Called(ctx, person).Error(0)
}

func (m *MockPersonRepository) UpdateContact(ctx context.Context, personID, email string, updatedAt time.Time) error {
	return m.Called(ctx, personID, email, updatedAt).Error(0)
}

func (m *MockPersonRepository) UpdatePassword(ctx context.Context, personID, passwordHash string, updatedAt time.Time) error {
	return m.Called(ctx, personID, passwordHash, updatedAt).Error(0)
}

func (m *MockPersonRepository) TouchLastLogin(ctx context.Context, personID string, at time.Time) error {
	return m.Called(ctx, personID, at).Error(0)
}

var _ portsrepo.PersonRepositoryFacade = (*MockPersonRepository)(nil)

// --- In-memory ProfileRepository ---

// profileStore keeps profiles in memory so hierarchy resolution can be
// exercised across several saves.
type profileStore struct {
	mu       sync.Mutex
	profiles map[string]domain.Profile
	upserts  int
}

func newProfileStore(profiles ...domain.Profile) *profileStore {
	s := &profileStore{profiles: map[string]domain.Profile{}}
	for _, p := range profiles {
		s.profiles[p.PersonID] = p
	}
	return s
}

func (s *profileStore) get(personID string) domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[personID]
}

func (s *profileStore) FindProfileByPersonID(ctx context.Context, personID string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[personID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (s *profileStore) FindDirectSubordinates(ctx context.Context, personID string) ([]domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Profile
	for _, p := range s.profiles {
		switch {
		case p.SupervisorID != nil && *p.SupervisorID == personID:
			out = append(out, p)
		case p.SupervisorID == nil && p.ManagerID != nil && *p.ManagerID == personID:
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PersonID < out[j].PersonID })
	return out, nil
}

func (s *profileStore) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.PersonID] = profile
	s.upserts++
	return nil
}

func (s *profileStore) CreateProfileIfMissing(ctx context.Context, personID string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[personID]; ok {
		return false, nil
	}
	s.profiles[personID] = domain.Profile{PersonID: personID, Area: domain.AreaSales}
	return true, nil
}

func (s *profileStore) UpdateContactDetails(ctx context.Context, personID, phone string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[personID]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.Phone = phone
	p.InitialProfileSeen = true
	s.profiles[personID] = p
	return nil
}

func (s *profileStore) MarkInitialProfileSeen(ctx context.Context, personID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[personID]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.InitialProfileSeen = true
	s.profiles[personID] = p
	return nil
}

var _ portsrepo.ProfileRepositoryFacade = (*profileStore)(nil)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) ListSales(ctx context.Context, query portsrepo.SaleQuery) ([]domain.Sale, error) {
	args := m.Called(ctx, query)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) FindSalesByOwnerAndPlate(ctx context.Context, ownerID, plate string) ([]domain.Sale, error) {
	args := m.Called(ctx, ownerID, plate)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) ListOwnerPlates(ctx context.Context, ownerID string) ([]string, error) {
	args := m.Called(ctx, ownerID)
	var plates []string
	if args.Get(0) != nil {
		plates = args.Get(0).([]string)
	}
	return plates, args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale *domain.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

// --- Mock CommissionRepository ---
type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) FindCommissionByID(ctx context.Context, commissionID int64) (*domain.Commission, error) {
	args := m.Called(ctx, commissionID)
	var commission *domain.Commission
	if args.Get(0) != nil {
		commission = args.Get(0).(*domain.Commission)
	}
	return commission, args.Error(1)
}

func (m *MockCommissionRepository) FindCommissionsBySaleIDs(ctx context.Context, saleIDs []int64) (map[int64][]domain.Commission, error) {
	args := m.Called(ctx, saleIDs)
	var bySale map[int64][]domain.Commission
	if args.Get(0) != nil {
		bySale = args.Get(0).(map[int64][]domain.Commission)
	}
	return bySale, args.Error(1)
}

func (m *MockCommissionRepository) SaveCommission(ctx context.Context, commission *domain.Commission) error {
	return m.Called(ctx, commission).Error(0)
}

func (m *MockCommissionRepository) UpdateCommissionStatus(ctx context.Context, commissionID int64, status domain.CommissionStatus) error {
	return m.Called(ctx, commissionID, status).Error(0)
}

var _ portsrepo.CommissionRepositoryFacade = (*MockCommissionRepository)(nil)

// --- Mock IncidentRepository ---
type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) ListIncidents(ctx context.Context, query portsrepo.IncidentQuery) ([]domain.Incident, error) {
	args := m.Called(ctx, query)
	var incidents []domain.Incident
	if args.Get(0) != nil {
		incidents = args.Get(0).([]domain.Incident)
	}
	return incidents, args.Error(1)
}

func (m *MockIncidentRepository) FindIncidentByID(ctx context.Context, incidentID int64) (*domain.Incident, error) {
	args := m.Called(ctx, incidentID)
	var incident *domain.Incident
	if args.Get(0) != nil {
		incident = args.Get(0).(*domain.Incident)
	}
	return incident, args.Error(1)
}

func (m *MockIncidentRepository) CountIncidentsByStatus(ctx context.Context, status domain.IncidentStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockIncidentRepository) SaveIncident(ctx context.Context, incident *domain.Incident) error {
	return m.Called(ctx, incident).Error(0)
}

func (m *MockIncidentRepository) UpdateIncidentReview(ctx context.Context, incidentID int64, status domain.IncidentStatus, validationOK bool) error {
	return m.Called(ctx, incidentID, status, validationOK).Error(0)
}

var _ portsrepo.IncidentRepositoryFacade = (*MockIncidentRepository)(nil)

// --- Mock BulletinRepository ---
type MockBulletinRepository struct {
	mock.Mock
}

func (m *MockBulletinRepository) ListActiveBulletins(ctx context.Context, personID string, spec listquery.Spec) ([]domain.BulletinView, error) {
	args := m.Called(ctx, personID, spec)
	var views []domain.BulletinView
	if args.Get(0) != nil {
		views = args.Get(0).([]domain.BulletinView)
	}
	return views, args.Error(1)
}

func (m *MockBulletinRepository) FindBulletinByID(ctx context.Context, bulletinID int64) (*domain.Bulletin, error) {
	args := m.Called(ctx, bulletinID)
	var bulletin *domain.Bulletin
	if args.Get(0) != nil {
		bulletin = args.Get(0).(*domain.Bulletin)
	}
	return bulletin, args.Error(1)
}

func (m *MockBulletinRepository) SaveBulletin(ctx context.Context, bulletin *domain.Bulletin) error {
	return m.Called(ctx, bulletin).Error(0)
}

func (m *MockBulletinRepository) MarkRead(ctx context.Context, bulletinID int64, personID string, at time.Time) error {
	return m.Called(ctx, bulletinID, personID, at).Error(0)
}

func (m *MockBulletinRepository) ConfirmRead(ctx context.Context, bulletinID int64, personID string, at time.Time) error {
	return m.Called(ctx, bulletinID, personID, at).Error(0)
}

var _ portsrepo.BulletinRepositoryFacade = (*MockBulletinRepository)(nil)

// --- Mock IncidentNotifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyIncident(ctx context.Context, incident domain.Incident, reporter domain.Person) error {
	return m.Called(ctx, incident, reporter).Error(0)
}

var _ portssvc.IncidentNotifier = (*MockNotifier)(nil)

// fixedNow is the clock every service test runs at.
var fixedNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ref(id string) *string { return &id }

var (
	admin      = domain.Actor{PersonID: "admin", Roles: []domain.Role{domain.RoleAdmin}}
	manager    = domain.Actor{PersonID: "gm", Roles: []domain.Role{domain.RoleGeneralManager}}
	salesActor = domain.Actor{PersonID: "seller", Roles: []domain.Role{domain.RoleSalesperson}}
)
